package interview

// Observer receives engine events. Implementations must not call back
// into the engine.
type Observer interface {
	// QuestionScored fires once per processed answer.
	QuestionScored(result QuestionResult)

	// DifficultyChanged fires when the tier moves.
	DifficultyChanged(adj Adjustment)

	// SessionEnded fires when the session reaches a terminal state.
	SessionEnded(t Transition, answered int, finalScore float64)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) QuestionScored(QuestionResult)         {}
func (NopObserver) DifficultyChanged(Adjustment)          {}
func (NopObserver) SessionEnded(Transition, int, float64) {}

var _ Observer = NopObserver{}
