package interview

import "fmt"

// State is the engine state reported to callers.
type State string

const (
	StateNotStarted      State = "NOT_STARTED"
	StateInProgress      State = "IN_PROGRESS"
	StateAdaptiveMode    State = "ADAPTIVE_MODE"
	StateEarlyTerminated State = "EARLY_TERMINATED"
	StateCompleted       State = "COMPLETED"
)

// Terminal reports whether no further answers are accepted in s.
func (s State) Terminal() bool {
	return s == StateEarlyTerminated || s == StateCompleted
}

// Phase is the session lifecycle. It deliberately excludes AdaptiveMode,
// which is an annotation on InProgress derived from the last Adaptation.
type Phase string

const (
	PhaseNotStarted      Phase = "not-started"
	PhaseInProgress      Phase = "in-progress"
	PhaseEarlyTerminated Phase = "early-terminated"
	PhaseCompleted       Phase = "completed"
)

// Adaptation is the direction of the most recent tier change.
type Adaptation string

const (
	AdaptationNone     Adaptation = ""
	AdaptationStepUp   Adaptation = "step-up"
	AdaptationStepDown Adaptation = "step-down"
)

// phaseEdges lists the legal lifecycle transitions.
var phaseEdges = map[Phase][]Phase{
	PhaseNotStarted: {PhaseInProgress},
	PhaseInProgress: {PhaseEarlyTerminated, PhaseCompleted},
}

// Transition records one lifecycle change for logging and observers.
type Transition struct {
	From    State
	To      State
	Trigger string // "start", "termination", "max-questions", "catalog-exhausted", "override"
	Reason  string
}

// lifecycle pairs the phase with the last adaptation.
type lifecycle struct {
	phase      Phase
	adaptation Adaptation
}

// State derives the externally visible state.
func (l lifecycle) State() State {
	switch l.phase {
	case PhaseNotStarted:
		return StateNotStarted
	case PhaseEarlyTerminated:
		return StateEarlyTerminated
	case PhaseCompleted:
		return StateCompleted
	}
	if l.adaptation == AdaptationStepUp {
		return StateAdaptiveMode
	}
	return StateInProgress
}

// advance moves to the next phase, rejecting edges not in phaseEdges.
func (l *lifecycle) advance(to Phase) error {
	for _, allowed := range phaseEdges[l.phase] {
		if allowed == to {
			l.phase = to
			return nil
		}
	}
	return fmt.Errorf("illegal transition %s -> %s", l.phase, to)
}
