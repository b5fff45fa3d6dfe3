package interview

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// DefaultOverrideReason is recorded when Abort is called without a reason.
const DefaultOverrideReason = "Overridden by supervisor."

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for question selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.selector = NewSelector(rng) }
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers an event observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.sessionID = id
		}
	}
}

// Engine runs one interview session. It is not safe for concurrent use;
// every session owns its own Engine.
type Engine struct {
	pool      []Question
	candidate CandidateProfile
	job       JobDescription
	cfg       Config
	sessionID string

	selector   *Selector
	controller *Controller
	policy     Policy
	logger     *slog.Logger
	observer   Observer

	life          lifecycle
	pending       *Question
	asked         map[string]bool
	history       []QuestionResult
	total         float64
	failureStreak int
	reason        string
	log           []string
}

// New validates cfg and prepares a session in the NotStarted state.
func New(source QuestionSource, candidate CandidateProfile, job JobDescription, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if candidate.Seniority == "" {
		candidate.Seniority = Entry
	}

	var pool []Question
	if source != nil {
		pool = source.Questions()
	}

	e := &Engine{
		pool:      pool,
		candidate: candidate,
		job:       job,
		cfg:       cfg,
		sessionID: uuid.New().String(),
		policy:    NewPolicy(cfg),
		logger:    slog.New(slog.DiscardHandler),
		observer:  NopObserver{},
		life:      lifecycle{phase: PhaseNotStarted},
		asked:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.selector == nil {
		e.selector = NewSelector(nil)
	}

	start := candidate.Seniority.EntryDifficulty()
	e.controller = NewController(start, cfg.StreakThreshold())

	e.record("Session initialized for %s (%s).", candidate.Name, candidate.Seniority)
	e.record("Target role: %s. Required skills: %s.", job.Role, strings.Join(job.RequiredSkills, ", "))
	if job.TargetDifficulty != "" {
		e.record("Job target difficulty: %s.", upper(job.TargetDifficulty))
	}
	e.record("Initial difficulty: %s. Streak threshold: %d.", upper(start), cfg.StreakThreshold())

	e.logger.Info("session initialized",
		"session_id", e.sessionID,
		"candidate", candidate.Name,
		"seniority", candidate.Seniority,
		"difficulty", start,
		"pool_size", len(pool),
	)
	return e, nil
}

// Start moves the session to InProgress and returns the first question.
// A nil question means the catalog holds nothing at the entry tier and
// the session is already Completed.
func (e *Engine) Start() (*Question, error) {
	if e.life.phase != PhaseNotStarted {
		return nil, &InvalidStateError{Op: "Start", State: e.State()}
	}
	if err := e.transition(PhaseInProgress, "start", ""); err != nil {
		return nil, err
	}
	e.record("Interview started.")
	return e.next()
}

// ProcessResponse scores an answer to the pending question and returns
// the next question. A nil question means the session has ended and the
// caller should fetch the report.
func (e *Engine) ProcessResponse(q Question, answer string, elapsedSeconds float64) (*Question, error) {
	if e.life.phase != PhaseInProgress {
		return nil, &InvalidStateError{Op: "ProcessResponse", State: e.State()}
	}
	if e.pending == nil || e.pending.ID != q.ID {
		want := ""
		if e.pending != nil {
			want = e.pending.ID
		}
		return nil, fmt.Errorf("%w: got %q, want %q", ErrUnexpectedQuestion, q.ID, want)
	}
	asked := *e.pending
	n := len(e.history) + 1
	elapsedSeconds = FiniteElapsed(elapsedSeconds)
	e.record("Processing response for Q%d (%s).", n, asked.ID)

	score := Score(asked, answer, elapsedSeconds)
	feedback := Feedback(score, asked, answer)

	result := QuestionResult{
		Index:    n,
		Question: asked,
		Response: Response{
			QuestionID:     asked.ID,
			Answer:         answer,
			ElapsedSeconds: elapsedSeconds,
			TimedOut:       elapsedSeconds > float64(asked.TimeLimitSeconds),
		},
		Score:      score,
		State:      e.State(),
		Difficulty: e.controller.Difficulty(),
		Feedback:   feedback,
	}
	e.history = append(e.history, result)
	e.total += score.Overall
	e.pending = nil

	e.recordScore(result)
	e.observer.QuestionScored(result)

	if score.Overall < WeakScore {
		e.failureStreak++
	} else {
		e.failureStreak = 0
	}
	e.adapt(score.Overall)

	stop, reason := e.policy.Evaluate(Progress{
		Answered:      len(e.history),
		TotalScore:    e.total,
		FailureStreak: e.failureStreak,
	})
	if stop {
		e.reason = reason
		return nil, e.transition(PhaseEarlyTerminated, "termination", reason)
	}

	if len(e.history) >= e.cfg.MaxQuestions {
		return nil, e.transition(PhaseCompleted, "max-questions", "")
	}
	return e.next()
}

// Abort ends an in-progress session early on behalf of a supervisor.
func (e *Engine) Abort(reason string) error {
	if e.life.phase != PhaseInProgress {
		return &InvalidStateError{Op: "Abort", State: e.State()}
	}
	if strings.TrimSpace(reason) == "" {
		reason = DefaultOverrideReason
	}
	e.reason = reason
	e.pending = nil
	return e.transition(PhaseEarlyTerminated, "override", reason)
}

// Report aggregates the finished session. It fails until the session
// has reached a terminal state.
func (e *Engine) Report() (InterviewResult, error) {
	st := e.State()
	if !st.Terminal() {
		return InterviewResult{}, &InvalidStateError{Op: "Report", State: st}
	}
	return buildReport(reportInput{
		sessionID: e.sessionID,
		candidate: e.candidate,
		role:      e.job.Role,
		total:     e.total,
		answered:  len(e.history),
		status:    st,
		reason:    e.reason,
		history:   e.History(),
		log:       e.DecisionLog(),
	}), nil
}

// State returns the current engine state.
func (e *Engine) State() State { return e.life.State() }

// Phase returns the lifecycle phase without the adaptation annotation.
func (e *Engine) Phase() Phase { return e.life.phase }

// LastAdaptation returns the direction of the most recent tier change.
func (e *Engine) LastAdaptation() Adaptation { return e.life.adaptation }

// Index returns the number of answers processed so far.
func (e *Engine) Index() int { return len(e.history) }

// Difficulty returns the current tier.
func (e *Engine) Difficulty() Difficulty { return e.controller.Difficulty() }

// SessionID returns the session identifier.
func (e *Engine) SessionID() string { return e.sessionID }

// Config returns the session config.
func (e *Engine) Config() Config { return e.cfg }

// Candidate returns the candidate profile.
func (e *Engine) Candidate() CandidateProfile { return e.candidate }

// Job returns the job description.
func (e *Engine) Job() JobDescription { return e.job }

// TerminationReason returns the recorded early-termination reason.
func (e *Engine) TerminationReason() string { return e.reason }

// TotalScore returns the sum of overall scores so far.
func (e *Engine) TotalScore() float64 { return e.total }

// Pending returns a copy of the question awaiting an answer, or nil.
func (e *Engine) Pending() *Question {
	if e.pending == nil {
		return nil
	}
	q := *e.pending
	return &q
}

// History returns a copy of the results so far.
func (e *Engine) History() []QuestionResult {
	out := make([]QuestionResult, len(e.history))
	copy(out, e.history)
	return out
}

// DecisionLog returns a copy of the audit trail.
func (e *Engine) DecisionLog() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

// next selects the next question or completes the session when the
// current tier is exhausted.
func (e *Engine) next() (*Question, error) {
	tier := e.controller.Difficulty()
	q, ok := e.selector.Next(e.pool, tier, e.asked, e.candidate.Skills, e.job.RequiredSkills)
	if !ok {
		e.record("No unasked %s question remains.", upper(tier))
		return nil, e.transition(PhaseCompleted, "catalog-exhausted", "")
	}
	e.asked[q.ID] = true
	e.pending = &q
	e.record("Selected Q%d: %s (%s, %s).", len(e.history)+1, q.ID, q.Skill, upper(q.Difficulty))
	e.logger.Debug("question selected", "session_id", e.sessionID, "question_id", q.ID, "difficulty", q.Difficulty)
	out := q
	return &out, nil
}

// adapt runs the difficulty controller and updates the adaptation marker.
func (e *Engine) adapt(overall float64) {
	before := e.State()
	adj := e.controller.Record(overall)

	switch {
	case adj.SteppedDn:
		e.life.adaptation = AdaptationStepDown
		e.record("DECISION: Stabilizing difficulty to %s to better assess performance.", upper(adj.To))
	case adj.SteppedUp:
		e.life.adaptation = AdaptationStepUp
		e.record("DECISION: Elevating difficulty to %s due to high performance streak.", upper(adj.To))
	}
	if !adj.Changed() {
		return
	}

	e.observer.DifficultyChanged(adj)
	e.logger.Info("difficulty changed", "session_id", e.sessionID, "from", adj.From, "to", adj.To)
	if after := e.State(); after != before {
		e.record("State transition: %s -> %s.", before, after)
	}
}

// transition moves the lifecycle and logs the change.
func (e *Engine) transition(to Phase, trigger, reason string) error {
	from := e.State()
	if err := e.life.advance(to); err != nil {
		return fmt.Errorf("%s: %w", trigger, err)
	}
	t := Transition{From: from, To: e.State(), Trigger: trigger, Reason: reason}

	if reason != "" {
		e.record("State transition: %s -> %s. Reason: %s", t.From, t.To, reason)
	} else {
		e.record("State transition: %s -> %s.", t.From, t.To)
	}
	e.logger.Info("state transition",
		"session_id", e.sessionID,
		"from", t.From,
		"to", t.To,
		"trigger", trigger,
	)

	if t.To.Terminal() {
		e.pending = nil
		var final float64
		if n := len(e.history); n > 0 {
			final = e.total / float64(n)
		}
		e.observer.SessionEnded(t, len(e.history), final)
	}
	return nil
}

func (e *Engine) recordScore(r QuestionResult) {
	s := r.Score
	e.record("Q%d evaluated. Overall score: %.1f%%", r.Index, s.Overall)
	e.record("  [Accuracy: %.1f, Relevance: %.1f, Clarity: %.1f, Time: %.1f]", s.Accuracy, s.Relevance, s.Clarity, s.TimeEfficiency)
	if s.Bonus > 0 {
		e.record("  BONUS: +%.1fpts for high-speed accuracy.", s.Bonus)
	}
	if r.Response.TimedOut {
		e.record("  Time limit of %ds exceeded (%.1fs).", r.Question.TimeLimitSeconds, r.Response.ElapsedSeconds)
	}
	e.logger.Debug("response scored",
		"session_id", e.sessionID,
		"question_id", r.Question.ID,
		"overall", s.Overall,
		"accuracy", s.Accuracy,
		"relevance", s.Relevance,
		"clarity", s.Clarity,
		"time_efficiency", s.TimeEfficiency,
	)
}

func (e *Engine) record(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

func upper(d Difficulty) string { return strings.ToUpper(string(d)) }
