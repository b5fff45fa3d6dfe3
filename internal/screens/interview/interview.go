// Package interview is the interactive screen that runs one session.
package interview

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	iv "github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/router"
	"github.com/abhisek/mockround/internal/screen"
	"github.com/abhisek/mockround/internal/screens/report"
	"github.com/abhisek/mockround/internal/ui/components"
	"github.com/abhisek/mockround/internal/ui/layout"
)

// QuitReason is recorded when the candidate ends the session from the TUI.
const QuitReason = "Candidate ended the interview."

// Option configures an InterviewScreen.
type Option func(*InterviewScreen)

// WithClock overrides the time source used for answer timing.
func WithClock(now func() time.Time) Option {
	return func(s *InterviewScreen) { s.now = now }
}

// WithFinish registers a callback that receives the final report before
// the report screen is shown. It runs off the UI goroutine.
func WithFinish(fn func(iv.InterviewResult)) Option {
	return func(s *InterviewScreen) { s.onFinish = fn }
}

// InterviewScreen implements screen.Screen for a live session.
type InterviewScreen struct {
	engine   *iv.Engine
	question *iv.Question
	next     *iv.Question // queued while feedback is shown
	last     *iv.QuestionResult
	input    components.TextInput
	started  time.Time
	elapsed  time.Duration
	now      func() time.Time
	onFinish func(iv.InterviewResult)

	showingFeedback    bool
	showingQuitConfirm bool
	showLog            bool
	finished           bool
	errMsg             string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen around a not-yet-started engine.
func New(engine *iv.Engine, opts ...Option) *InterviewScreen {
	s := &InterviewScreen{
		engine: engine,
		input:  components.NewTextInput("Type your answer and press Enter...", 0, 0),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *InterviewScreen) Init() tea.Cmd {
	var (
		q   *iv.Question
		err error
	)
	if s.engine.State() == iv.StateNotStarted {
		q, err = s.engine.Start()
	} else {
		q = s.engine.Pending()
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if q == nil {
		return s.finish()
	}
	s.ask(q)
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) Status() string {
	return fmt.Sprintf("%s · %s", strings.ToUpper(string(s.engine.Difficulty())), s.engine.State())
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Tab", Description: "Decision log"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Decision log"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *InterviewScreen) acceptingInput() bool {
	return s.question != nil && !s.finished && !s.showingFeedback && !s.showingQuitConfirm && s.errMsg == ""
}

func (s *InterviewScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	if s.acceptingInput() {
		s.elapsed = s.now().Sub(s.started)
	}
	return s, tickCmd()
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if key == "enter" || key == "esc" {
			return s, tea.Quit
		}
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			if err := s.engine.Abort(QuitReason); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "tab" {
		s.showLog = !s.showLog
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		if s.next == nil {
			return s, s.finish()
		}
		s.ask(s.next)
		s.next = nil
		return s, nil
	}

	switch key {
	case "esc":
		if s.question != nil && !s.finished {
			s.showingQuitConfirm = true
		}
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit scores the typed answer and shows the feedback overlay.
func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	if !s.acceptingInput() {
		return s, nil
	}
	s.elapsed = s.now().Sub(s.started)

	next, err := s.engine.ProcessResponse(*s.question, s.input.Value(), s.elapsed.Seconds())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	history := s.engine.History()
	last := history[len(history)-1]
	s.last = &last
	s.next = next
	s.input.Lock()
	s.showingFeedback = true
	return s, nil
}

// ask makes q the active question and restarts the answer clock.
func (s *InterviewScreen) ask(q *iv.Question) {
	s.question = q
	s.input.Reset()
	s.started = s.now()
	s.elapsed = 0
}

// finish builds the report and swaps in the report screen.
func (s *InterviewScreen) finish() tea.Cmd {
	s.finished = true
	s.question = nil

	res, err := s.engine.Report()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	onFinish := s.onFinish
	return func() tea.Msg {
		if onFinish != nil {
			onFinish(res)
		}
		return router.ReplaceScreenMsg{Screen: report.New(res)}
	}
}

// tickCmd returns a command that sends a timerTickMsg after 1 second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
