package report

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/screen"
	"github.com/abhisek/mockround/internal/ui/layout"
)

// ReportScreen shows the final report of a finished session.
type ReportScreen struct {
	result  interview.InterviewResult
	offset  int
	showLog bool
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)
var _ screen.StatusProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(result interview.InterviewResult) *ReportScreen {
	return &ReportScreen{result: result}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Interview Report"
}

func (s *ReportScreen) Status() string {
	return s.result.Readiness
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	logHint := "Decision log"
	if s.showLog {
		logHint = "Report"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "L", Description: logHint},
		{Key: "Enter", Description: "Exit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		case "l":
			s.showLog = !s.showLog
			s.offset = 0
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	var body string
	if s.showLog {
		body = RenderLog(s.result.DecisionLog)
	} else {
		body = Render(s.result, width-4)
	}

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return indent(lines)
	}

	// Clamp so the last page stays full.
	maxOffset := len(lines) - height
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	return indent(lines[s.offset : s.offset+height])
}

func indent(lines []string) string {
	return "  " + strings.Join(lines, "\n  ")
}
