package briefing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/router"
	"github.com/abhisek/mockround/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "interview" }
func (s *stubScreen) Title() string                           { return "Interview" }

func testSetup() Setup {
	return Setup{
		Candidate: interview.CandidateProfile{Name: "Ada", Seniority: interview.Senior, Skills: []string{"Go"}},
		Job:       interview.JobDescription{Role: "Platform Engineer", RequiredSkills: []string{"Go", "Databases"}},
		Config:    interview.DefaultConfig(),
		Questions: 18,
	}
}

func newTestBriefing() (*BriefingScreen, *int) {
	calls := 0
	return New(testSetup(), func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func TestView_ShowsSetup(t *testing.T) {
	b, _ := newTestBriefing()
	view := b.View(100, 40)

	for _, want := range []string{"Ada (Senior)", "Platform Engineer", "Go, Databases", "MEDIUM", "up to 5 (bank of 18)"} {
		if !strings.Contains(view, want) {
			t.Errorf("briefing missing %q", want)
		}
	}
}

func TestEnter_ReplacesWithNext(t *testing.T) {
	b, calls := newTestBriefing()

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Interview" {
		t.Errorf("expected interview screen, got %q", msg.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestEnter_TransitionsOnce(t *testing.T) {
	b, calls := newTestBriefing()

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no second transition")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestEsc_Quits(t *testing.T) {
	b, calls := newTestBriefing()

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
	if *calls != 0 {
		t.Error("factory should not run on exit")
	}
}

func TestRenderBanner_Compact(t *testing.T) {
	if !strings.Contains(RenderBanner(30), "M O C K R O U N D") {
		t.Error("expected compact banner on narrow terminals")
	}
}
