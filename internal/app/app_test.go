package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockround/internal/router"
	"github.com/abhisek/mockround/internal/screen"
	"github.com/abhisek/mockround/internal/ui/layout"
)

type stubScreen struct {
	title   string
	status  string
	initRan bool
	keys    []string
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "body:" + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Status() string       { return s.status }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
}

func TestInit_RunsRootInit(t *testing.T) {
	root := &stubScreen{title: "root"}
	NewAppModel(root).Init()
	if !root.initRan {
		t.Error("expected root Init to run")
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m := NewAppModel(&stubScreen{title: "root"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestEsc_ForwardedAtRoot(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := NewAppModel(root)
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if len(root.keys) != 1 || root.keys[0] != "esc" {
		t.Errorf("expected esc forwarded to root screen, got %v", root.keys)
	}
}

func TestEsc_PopsPushedScreen(t *testing.T) {
	m := NewAppModel(&stubScreen{title: "root"})
	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "child"}})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestView_ShowsStatusAndHints(t *testing.T) {
	m := NewAppModel(&stubScreen{title: "Interview", status: "EASY · IN_PROGRESS"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	content := updated.(AppModel).render()
	for _, want := range []string{"mockround", "Interview", "EASY · IN_PROGRESS", "body:Interview", "Submit", "Quit"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := NewAppModel(&stubScreen{title: "root"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected too-small message")
	}
}
