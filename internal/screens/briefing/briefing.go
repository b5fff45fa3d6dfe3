// Package briefing shows the interview setup before the first question.
package briefing

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/router"
	"github.com/abhisek/mockround/internal/screen"
	"github.com/abhisek/mockround/internal/ui/layout"
	"github.com/abhisek/mockround/internal/ui/theme"
)

// Setup is what the briefing describes.
type Setup struct {
	Candidate interview.CandidateProfile
	Job       interview.JobDescription
	Config    interview.Config
	Questions int // size of the question bank
}

// BriefingScreen summarizes the session and starts it on Enter.
type BriefingScreen struct {
	setup        Setup
	next         func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*BriefingScreen)(nil)
var _ screen.KeyHintProvider = (*BriefingScreen)(nil)

// New creates a BriefingScreen that replaces itself with the screen
// produced by next.
func New(setup Setup, next func() screen.Screen) *BriefingScreen {
	return &BriefingScreen{setup: setup, next: next}
}

func (b *BriefingScreen) Init() tea.Cmd {
	return nil
}

func (b *BriefingScreen) Title() string {
	return "Briefing"
}

func (b *BriefingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (b *BriefingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return b, b.transition()
		case "esc", "q":
			return b, tea.Quit
		}
	}
	return b, nil
}

func (b *BriefingScreen) transition() tea.Cmd {
	if b.transitioned {
		return nil
	}
	b.transitioned = true
	next := b.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (b *BriefingScreen) View(width, height int) string {
	s := b.setup
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	row := func(k, v string) string {
		return label.Render(fmt.Sprintf("%-18s", k)) + value.Render(v)
	}

	entry := s.Candidate.Seniority.EntryDifficulty()
	rows := []string{
		row("Candidate", fmt.Sprintf("%s (%s)", s.Candidate.Name, s.Candidate.Seniority)),
		row("Role", s.Job.Role),
		row("Required skills", strings.Join(s.Job.RequiredSkills, ", ")),
		row("Your skills", strings.Join(s.Candidate.Skills, ", ")),
		row("Opening tier", lipgloss.NewStyle().
			Foreground(theme.DifficultyColor(string(entry))).
			Render(strings.ToUpper(string(entry)))),
		"",
		row("Questions", fmt.Sprintf("up to %d (bank of %d)", s.Config.MaxQuestions, s.Questions)),
		row("Ends early after", fmt.Sprintf("%d weak answers in a row", s.Config.FailureStreakLimit)),
		row("Average floor", fmt.Sprintf("%.0f", s.Config.MinAverageScore)),
		row("Tier change", fmt.Sprintf("after %d strong or weak answers", s.Config.StreakThreshold())),
	}

	sections := []string{
		RenderBanner(width),
		"",
		theme.Subtitle.Render("Adaptive technical interview"),
		"",
		theme.Card.Render(strings.Join(rows, "\n")),
		"",
		theme.Hint.Render("Answers are timed from the moment each question appears."),
		theme.Hint.Render("press Enter to begin"),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
