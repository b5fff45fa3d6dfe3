package report

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/ui/components"
	"github.com/abhisek/mockround/internal/ui/theme"
)

// Render formats a finished interview report. The same text backs the
// report screen and the non-interactive commands.
func Render(r interview.InterviewResult, width int) string {
	if width < 40 {
		width = 40
	}
	barWidth := min(width-4, 72)

	var b strings.Builder

	b.WriteString(theme.Title.Render("Interview Report"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s · %s", r.Candidate.Name, r.Candidate.Seniority, r.Role)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Session " + r.SessionID))
	b.WriteString("\n\n")

	b.WriteString(field("Status", statusLine(r)))
	b.WriteString(field("Final score", theme.Score(r.FinalScore)))
	b.WriteString(field("Readiness", lipgloss.NewStyle().
		Foreground(theme.ScoreColor(r.FinalScore)).
		Bold(true).
		Render(r.Readiness)))
	b.WriteString(field("Confidence", theme.Body.Render(fmt.Sprintf("%.0f%%", r.Confidence))))
	b.WriteString(field("Answered", theme.Body.Render(fmt.Sprintf("%d", len(r.History)))))

	if len(r.SkillBreakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(section("Skills", barWidth))
		skills := make([]string, 0, len(r.SkillBreakdown))
		labelWidth := 0
		for s := range r.SkillBreakdown {
			skills = append(skills, s)
			labelWidth = max(labelWidth, lipgloss.Width(s))
		}
		sort.Strings(skills)
		for _, s := range skills {
			b.WriteString("  ")
			b.WriteString(components.NewScoreBar(s, r.SkillBreakdown[s], labelWidth, barWidth-2).View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(list("Strengths", r.Strengths, theme.Success, barWidth))
	b.WriteString(list("Weaknesses", r.Weaknesses, theme.Error, barWidth))

	b.WriteString(section("Suggestions", barWidth))
	for _, s := range r.Suggestions {
		b.WriteString(theme.Body.Render("  • " + s))
		b.WriteString("\n")
	}

	if len(r.History) > 0 {
		b.WriteString("\n")
		b.WriteString(section("Questions", barWidth))
		for _, h := range r.History {
			b.WriteString(historyLine(h))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderLog formats decision log lines, numbered from 1.
func RenderLog(lines []string) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Decision log"))
	b.WriteString("\n")
	for i, line := range lines {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%3d ", i+1)))
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func statusLine(r interview.InterviewResult) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(theme.Success)
	if r.Status == interview.StateEarlyTerminated {
		style = style.Foreground(theme.Error)
	}
	s := style.Render(string(r.Status))
	if r.TerminationReason != "" {
		s += " " + theme.Hint.Render(r.TerminationReason)
	}
	return s
}

func historyLine(h interview.QuestionResult) string {
	tier := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(string(h.Difficulty))).
		Render(fmt.Sprintf("%-6s", h.Difficulty))

	flags := ""
	if h.Response.TimedOut {
		flags = " " + lipgloss.NewStyle().Foreground(theme.Error).Render("timeout")
	} else if h.Score.Bonus > 0 {
		flags = " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("+bonus")
	}

	return fmt.Sprintf("  %s %s %s %s %s%s",
		theme.Hint.Render(fmt.Sprintf("Q%-2d", h.Index)),
		theme.Body.Render(fmt.Sprintf("%-8s", h.Question.ID)),
		tier,
		theme.Body.Render(fmt.Sprintf("%-16s", h.Question.Skill)),
		theme.Score(h.Score.Overall),
		flags,
	)
}

func field(label, value string) string {
	return theme.Hint.Render(fmt.Sprintf("  %-12s", label)) + value + "\n"
}

func section(name string, width int) string {
	return theme.Section.Render(name) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)) + "\n"
}

func list(name string, items []string, c color.Color, width int) string {
	var b strings.Builder
	b.WriteString(section(name, width))
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("  none"))
		b.WriteString("\n\n")
		return b.String()
	}
	style := lipgloss.NewStyle().Foreground(c)
	for _, it := range items {
		b.WriteString(style.Render("  " + it))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
