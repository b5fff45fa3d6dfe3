package interview

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockround/internal/ui/components"
	"github.com/abhisek/mockround/internal/ui/theme"
)

// logPanelLines is how many recent decision log lines the panel shows.
const logPanelLines = 6

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	var body string
	switch {
	case s.showingQuitConfirm:
		body = renderQuitConfirm(width, height)
	case s.showingFeedback:
		body = s.renderFeedback(width)
	case s.question != nil:
		body = s.renderQuestionView(width)
	default:
		body = renderLoading(width, height)
	}

	if s.showLog {
		body += "\n" + s.renderLogPanel(width)
	}
	return body
}

// renderQuestionView renders the active question and the answer box.
func (s *InterviewScreen) renderQuestionView(width int) string {
	q := s.question
	cfg := s.engine.Config()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Skill)) +
		"  " +
		lipgloss.NewStyle().
			Foreground(theme.DifficultyColor(string(q.Difficulty))).
			Render(strings.ToUpper(string(q.Difficulty)))

	limit := time.Duration(q.TimeLimitSeconds) * time.Second
	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.elapsed > limit {
		timerStyle = timerStyle.Foreground(theme.Error)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", s.engine.Index()+1, cfg.MaxQuestions)) +
		timerStyle.Render(fmt.Sprintf("%s / %s", clock(s.elapsed), clock(limit)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(divider(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Padding(0, 4).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString("  " + s.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d words", s.input.Words())))

	return b.String()
}

// renderFeedback renders the score breakdown for the last answer.
func (s *InterviewScreen) renderFeedback(width int) string {
	r := s.last
	if r == nil {
		return ""
	}
	sc := r.Score
	barWidth := min(width-8, 60)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("Q%d · %s", r.Index, r.Question.ID))+"   "+theme.Score(sc.Overall)))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		score float64
	}{
		{"Accuracy", sc.Accuracy},
		{"Relevance", sc.Relevance},
		{"Clarity", sc.Clarity},
		{"Time", sc.TimeEfficiency},
	}
	for _, row := range rows {
		bar := components.NewScoreBar(row.label, row.score, 10, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case r.Response.TimedOut:
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("Over the %ds limit", r.Question.TimeLimitSeconds))))
		b.WriteString("\n")
	case sc.Bonus > 0:
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Speed bonus +%.0f", sc.Bonus))))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Padding(0, 4).
		Foreground(theme.Text).
		Render(r.Feedback))
	b.WriteString("\n\n")

	var next string
	if s.next == nil {
		next = "Interview finished. Press any key for the report."
	} else {
		next = fmt.Sprintf("Next question: %s. Press any key to continue.", strings.ToUpper(string(s.next.Difficulty)))
	}
	b.WriteString(center(width, theme.Hint.Render(next)))

	return b.String()
}

// renderLogPanel renders the tail of the decision log.
func (s *InterviewScreen) renderLogPanel(width int) string {
	lines := s.engine.DecisionLog()
	if len(lines) > logPanelLines {
		lines = lines[len(lines)-logPanelLines:]
	}

	var b strings.Builder
	b.WriteString(divider(width))
	b.WriteString("\n")
	b.WriteString(theme.Section.Render("  Decision log"))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + l))
	}
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End the interview now?") +
		"\n\n" +
		theme.Hint.Render("Answered questions are kept and the report is generated.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("(y/n)")
	return lipgloss.Place(width, height/2, lipgloss.Center, lipgloss.Center, msg)
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height/2, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render("Preparing interview..."))
}

func renderError(width, height int, msg string) string {
	text := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
		"\n\n" +
		theme.Body.Render(msg) +
		"\n\n" +
		theme.Hint.Render("Press Enter to exit")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func divider(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func clock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
