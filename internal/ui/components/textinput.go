package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockround/internal/ui/theme"
)

// AnswerLimit caps a single typed answer.
const AnswerLimit = 2000

// TextInput wraps bubbles/textinput with mockround styling.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	locked   bool
}

// NewTextInput creates a new styled, focused text input. maxChars of
// zero means AnswerLimit.
func NewTextInput(placeholder string, maxChars, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxChars <= 0 {
		maxChars = AnswerLimit
	}
	ti.CharLimit = maxChars
	if maxWidth > 0 {
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. A locked input ignores keys.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		if _, ok := msg.(tea.KeyMsg); ok {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.locked {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("(submitted)")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Words counts whitespace separated tokens in the current value.
func (t TextInput) Words() int {
	return len(strings.Fields(t.Model.Value()))
}

// Lock freezes the input after submission.
func (t *TextInput) Lock() {
	t.locked = true
}

// Reset clears the value and unlocks the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.locked = false
}
