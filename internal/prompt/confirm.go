// Package prompt implements the interactive questions asked during generation.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Confirmer asks yes/no questions on the terminal with a huh form
type Confirmer struct {
	opts []tea.ProgramOption
}

// NewConfirmer creates a confirmer. Program options are only needed when driving the
// form from something other than the controlling terminal, e.g. tea.WithInput in tests.
func NewConfirmer(opts ...tea.ProgramOption) *Confirmer {
	return &Confirmer{opts: opts}
}

// Confirm blocks until the question is answered. The default answer is No.
func (c *Confirmer) Confirm(question string) (bool, error) {
	var answer bool
	form := createConfirmForm(question, &answer)

	if len(c.opts) > 0 {
		program := tea.NewProgram(form, c.opts...)
		if _, err := program.Run(); err != nil {
			return false, err
		}
		return answer, nil
	}

	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}

func createConfirmForm(question string, answer *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(answer),
		),
	)
}
