// Package prompts provides the interactive prompt implementations behind the
// types.Prompter capability.
package prompts

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/folderize/pkg/logging"
	"github.com/arthur-debert/folderize/pkg/types"
)

// ConsolePrompter implements types.Prompter on the terminal via pterm.
// When stdin is not a terminal every prompt resolves as dismissed, which the
// conversion core treats as cancel.
type ConsolePrompter struct {
	interactive bool
}

// NewConsole creates a prompter bound to the process terminal.
func NewConsole() *ConsolePrompter {
	fd := os.Stdin.Fd()
	return &ConsolePrompter{
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// newForTest builds a prompter with explicit interactivity.
func newForTest(interactive bool) *ConsolePrompter {
	return &ConsolePrompter{interactive: interactive}
}

// Choose presents an ordered select list and returns the selected value.
func (p *ConsolePrompter) Choose(prompt string, options []types.ChoiceOption) (types.Choice, bool, error) {
	if !p.interactive {
		logger := logging.GetLogger("ui.prompts")
		logger.Debug().Str("prompt", prompt).Msg("Non-interactive stdin, prompt dismissed")
		return "", false, nil
	}

	labels := make([]string, len(options))
	byLabel := make(map[string]types.Choice, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
		byLabel[opt.Label] = opt.Value
	}

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		Show(prompt)
	if err != nil {
		return "", false, err
	}
	value, ok := byLabel[selected]
	return value, ok, nil
}

// Confirm presents a binary confirmation with custom button labels.
func (p *ConsolePrompter) Confirm(message string, confirmLabel, cancelLabel string) (bool, error) {
	if !p.interactive {
		logger := logging.GetLogger("ui.prompts")
		logger.Debug().Str("message", message).Msg("Non-interactive stdin, confirmation declined")
		return false, nil
	}

	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		WithConfirmText(confirmLabel).
		WithRejectText(cancelLabel).
		Show(message)
}
