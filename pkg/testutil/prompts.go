package testutil

import (
	"github.com/arthur-debert/folderize/pkg/types"
)

// StubPrompter is a deterministic types.Prompter for tests. It records every
// prompt it was shown and answers from its fields.
type StubPrompter struct {
	// ChooseValue and ChooseOK are returned from Choose. ChooseOK false
	// simulates a dismissed prompt.
	ChooseValue types.Choice
	ChooseOK    bool
	ChooseErr   error

	// ConfirmResult is returned from Confirm.
	ConfirmResult bool
	ConfirmErr    error

	// Recorded prompts, in order.
	ChoosePrompts  []string
	ChooseOptions  [][]types.ChoiceOption
	ConfirmPrompts []string
}

var _ types.Prompter = (*StubPrompter)(nil)

func (s *StubPrompter) Choose(prompt string, options []types.ChoiceOption) (types.Choice, bool, error) {
	s.ChoosePrompts = append(s.ChoosePrompts, prompt)
	s.ChooseOptions = append(s.ChooseOptions, options)
	return s.ChooseValue, s.ChooseOK, s.ChooseErr
}

func (s *StubPrompter) Confirm(message string, confirmLabel, cancelLabel string) (bool, error) {
	s.ConfirmPrompts = append(s.ConfirmPrompts, message)
	return s.ConfirmResult, s.ConfirmErr
}

// SelectPrompter returns a prompter that always selects the given value.
func SelectPrompter(value types.Choice) *StubPrompter {
	return &StubPrompter{ChooseValue: value, ChooseOK: true}
}

// DismissPrompter returns a prompter that dismisses every prompt.
func DismissPrompter() *StubPrompter {
	return &StubPrompter{}
}
