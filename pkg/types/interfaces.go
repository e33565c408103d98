package types

import (
	"io/fs"
)

// FS is the filesystem interface required for folderize operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// ChoiceOption is one selectable entry of a strategy prompt.
type ChoiceOption struct {
	Label string
	Value Choice
}

// Prompter is the injected user-prompt capability. The conversion core only
// ever talks to the user through it, so tests can substitute deterministic
// stubs.
type Prompter interface {
	// Choose presents an ordered list of options and returns the selected
	// value. ok is false when the prompt was dismissed without a selection.
	Choose(prompt string, options []ChoiceOption) (value Choice, ok bool, err error)

	// Confirm presents a binary choice with the given button labels and
	// returns true only for the affirmative button. Dismissal counts as the
	// negative answer.
	Confirm(message string, confirmLabel, cancelLabel string) (bool, error)
}

// Document is an open document that may carry unsaved modifications.
type Document interface {
	IsDirty() bool
	Save() error
}

// DocumentRegistry looks up open documents by path. A plain CLI run has no
// open documents; host integrations can supply a real registry.
type DocumentRegistry interface {
	Find(path string) (Document, bool)
}

// TargetProvider supplies a default target path when the command is invoked
// without one (the "currently focused document" of an editor host). ok is
// false when no default is available.
type TargetProvider func() (path string, ok bool)

// RevealFunc is a best-effort hook fired after a successful conversion to
// surface the new folder in a file explorer. Failures are ignored.
type RevealFunc func(folderPath string)
