package types

import (
	"path/filepath"

	"github.com/arthur-debert/folderize/pkg/constants"
)

// Target identifies an eligible file under conversion. It is produced by the
// path classifier and is never constructed for a path that failed a guard.
type Target struct {
	// Path is the absolute path of the file.
	Path string

	// Dir, Base and Ext are the parsed components of Path. Ext is always
	// empty for an eligible target; it is carried for logging.
	Dir  string
	Base string
	Ext  string

	// Size is the file size in bytes at classification time.
	Size int64
}

// FolderPath returns the destination directory path. Since an eligible target
// has no extension, this is the same path as the target itself.
func (t Target) FolderPath() string {
	return filepath.Join(t.Dir, t.Base)
}

// IndexPath returns the path of the index file inside the destination folder.
func (t Target) IndexPath() string {
	return filepath.Join(t.FolderPath(), constants.IndexFileName)
}

// Choice is the resolved conversion strategy.
type Choice string

const (
	// ChoiceReplaceEmpty replaces an empty file with an empty folder.
	ChoiceReplaceEmpty Choice = "replace-empty"

	// ChoiceMoveToIndex moves the file content into the folder as "index".
	ChoiceMoveToIndex Choice = "move-to-index"

	// ChoiceDeleteToEmpty discards the content and creates an empty folder.
	ChoiceDeleteToEmpty Choice = "delete-to-empty"

	// ChoiceCancel aborts the conversion with no filesystem change.
	ChoiceCancel Choice = "cancel"
)

// ConvertResult reports a completed (or previewed) conversion.
type ConvertResult struct {
	// Target is the original file path.
	Target string

	// FolderPath is the directory that replaced the file.
	FolderPath string

	// IndexPath is the path of the preserved content, empty unless the move
	// strategy ran.
	IndexPath string

	// Strategy is the choice that was executed.
	Strategy Choice

	// DryRun is true when the result describes a preview and nothing was
	// mutated.
	DryRun bool
}
