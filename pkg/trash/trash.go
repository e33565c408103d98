// Package trash implements reversible deletion per the freedesktop.org
// Trash specification: trashed files land under <data-home>/Trash/files with
// a matching .trashinfo entry so desktop environments can restore them.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/logging"
	"github.com/arthur-debert/folderize/pkg/types"
)

// Trasher moves files into a trash directory instead of deleting them.
type Trasher struct {
	fsys types.FS
	root string
}

// New creates a Trasher rooted at the user's XDG trash directory.
func New(fsys types.FS) *Trasher {
	return NewAt(fsys, filepath.Join(xdg.DataHome, "Trash"))
}

// NewAt creates a Trasher rooted at an explicit directory. Used by tests and
// by callers that manage their own trash location.
func NewAt(fsys types.FS, root string) *Trasher {
	return &Trasher{fsys: fsys, root: root}
}

// Trash moves path into the trash. The .trashinfo entry is written before
// the file moves so a crash between the two steps leaves a stale info file
// rather than an untracked trashed file.
func (t *Trasher) Trash(path string) error {
	logger := logging.GetLogger("trash")

	filesDir := filepath.Join(t.root, "files")
	infoDir := filepath.Join(t.root, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := t.fsys.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "cannot prepare trash directory %s", dir)
		}
	}

	name := t.uniqueName(filesDir, infoDir, filepath.Base(path))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		path, time.Now().Format("2006-01-02T15:04:05"))
	if err := t.fsys.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot write trash info for %s", path)
	}

	if err := t.fsys.Rename(path, filepath.Join(filesDir, name)); err != nil {
		// Undo the info entry so the trash stays consistent.
		_ = t.fsys.Remove(infoPath)
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot move %s to trash", path)
	}

	logger.Debug().Str("path", path).Str("trashedAs", name).Msg("File moved to trash")
	return nil
}

// uniqueName picks a name unused by both the files and info directories,
// suffixing with a counter on collision the way desktop trash tools do.
func (t *Trasher) uniqueName(filesDir, infoDir, base string) string {
	name := base
	for i := 2; ; i++ {
		if !t.exists(filepath.Join(filesDir, name)) && !t.exists(filepath.Join(infoDir, name+".trashinfo")) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}

func (t *Trasher) exists(path string) bool {
	_, err := t.fsys.Stat(path)
	return !os.IsNotExist(err)
}
