package testutil

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/arthur-debert/folderize/pkg/filesystem"
	"github.com/arthur-debert/folderize/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// FaultyFS wraps a types.FS and injects failures into selected operations.
// Used to exercise the rollback paths of the move strategy.
type FaultyFS struct {
	types.FS

	// MkdirErr fails every Mkdir call when non-nil.
	MkdirErr error

	// RenameHook runs before each Rename; a non-nil return fails the call.
	RenameHook func(oldpath, newpath string) error
}

func (f *FaultyFS) Mkdir(path string, perm fs.FileMode) error {
	if f.MkdirErr != nil {
		return f.MkdirErr
	}
	return f.FS.Mkdir(path, perm)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if f.RenameHook != nil {
		if err := f.RenameHook(oldpath, newpath); err != nil {
			return err
		}
	}
	return f.FS.Rename(oldpath, newpath)
}
