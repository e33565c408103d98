// pkg/trash/trash_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test trash moves, info entries, and name collisions

package trash_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/folderize/pkg/filesystem"
	"github.com/arthur-debert/folderize/pkg/trash"
	"github.com/arthur-debert/folderize/pkg/types"
)

func newEnv(t *testing.T) (types.FS, *trash.Trasher) {
	t.Helper()
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	return fs, trash.NewAt(fs, "/home/tester/.local/share/Trash")
}

func TestTrash_MovesFileAndWritesInfo(t *testing.T) {
	// Setup
	fs, tr := newEnv(t)
	require.NoError(t, fs.WriteFile("/work/config", []byte("content"), 0644))

	// Execute
	err := tr.Trash("/work/config")

	// Verify
	require.NoError(t, err)

	_, statErr := fs.Stat("/work/config")
	assert.Error(t, statErr, "original file should be gone")

	trashed, err := fs.ReadFile("/home/tester/.local/share/Trash/files/config")
	require.NoError(t, err)
	assert.Equal(t, "content", string(trashed))

	info, err := fs.ReadFile("/home/tester/.local/share/Trash/info/config.trashinfo")
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), "Path=/work/config")
	assert.Contains(t, string(info), "DeletionDate=")
}

func TestTrash_CollidingNamesGetSuffixed(t *testing.T) {
	fs, tr := newEnv(t)
	require.NoError(t, fs.WriteFile("/work/config", []byte("first"), 0644))
	require.NoError(t, tr.Trash("/work/config"))
	require.NoError(t, fs.WriteFile("/work/config", []byte("second"), 0644))

	require.NoError(t, tr.Trash("/work/config"))

	first, err := fs.ReadFile("/home/tester/.local/share/Trash/files/config")
	require.NoError(t, err)
	assert.Equal(t, "first", string(first))

	second, err := fs.ReadFile("/home/tester/.local/share/Trash/files/config.2")
	require.NoError(t, err)
	assert.Equal(t, "second", string(second))

	_, err = fs.Stat("/home/tester/.local/share/Trash/info/config.2.trashinfo")
	assert.NoError(t, err, "suffixed info entry should exist")
}

func TestTrash_MissingSource(t *testing.T) {
	fs, tr := newEnv(t)

	err := tr.Trash("/work/ghost")

	assert.Error(t, err)

	// The consistency cleanup must not leave an orphan info entry behind
	_, statErr := fs.Stat("/home/tester/.local/share/Trash/info/ghost.trashinfo")
	assert.Error(t, statErr)
}
