// pkg/paths/classify_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test eligibility guards: resolution, scheme, workspace, kind, extension

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/filesystem"
	"github.com/arthur-debert/folderize/pkg/paths"
	"github.com/arthur-debert/folderize/pkg/types"
)

func newMemFS(t *testing.T) types.FS {
	t.Helper()
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

func TestClassify_EligibleFile(t *testing.T) {
	// Setup
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work/api", []byte("contents"), 0644))

	// Execute
	target, err := paths.Classify(fs, "/work/api", paths.ClassifyOptions{})

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "/work/api", target.Path)
	assert.Equal(t, "/work", target.Dir)
	assert.Equal(t, "api", target.Base)
	assert.Empty(t, target.Ext)
	assert.Equal(t, int64(len("contents")), target.Size)
	assert.Equal(t, "/work/api", target.FolderPath(), "folder path equals the target path")
	assert.Equal(t, filepath.Join("/work/api", "index"), target.IndexPath())
}

func TestClassify_NoTarget(t *testing.T) {
	fs := newMemFS(t)

	_, err := paths.Classify(fs, "", paths.ClassifyOptions{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrNoTarget))
}

func TestClassify_DefaultTargetProvider(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work/notes", nil, 0644))

	provider := func() (string, bool) { return "/work/notes", true }
	target, err := paths.Classify(fs, "", paths.ClassifyOptions{DefaultTarget: provider})

	require.NoError(t, err)
	assert.Equal(t, "/work/notes", target.Path)
}

func TestClassify_DefaultTargetProviderEmpty(t *testing.T) {
	fs := newMemFS(t)

	provider := func() (string, bool) { return "", false }
	_, err := paths.Classify(fs, "", paths.ClassifyOptions{DefaultTarget: provider})

	assert.True(t, errors.IsErrorCode(err, errors.ErrNoTarget))
}

func TestClassify_RemoteScheme(t *testing.T) {
	fs := newMemFS(t)

	_, err := paths.Classify(fs, "vscode-remote://wsl/home/user/api", paths.ClassifyOptions{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPath))
}

func TestClassify_OutsideWorkspace(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/elsewhere/api", nil, 0644))

	_, err := paths.Classify(fs, "/elsewhere/api", paths.ClassifyOptions{
		RequireWorkspace: true,
		WorkspaceRoot:    "/work",
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrOutsideWorkspace))
}

func TestClassify_InsideWorkspace(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work/sub/api", nil, 0644))

	target, err := paths.Classify(fs, "/work/sub/api", paths.ClassifyOptions{
		RequireWorkspace: true,
		WorkspaceRoot:    "/work",
	})

	require.NoError(t, err)
	assert.Equal(t, "/work/sub/api", target.Path)
}

func TestClassify_WorkspaceSiblingPrefix(t *testing.T) {
	// /workspace-other must not pass as being inside /work
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work-other/api", nil, 0644))

	_, err := paths.Classify(fs, "/work-other/api", paths.ClassifyOptions{
		RequireWorkspace: true,
		WorkspaceRoot:    "/work",
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrOutsideWorkspace))
}

func TestClassify_Missing(t *testing.T) {
	fs := newMemFS(t)

	_, err := paths.Classify(fs, "/work/ghost", paths.ClassifyOptions{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestClassify_AlreadyFolder(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.MkdirAll("/work/api", 0755))

	_, err := paths.Classify(fs, "/work/api", paths.ClassifyOptions{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyFolder))
}

func TestClassify_HasExtension(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work/app.ts", nil, 0644))

	_, err := paths.Classify(fs, "/work/app.ts", paths.ClassifyOptions{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrHasExtension))
}

func TestClassify_DotfileIsEligible(t *testing.T) {
	fs := newMemFS(t)
	require.NoError(t, fs.WriteFile("/work/.env", nil, 0644))

	target, err := paths.Classify(fs, "/work/.env", paths.ClassifyOptions{})

	require.NoError(t, err)
	assert.Equal(t, ".env", target.Base)
	assert.Empty(t, target.Ext)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", "/home/tester"},
		{"tilde slash", "~/notes", "/home/tester/notes"},
		{"no tilde", "/work/notes", "/work/notes"},
		{"tilde user untouched", "~other/notes", "~other/notes"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}
