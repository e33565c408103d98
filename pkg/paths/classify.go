// Package paths implements the eligibility checks that run before a
// conversion touches the filesystem. Classification is read-only: it either
// yields a types.Target or a coded rejection, never a mutation.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/logging"
	"github.com/arthur-debert/folderize/pkg/types"
)

// ClassifyOptions configures the eligibility guards.
type ClassifyOptions struct {
	// DefaultTarget supplies a target path when none was given, e.g. the
	// focused document of an editor host. Nil means no fallback.
	DefaultTarget types.TargetProvider

	// RequireWorkspace rejects targets outside WorkspaceRoot. Automated and
	// headless runs switch this off.
	RequireWorkspace bool

	// WorkspaceRoot is the workspace directory for the membership check.
	// Empty means the current working directory.
	WorkspaceRoot string
}

// Classify inspects a candidate path and decides whether conversion is
// eligible. The checks run in order and short-circuit on the first failure:
// a target must be resolvable, local, inside the workspace, an existing
// regular file, and extension-less.
func Classify(fsys types.FS, candidate string, opts ClassifyOptions) (*types.Target, error) {
	logger := logging.GetLogger("paths.classify")

	if candidate == "" && opts.DefaultTarget != nil {
		if path, ok := opts.DefaultTarget(); ok {
			candidate = path
			logger.Debug().Str("path", candidate).Msg("Using default target")
		}
	}
	if candidate == "" {
		return nil, errors.New(errors.ErrNoTarget, "no target selected")
	}

	if !isLocalPath(candidate) {
		return nil, errors.Newf(errors.ErrUnsupportedPath,
			"unsupported location %q: only files on the local filesystem can be converted", candidate)
	}

	abs, err := filepath.Abs(ExpandHome(candidate))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %q", candidate)
	}

	if opts.RequireWorkspace {
		root := opts.WorkspaceRoot
		if root == "" {
			root, err = os.Getwd()
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
			}
		}
		if !isWithin(root, abs) {
			return nil, errors.Newf(errors.ErrOutsideWorkspace,
				"%s is outside the workspace root %s", abs, root)
		}
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "target does not exist: %s", abs)
		}
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot inspect target %s", abs)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrAlreadyFolder, "target is already a folder: %s", abs)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Newf(errors.ErrUnsupportedPath, "target is not a regular file: %s", abs)
	}

	base := filepath.Base(abs)
	ext := extension(base)
	if ext != "" {
		return nil, errors.Newf(errors.ErrHasExtension,
			"only extension-less files are eligible, %s has extension %q", base, ext)
	}

	target := &types.Target{
		Path: abs,
		Dir:  filepath.Dir(abs),
		Base: base,
		Ext:  ext,
		Size: info.Size(),
	}
	logger.Debug().
		Str("path", target.Path).
		Int64("size", target.Size).
		Msg("Target classified as eligible")
	return target, nil
}

// isLocalPath rejects URL-style paths of virtual or remote filesystems
// (vscode-remote://..., memfs://...).
func isLocalPath(path string) bool {
	return !strings.Contains(path, "://")
}

// extension returns the file extension of base, treating dotfiles like
// ".bashrc" as extension-less.
func extension(base string) string {
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// isWithin reports whether path lies at or below root.
func isWithin(root, path string) bool {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(rootAbs, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
