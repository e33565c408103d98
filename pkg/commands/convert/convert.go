// Package convert implements the file-to-folder conversion command: an
// extension-less file becomes a same-named folder, optionally keeping its
// content as the folder's "index" entry.
package convert

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/folderize/pkg/config"
	"github.com/arthur-debert/folderize/pkg/constants"
	"github.com/arthur-debert/folderize/pkg/documents"
	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/filesystem"
	"github.com/arthur-debert/folderize/pkg/logging"
	"github.com/arthur-debert/folderize/pkg/paths"
	"github.com/arthur-debert/folderize/pkg/trash"
	"github.com/arthur-debert/folderize/pkg/types"
)

// Options holds options for the convert command
type Options struct {
	// TargetPath is the file to convert. Empty falls back to DefaultTarget.
	TargetPath string

	// DefaultTarget supplies a target when TargetPath is empty.
	DefaultTarget types.TargetProvider

	// Strategy short-circuits the prompt for non-empty files. Zero value
	// means ask; ChoiceReplaceEmpty is not accepted here (it is derived from
	// file size, never chosen).
	Strategy types.Choice

	// DryRun previews the conversion without mutating anything. Dry runs
	// never prompt; an unresolvable strategy is reported as such.
	DryRun bool

	// Config carries the merged configuration. Nil means defaults.
	Config *config.Config

	// FileSystem allows injecting a filesystem for testing. Nil means OS.
	FileSystem types.FS

	// Prompter is the user-prompt capability. Nil behaves as if every
	// prompt were dismissed.
	Prompter types.Prompter

	// Documents is the open-document registry for the unsaved-changes
	// guard. Nil means no open documents.
	Documents types.DocumentRegistry

	// Trasher overrides the trash location, mainly for tests. Nil means the
	// XDG trash.
	Trasher *trash.Trasher

	// Reveal is fired after a successful conversion. Best effort, skipped
	// in headless runs.
	Reveal types.RevealFunc
}

// Convert turns an extension-less file into a same-named folder. The
// filesystem ends in one of exactly two observable states for the move
// strategy: fully converted, or unchanged.
func Convert(opts Options) (*types.ConvertResult, error) {
	logger := logging.GetLogger("commands.convert")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	registry := opts.Documents
	if registry == nil {
		registry = documents.NewNoopRegistry()
	}

	target, err := paths.Classify(fsys, opts.TargetPath, paths.ClassifyOptions{
		DefaultTarget:    opts.DefaultTarget,
		RequireWorkspace: cfg.Workspace.Require && !cfg.Headless,
		WorkspaceRoot:    cfg.Workspace.Root,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("target", target.Path).
		Int64("size", target.Size).
		Bool("dryRun", opts.DryRun).
		Msg("Converting file to folder")

	if err := guardUnsavedChanges(registry, opts.Prompter, target); err != nil {
		return nil, err
	}

	// Destination check runs before any prompt so the user is not asked to
	// choose a strategy for a conversion that cannot proceed. A
	// non-directory entry at the folder path is the target file itself.
	if info, err := fsys.Stat(target.FolderPath()); err == nil && info.IsDir() {
		return nil, errors.Newf(errors.ErrFolderExists, "folder already exists: %s", target.FolderPath())
	}

	choice, err := resolveStrategy(opts, target)
	if err != nil {
		return nil, err
	}

	result := &types.ConvertResult{
		Target:     target.Path,
		FolderPath: target.FolderPath(),
		Strategy:   choice,
		DryRun:     opts.DryRun,
	}
	if choice == types.ChoiceMoveToIndex {
		result.IndexPath = target.IndexPath()
	}

	if opts.DryRun {
		logger.Info().Str("strategy", string(choice)).Msg("Dry run, no changes made")
		return result, nil
	}

	switch choice {
	case types.ChoiceReplaceEmpty, types.ChoiceDeleteToEmpty:
		err = convertDiscarding(fsys, cfg, opts.Trasher, target)
	case types.ChoiceMoveToIndex:
		err = convertPreserving(fsys, target)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unexpected strategy %q", choice)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("folder", result.FolderPath).
		Str("strategy", string(choice)).
		Msg("Conversion completed")

	if opts.Reveal != nil && !cfg.Headless {
		opts.Reveal(result.FolderPath)
	}
	return result, nil
}

// guardUnsavedChanges aborts when the target is open with unsaved edits and
// the user does not save-and-continue. Runs only for open, dirty documents.
func guardUnsavedChanges(registry types.DocumentRegistry, prompter types.Prompter, target *types.Target) error {
	doc, ok := registry.Find(target.Path)
	if !ok || !doc.IsDirty() {
		return nil
	}

	logger := logging.GetLogger("commands.convert")
	if prompter == nil {
		logger.Debug().Str("target", target.Path).Msg("Dirty document and no prompter, cancelling")
		return errors.New(errors.ErrCancelled, "conversion cancelled")
	}

	proceed, err := prompter.Confirm(
		fmt.Sprintf("%s has unsaved changes.", target.Base),
		"Save & Continue", "Cancel")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "confirmation prompt failed")
	}
	if !proceed {
		return errors.New(errors.ErrCancelled, "conversion cancelled")
	}
	if err := doc.Save(); err != nil {
		// A refused or failed save aborts like a decline, the save error is
		// only logged.
		logger.Warn().Err(err).Str("target", target.Path).Msg("Saving the document failed, cancelling")
		return errors.New(errors.ErrCancelled, "conversion cancelled")
	}
	return nil
}

// resolveStrategy decides which conversion applies without mutating the
// filesystem.
func resolveStrategy(opts Options, target *types.Target) (types.Choice, error) {
	if target.Size == 0 {
		return types.ChoiceReplaceEmpty, nil
	}

	switch opts.Strategy {
	case types.ChoiceMoveToIndex, types.ChoiceDeleteToEmpty:
		return opts.Strategy, nil
	case types.ChoiceCancel:
		return "", errors.New(errors.ErrCancelled, "conversion cancelled")
	case "":
		// fall through to the prompt
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "invalid strategy %q", opts.Strategy)
	}

	if opts.DryRun {
		// Dry runs never prompt; report that a choice would be required.
		return "", nil
	}
	if opts.Prompter == nil {
		return "", errors.New(errors.ErrCancelled, "conversion cancelled")
	}

	value, ok, err := opts.Prompter.Choose(
		fmt.Sprintf("%s is not empty. What should happen to its contents?", target.Base),
		[]types.ChoiceOption{
			{Label: "Move contents into folder as index", Value: types.ChoiceMoveToIndex},
			{Label: "Delete contents and create empty folder", Value: types.ChoiceDeleteToEmpty},
			{Label: "Cancel", Value: types.ChoiceCancel},
		})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "strategy prompt failed")
	}
	if !ok || value == types.ChoiceCancel {
		return "", errors.New(errors.ErrCancelled, "conversion cancelled")
	}
	return value, nil
}

// convertDiscarding deletes the file and creates the empty folder. The two
// steps are deliberately not wrapped in rollback: once deletion succeeded
// there is nothing left to restore. Content loss is either impossible
// (replace-empty) or user-consented (delete-to-empty).
func convertDiscarding(fsys types.FS, cfg *config.Config, trasher *trash.Trasher, target *types.Target) error {
	if cfg.Trash.Enabled && !cfg.Headless {
		if trasher == nil {
			trasher = trash.New(fsys)
		}
		if err := trasher.Trash(target.Path); err != nil {
			return classifyMutationError(err, errors.ErrFileDelete, "failed to delete "+target.Base)
		}
	} else {
		if err := fsys.Remove(target.Path); err != nil {
			return classifyMutationError(err, errors.ErrFileDelete, "failed to delete "+target.Base)
		}
	}

	if err := fsys.Mkdir(target.FolderPath(), 0755); err != nil {
		return classifyMutationError(err, errors.ErrDirCreate, "failed to create folder "+target.FolderPath())
	}
	return nil
}

// convertPreserving relocates the content into the new folder as "index"
// using a temp-name rename so a failure at any step can restore the
// original file.
func convertPreserving(fsys types.FS, target *types.Target) error {
	logger := logging.GetLogger("commands.convert")
	tempPath := target.Path + constants.TempMarker + strconv.FormatInt(time.Now().UnixNano(), 10)

	if err := fsys.Rename(target.Path, tempPath); err != nil {
		// Nothing has changed yet; abort outright.
		return classifyMutationError(err, errors.ErrFileMove, "failed to move "+target.Base+" aside")
	}

	if err := fsys.Mkdir(target.FolderPath(), 0755); err != nil {
		return rollback(fsys, logger, target, tempPath,
			classifyMutationError(err, errors.ErrDirCreate, "failed to create folder "+target.FolderPath()))
	}

	if err := fsys.Rename(tempPath, target.IndexPath()); err != nil {
		return rollback(fsys, logger, target, tempPath,
			classifyMutationError(err, errors.ErrFileMove, "failed to move content into "+target.IndexPath()))
	}

	return nil
}

// rollback restores the original file from its temp name and re-raises the
// triggering error. When the restore itself fails, the content still
// survives at the temp path; the returned error names it so the user can
// recover manually.
func rollback(fsys types.FS, logger zerolog.Logger, target *types.Target, tempPath string, cause *errors.FolderizeError) error {
	if rbErr := fsys.Rename(tempPath, target.Path); rbErr != nil {
		logger.Error().
			Err(rbErr).
			Str("tempPath", tempPath).
			Msg("Rollback failed, original content preserved at temp path")
		cause.Message += "; original content preserved at " + tempPath
		return cause.
			WithDetail("tempPath", tempPath).
			WithDetail("rollbackError", rbErr.Error())
	}
	logger.Debug().Str("target", target.Path).Msg("Rolled back temp rename")
	return cause
}

// classifyMutationError rewrites permission-coded failures into a single
// human-readable message; every other error keeps its native detail.
func classifyMutationError(err error, code errors.ErrorCode, message string) *errors.FolderizeError {
	if stderrors.Is(err, fs.ErrPermission) {
		return errors.Wrap(err, errors.ErrPermission, "permission denied")
	}
	return errors.Wrap(err, code, message)
}
