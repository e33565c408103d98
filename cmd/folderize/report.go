package folderize

import (
	stderrors "errors"

	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/ui/output"
)

// Report maps a command error to a notification and exit code. A user cancel
// is not a failure: the prompt was the interaction, nothing more to say.
func Report(err error) int {
	return report(err, output.NewConsole())
}

func report(err error, notifier *output.Notifier) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrCancelled:
		return 0
	case errors.ErrNoTarget,
		errors.ErrUnsupportedPath,
		errors.ErrOutsideWorkspace,
		errors.ErrNotFound,
		errors.ErrAlreadyFolder,
		errors.ErrHasExtension,
		errors.ErrFolderExists:
		notifier.Warn("%s", errorMessage(err))
		return 1
	default:
		notifier.Error("%s", errorMessage(err))
		return 1
	}
}

// errorMessage strips the error-code prefix for display; codes are for logs
// and tests, not users.
func errorMessage(err error) string {
	var folderizeErr *errors.FolderizeError
	if stderrors.As(err, &folderizeErr) {
		return folderizeErr.Message
	}
	return err.Error()
}
