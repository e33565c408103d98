// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/folderize/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "target does not exist",
			wantStr: "[NOT_FOUND] target does not exist",
		},
		{
			name:    "folder_exists_error",
			code:    errors.ErrFolderExists,
			message: "folder already exists",
			wantStr: "[FOLDER_EXISTS] folder already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if err.Error() != tt.wantStr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrHasExtension, "only extension-less files are eligible, got %q", "app.ts")

	want := `[HAS_EXTENSION] only extension-less files are eligible, got "app.ts"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	underlying := stderrors.New("rename: operation not permitted")
	err := errors.Wrap(underlying, errors.ErrFileMove, "failed to move file")

	if err.Code != errors.ErrFileMove {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileMove)
	}

	if !stderrors.Is(err, underlying) {
		t.Error("Wrap() should keep the underlying error in the chain")
	}

	want := "[FILE_MOVE] failed to move file: rename: operation not permitted"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrInternal, "no-op"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrInternal, "no-op %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrCancelled, "user cancelled")

	if !errors.IsErrorCode(err, errors.ErrCancelled) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrPermission) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrCancelled) {
		t.Error("IsErrorCode() should not match a plain error")
	}

	// Wrapped FolderizeError is still matched through the chain
	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("IsErrorCode() should match the outermost code")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrNoTarget, "nothing selected")); got != errors.ErrNoTarget {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrNoTarget)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileMove, "rollback failed").
		WithDetail("tempPath", "/work/config.folderize-123")

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("GetErrorDetails() should return the details map")
	}
	if details["tempPath"] != "/work/config.folderize-123" {
		t.Errorf("details[tempPath] = %v, want the temp path", details["tempPath"])
	}
}

func TestErrorsIs(t *testing.T) {
	a := errors.New(errors.ErrFolderExists, "one message")
	b := errors.New(errors.ErrFolderExists, "another message")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should satisfy errors.Is")
	}
}
