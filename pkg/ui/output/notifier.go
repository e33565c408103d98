package output

import (
	"fmt"
	"io"
	"os"
)

// Notifier emits the info/warning/error/success notifications of a command
// invocation. Every user-facing outcome goes through here; logs are separate.
type Notifier struct {
	out    io.Writer
	format Format
}

// NewConsole creates a Notifier writing to stderr with auto-detected styling.
func NewConsole() *Notifier {
	return &Notifier{out: os.Stderr, format: DetectFormat(os.Stderr)}
}

// New creates a Notifier with an explicit writer and format. Tests pass a
// buffer and FormatText.
func New(out io.Writer, format Format) *Notifier {
	if format == FormatAuto {
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		} else {
			format = FormatText
		}
	}
	return &Notifier{out: out, format: format}
}

// Info reports a neutral informational message.
func (n *Notifier) Info(format string, args ...interface{}) {
	n.emit("Info", "", format, args...)
}

// Warn reports an ineligibility or other non-fatal condition.
func (n *Notifier) Warn(format string, args ...interface{}) {
	n.emit("Warning", "! ", format, args...)
}

// Error reports a failed conversion.
func (n *Notifier) Error(format string, args ...interface{}) {
	n.emit("Error", "✖ ", format, args...)
}

// Success reports a completed conversion.
func (n *Notifier) Success(format string, args ...interface{}) {
	n.emit("Success", "✔ ", format, args...)
}

func (n *Notifier) emit(styleName, prefix, format string, args ...interface{}) {
	msg := prefix + fmt.Sprintf(format, args...)
	if n.format == FormatTerminal {
		msg = GetStyle(styleName).Render(msg)
	}
	fmt.Fprintln(n.out, msg)
}
