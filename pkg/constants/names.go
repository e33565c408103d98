// Package constants holds fixed names shared across folderize packages.
package constants

const (
	// IndexFileName is the fixed name of the entry that receives the original
	// file content inside the converted folder.
	IndexFileName = "index"

	// TempMarker is appended to the target path, together with a uniqueness
	// token, to park the content during a move conversion. The marker is
	// documented in the recovery help topic; changing it breaks manual
	// recovery instructions.
	TempMarker = ".folderize-"
)
