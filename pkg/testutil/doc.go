// Package testutil provides shared test infrastructure for folderize:
// in-memory and isolated filesystems, deterministic prompt stubs, and a stub
// open-document registry for exercising the unsaved-changes guard.
package testutil
