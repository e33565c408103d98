package testutil

import (
	"github.com/arthur-debert/folderize/pkg/types"
)

// StubDocument is a deterministic types.Document for guard tests.
type StubDocument struct {
	Dirty   bool
	SaveErr error

	// Saved records whether Save was called (and succeeded).
	Saved bool
}

var _ types.Document = (*StubDocument)(nil)

func (d *StubDocument) IsDirty() bool {
	return d.Dirty
}

func (d *StubDocument) Save() error {
	if d.SaveErr != nil {
		return d.SaveErr
	}
	d.Dirty = false
	d.Saved = true
	return nil
}

// StubRegistry maps paths to stub documents.
type StubRegistry struct {
	Docs map[string]*StubDocument
}

var _ types.DocumentRegistry = (*StubRegistry)(nil)

func (r *StubRegistry) Find(path string) (types.Document, bool) {
	doc, ok := r.Docs[path]
	return doc, ok
}

// NewStubRegistry creates a registry holding a single open document.
func NewStubRegistry(path string, doc *StubDocument) *StubRegistry {
	return &StubRegistry{Docs: map[string]*StubDocument{path: doc}}
}
