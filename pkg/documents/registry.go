// Package documents models the open-document registry of an editor host.
//
// The unsaved-changes guard only consults this registry; a plain CLI run has
// no open editors, so the default registry never finds anything. Host
// integrations supply a real implementation.
package documents

import (
	"github.com/arthur-debert/folderize/pkg/types"
)

type noopRegistry struct{}

// NewNoopRegistry returns a registry that reports every path as closed.
func NewNoopRegistry() types.DocumentRegistry {
	return noopRegistry{}
}

func (noopRegistry) Find(string) (types.Document, bool) {
	return nil, false
}
