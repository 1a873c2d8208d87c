package normalisers

import (
	"sync"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry selects a data normaliser by input kind.
type Registry struct {
	mu     sync.RWMutex
	byKind map[domain.DataInputKind]driven.DataNormaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.DataNormaliser) *Registry {
	r := &Registry{
		byKind: make(map[domain.DataInputKind]driven.DataNormaliser, len(normalisers)),
	}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser, replacing any previous one for its kind.
func (r *Registry) Register(n driven.DataNormaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKind[n.InputKind()] = n
}

// For returns the normaliser registered for the kind, if any.
func (r *Registry) For(kind domain.DataInputKind) (driven.DataNormaliser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byKind[kind]
	return n, ok
}
