package driving

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// Installer manages the solver toolchain's unpack/build lifecycle.
type Installer interface {
	// EnsureBuilt brings both dependencies to the BUILT state, issuing
	// only the missing transitions. Idempotent: when already built it
	// performs no action and returns nil.
	EnsureBuilt(ctx context.Context) error

	// Status reports the current installation state per dependency,
	// derived by probing the filesystem.
	Status(ctx context.Context) (map[domain.Dependency]domain.InstallationState, error)

	// Clean removes the extracted solver and backend directories.
	// The distribution archives are kept.
	Clean(ctx context.Context) error
}
