package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/storage/memory"
)

func TestConfigCmd_GetAndSet(t *testing.T) {
	store := memory.NewConfigStore()
	withWiring(t, Wiring{Config: store})

	out, _, err := execute(t, "config", "set", "toolchain.root", "/opt/gobn")
	require.NoError(t, err)
	assert.Contains(t, out, "Set toolchain.root")

	out, _, err = execute(t, "config", "get", "toolchain.root")
	require.NoError(t, err)
	assert.Contains(t, out, "/opt/gobn")
}

func TestConfigCmd_GetMissing(t *testing.T) {
	withWiring(t, Wiring{Config: memory.NewConfigStore()})

	out, _, err := execute(t, "config", "get", "absent")
	require.NoError(t, err)
	assert.Contains(t, out, "absent is not set")
}

func TestConfigCmd_SetCoercesTypes(t *testing.T) {
	store := memory.NewConfigStore()
	withWiring(t, Wiring{Config: store})

	_, _, err := execute(t, "config", "set", "solver.verbosity", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, store.GetInt("solver.verbosity"))

	_, _, err = execute(t, "config", "set", "data.header", "true")
	require.NoError(t, err)
	assert.True(t, store.GetBool("data.header"))
}

func TestConfigCmd_NoStore(t *testing.T) {
	withWiring(t, Wiring{})

	_, _, err := execute(t, "config", "get", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
