package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

func TestConstraintServiceSetRejectsInvalid(t *testing.T) {
	svc := NewConstraintService(filepath.Join(t.TempDir(), "constraints.con"))

	valid := domain.ConstraintSet{
		Edges: []domain.EdgeRequirement{{Parent: "smoking", Child: "cancer"}},
	}
	require.NoError(t, svc.Set(valid))

	invalid := domain.ConstraintSet{
		Edges: []domain.EdgeRequirement{{Parent: "", Child: "cancer"}},
	}
	err := svc.Set(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedConstraint)

	// The previous set stays active after a rejected replacement.
	assert.Equal(t, valid, svc.Current())
}

func TestConstraintServicePersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.con")
	svc := NewConstraintService(path)

	require.NoError(t, svc.Set(domain.ConstraintSet{
		Edges:    []domain.EdgeRequirement{{Parent: "smoking", Child: "cancer"}},
		NonEdges: []domain.NonEdgeRequirement{{Parent: "cancer", Child: "smoking"}},
		Independencies: []domain.IndependenceStatement{
			{Left: []domain.VariableName{"tar"}, Right: []domain.VariableName{"age"}},
		},
	}))
	require.NoError(t, svc.Persist())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cancer<-smoking\n~smoking<-cancer\ntar_|_age|\n", string(content))
}

func TestConstraintServicePersistEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.con")
	svc := NewConstraintService(path)

	require.NoError(t, svc.Persist())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(content))
}

func TestConstraintServicePersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.con")
	svc := NewConstraintService(path)

	set := domain.ConstraintSet{
		Edges: []domain.EdgeRequirement{{Parent: "X", Child: "Y"}},
		Independencies: []domain.IndependenceStatement{
			{
				Left:  []domain.VariableName{"A"},
				Right: []domain.VariableName{"B"},
				Given: []domain.VariableName{"C", "D"},
			},
		},
	}
	require.NoError(t, svc.Set(set))
	require.NoError(t, svc.Persist())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	parsed, err := domain.ParseConstraints(strings.Split(string(content), "\n"))
	require.NoError(t, err)
	assert.Equal(t, set, parsed)
}
