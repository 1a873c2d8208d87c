package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/storage/memory"
	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

func TestHistoryServiceListAndGet(t *testing.T) {
	ctx := context.Background()
	runs := memory.NewRunStore()
	svc := NewHistoryService(runs)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, domain.RunRecord{ID: "run-1", StartedAt: base, Succeeded: true}))
	require.NoError(t, runs.Save(ctx, domain.RunRecord{ID: "run-2", StartedAt: base.Add(time.Minute)}))

	records, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "run-2", records[0].ID)

	got, err := svc.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.True(t, got.Succeeded)

	_, err = svc.Get(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
