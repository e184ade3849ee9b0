package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
)

func TestSyncHistoryNewestFirst(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, store.WriteSyncHistory(context.Background(), []models.SyncRecord{
		{ID: "1", Timestamp: "2024-01-01 08:00:00", Success: true},
		{ID: "2", Timestamp: "2024-01-02 08:00:00", Success: false, Error: "disk full"},
		{ID: "3", Timestamp: "2024-01-03 08:00:00", Success: true},
	}))
	svc := NewSyncService(store, zap.NewNop())

	resp, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, resp.History, 3)
	assert.Equal(t, "3", resp.History[0].ID)
	assert.Equal(t, "1", resp.History[2].ID)
	assert.Equal(t, 2, resp.Statistics.SuccessfulSyncs)
	assert.Equal(t, 1, resp.Statistics.FailedSyncs)
	assert.Equal(t, "66.67", resp.Statistics.SuccessRate)
}

func TestSyncHistoryLimitKeepsFullStatistics(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, store.WriteSyncHistory(context.Background(), []models.SyncRecord{
		{ID: "1", Success: true},
		{ID: "2", Success: true},
		{ID: "3", Success: false},
	}))
	svc := NewSyncService(store, zap.NewNop())

	resp, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "3", resp.History[0].ID)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Statistics.SuccessfulSyncs)
}

func TestSyncHistoryEmpty(t *testing.T) {
	svc := NewSyncService(repository.NewMemoryStore(), zap.NewNop())

	resp, err := svc.History(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, resp.History)
	assert.Equal(t, "0", resp.Statistics.SuccessRate)
}
