package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// SyncService reads the backup audit log.
type SyncService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewSyncService constructs the sync history service.
func NewSyncService(store repository.Store, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{store: store, logger: logger}
}

// History returns sync records newest first, truncated to limit when
// positive. The success statistics always cover the full log.
func (s *SyncService) History(ctx context.Context, limit int) (*dto.SyncHistoryResponse, error) {
	history, err := s.store.ReadSyncHistory(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sync history")
	}

	successful := 0
	for _, record := range history {
		if record.Success {
			successful++
		}
	}
	failed := len(history) - successful

	newestFirst := make([]models.SyncRecord, len(history))
	for i, record := range history {
		newestFirst[len(history)-1-i] = record
	}
	if limit > 0 && limit < len(newestFirst) {
		newestFirst = newestFirst[:limit]
	}

	return &dto.SyncHistoryResponse{
		Success: true,
		Count:   len(newestFirst),
		Total:   len(history),
		Statistics: dto.SyncHistoryStatistics{
			SuccessfulSyncs: successful,
			FailedSyncs:     failed,
			SuccessRate:     rate(successful, len(history)),
		},
		History:   newestFirst,
		Timestamp: models.Now(),
	}, nil
}
