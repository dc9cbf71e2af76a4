package services

import (
	"context"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

// SyncSvcFacade reconciles batches of client-cached transactions into the
// ledger. Reconciliation is idempotent per item: resubmitting a batch after a
// partial failure never creates duplicates.
type SyncSvcFacade interface {
	SyncBatch(ctx context.Context, userID string, candidates []dto.SyncTransactionRequest) (*domain.SyncResult, error)
}
