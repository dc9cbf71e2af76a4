package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// syncService reconciles batches of client-cached (possibly offline-created)
// transactions into the ledger. Each candidate carries a client-generated
// localId; reconciliation is a find-or-create keyed on (owner, localId), so
// resubmitting the same batch after a partial failure never duplicates
// entries.
//
// The batch is deliberately not atomic: every item persists independently,
// and a failing item is reported under its localId while earlier items stay
// committed. The client retries just the failed items (or the whole batch,
// which is equally safe).
type syncService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewSyncService creates a new SyncService.
func NewSyncService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.SyncSvcFacade {
	return &syncService{txnRepo: txnRepo}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// SyncBatch merges the candidates into the owner's ledger in input order.
func (s *syncService) SyncBatch(ctx context.Context, userID string, candidates []dto.SyncTransactionRequest) (*domain.SyncResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result := &domain.SyncResult{Synced: []domain.Transaction{}}

	for i, candidate := range candidates {
		txn, err := s.reconcileOne(ctx, userID, candidate)
		if err != nil {
			logger.Warn("Sync item failed",
				slog.Int("index", i),
				slog.String("local_id", candidate.LocalID),
				slog.String("error", err.Error()))
			result.Failed = append(result.Failed, domain.SyncItemFailure{
				LocalID: candidate.LocalID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Synced = append(result.Synced, *txn)
	}

	logger.Info("Sync batch processed",
		slog.Int("candidates", len(candidates)),
		slog.Int("synced", len(result.Synced)),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}

// reconcileOne upserts a single candidate: update the existing entry carrying
// the same localId, or create a new one. Either way the entry ends up SYNCED.
func (s *syncService) reconcileOne(ctx context.Context, userID string, candidate dto.SyncTransactionRequest) (*domain.Transaction, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.txnRepo.FindTransactionByLocalID(ctx, userID, candidate.LocalID)
	if err == nil {
		return s.overwriteExisting(ctx, existing, candidate, userID, now)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up local ID %s: %w", candidate.LocalID, err)
	}

	txn, err := newTransactionFromRequest(userID, dto.CreateTransactionRequest{
		Amount:        candidate.Amount,
		Kind:          candidate.Kind,
		Category:      candidate.Category,
		PaymentMethod: candidate.PaymentMethod,
		Description:   candidate.Description,
		Date:          candidate.Date,
		WalletID:      candidate.WalletID,
		LocalID:       &candidate.LocalID,
	}, now)
	if err != nil {
		return nil, err
	}
	txn.SyncStatus = domain.SyncStatusSynced

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save synced transaction: %w", err)
	}
	return txn, nil
}

// overwriteExisting applies the candidate's mutable fields onto the entry
// already holding its localId.
func (s *syncService) overwriteExisting(ctx context.Context, existing *domain.Transaction, candidate dto.SyncTransactionRequest, userID string, now time.Time) (*domain.Transaction, error) {
	existing.Amount = candidate.Amount
	existing.Category = candidate.Category
	if candidate.Kind != "" {
		existing.Kind = domain.TransactionKind(candidate.Kind)
	}
	if candidate.PaymentMethod != "" {
		existing.PaymentMethod = candidate.PaymentMethod
	}
	existing.Description = candidate.Description
	if candidate.Date != nil {
		existing.OccurredAt = *candidate.Date
	}
	existing.WalletID = candidate.WalletID
	existing.SyncStatus = domain.SyncStatusSynced
	existing.LastUpdatedAt = now
	existing.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update synced transaction: %w", err)
	}
	return existing, nil
}

// validateCandidate rejects a malformed item before touching the store, so
// the failure is attributable to that item alone.
func validateCandidate(candidate dto.SyncTransactionRequest) error {
	if candidate.LocalID == "" {
		return fmt.Errorf("%w: localId is required", apperrors.ErrValidation)
	}
	if !candidate.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if candidate.Category == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if candidate.Kind != "" && !domain.TransactionKind(candidate.Kind).IsValid() {
		return fmt.Errorf("%w: kind must be INCOME or EXPENSE", apperrors.ErrValidation)
	}
	return nil
}
