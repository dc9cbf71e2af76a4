package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

const defaultListLimit = 20

// DefaultPaymentMethod is applied when a client omits the payment method.
const DefaultPaymentMethod = "Cash"

// transactionService provides the ledger store surface: direct CRUD on the
// owner's transactions. Amounts are stored as non-negative magnitudes; the
// kind supplies the sign when balances and aggregates are derived.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// newTransactionFromRequest validates and assembles a domain transaction.
// Shared with the sync reconciler, which builds entries from batch candidates.
func newTransactionFromRequest(userID string, req dto.CreateTransactionRequest, now time.Time) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}

	kind := domain.TransactionKind(req.Kind)
	if kind == "" {
		kind = domain.Expense
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	occurredAt := now
	if req.Date != nil {
		occurredAt = *req.Date
	}

	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		WalletID:      req.WalletID,
		Amount:        req.Amount,
		Kind:          kind,
		Category:      req.Category,
		PaymentMethod: paymentMethod,
		Description:   req.Description,
		OccurredAt:    occurredAt,
		LocalID:       req.LocalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// CreateTransaction records a new ledger entry owned by userID.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := newTransactionFromRequest(userID, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("category", txn.Category))
	return txn, nil
}

// GetTransactionByID fetches one entry scoped to its owner.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns a newest-occurred-first page of the owner's entries.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, req dto.ListTransactionsRequest) ([]domain.Transaction, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := portsrepo.TransactionFilter{
		Category: req.Category,
		WalletID: req.WalletID,
	}
	if req.StartDate != nil || req.EndDate != nil {
		// An open edge falls back to the epoch or the far future; the stored
		// interval stays closed on both ends.
		start := time.Time{}
		end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		filter.DateRange = &domain.Period{Start: start, End: end}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, userID, filter, limit, req.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

// UpdateTransaction overwrites the mutable fields of an owned entry.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Kind != nil {
		kind := domain.TransactionKind(*req.Kind)
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: kind must be INCOME or EXPENSE", apperrors.ErrValidation)
		}
		txn.Kind = kind
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", apperrors.ErrValidation)
		}
		txn.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.OccurredAt = *req.Date
	}
	if req.WalletID != nil {
		if *req.WalletID == "" {
			txn.WalletID = nil
		} else {
			txn.WalletID = req.WalletID
		}
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction permanently removes an owned entry. There is no
// soft-delete; derived balances and aggregates change immediately.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
