package services

import (
	"context"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

// TransactionSvcFacade defines the ledger store surface used by handlers.
type TransactionSvcFacade interface {
	// CreateTransaction records a new ledger entry owned by userID.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// GetTransactionByID fetches one entry; foreign ownership surfaces as not-found.
	GetTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions returns a newest-first page of the owner's entries plus
	// a token for the next page (nil when exhausted).
	ListTransactions(ctx context.Context, userID string, req dto.ListTransactionsRequest) ([]domain.Transaction, *string, error)

	// UpdateTransaction overwrites the mutable fields of an owned entry.
	UpdateTransaction(ctx context.Context, transactionID, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction permanently removes an owned entry. Derived balances
	// and aggregates reflect the removal immediately.
	DeleteTransaction(ctx context.Context, transactionID, userID string) error
}
