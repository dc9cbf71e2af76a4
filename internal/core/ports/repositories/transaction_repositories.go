package repositories

import (
	"context"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
)

// TransactionFilter narrows a ledger listing. Nil fields are ignored.
type TransactionFilter struct {
	Category  *string
	WalletID  *string
	DateRange *domain.Period
}

// TransactionReader defines read operations for ledger data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by ID, scoped to its owner.
	// A transaction owned by someone else is reported as ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)

	// FindTransactionByLocalID retrieves the owner's transaction carrying the
	// given client idempotency key, or ErrNotFound.
	FindTransactionByLocalID(ctx context.Context, userID, localID string) (*domain.Transaction, error)

	// ListTransactions retrieves the owner's transactions newest-occurred-first
	// using token-based pagination. It returns the page, a token for the next
	// page (nil when exhausted), and an error.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionsByWalletID retrieves every transaction linked to the
	// given wallet, in no particular order.
	FindTransactionsByWalletID(ctx context.Context, userID, walletID string) ([]domain.Transaction, error)

	// FindTransactionsByPeriod retrieves every transaction of the owner whose
	// occurredAt falls inside the period, newest first.
	FindTransactionsByPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error)

	// SummarizeByCategory aggregates the owner's transactions inside the
	// period into per-category totals and counts, ordered by descending
	// total. A nil kind aggregates both kinds.
	SummarizeByCategory(ctx context.Context, userID string, kind *domain.TransactionKind, period domain.Period) ([]domain.CategoryTotal, error)
}

// TransactionWriter defines write operations for ledger data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing
	// transaction, scoped to its owner.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction permanently removes the owner's transaction.
	DeleteTransaction(ctx context.Context, transactionID, userID string) error

	// ClearWalletReference unlinks every transaction pointing at the wallet
	// and returns how many rows were updated.
	ClearWalletReference(ctx context.Context, walletID string) (int64, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
