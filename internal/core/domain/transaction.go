package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger entry adds to or subtracts from a balance.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// IsValid reports whether the kind is one of the two supported values.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// SyncStatus tags a transaction that arrived through the sync reconciler.
// It is informational only and never moves back once set.
type SyncStatus string

const SyncStatusSynced SyncStatus = "SYNCED"

// Transaction is a single ledger entry owned by a user.
// Amount is always a non-negative magnitude; Kind supplies the sign when the
// entry is folded into a balance or an aggregate.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	UserID        string          `json:"userID"`        // Owner (Not Null)
	WalletID      *string         `json:"walletID"`      // FK -> Wallet.walletID; nil means unassigned
	Amount        decimal.Decimal `json:"amount"`        // Non-negative magnitude
	Kind          TransactionKind `json:"kind"`          // INCOME or EXPENSE
	Category      string          `json:"category"`      // Free-form label, case-sensitive
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurredAt"` // Date the entry is attributed to, not creation time
	LocalID       *string         `json:"localID"`    // Client idempotency key; unique per owner when set
	SyncStatus    SyncStatus      `json:"syncStatus"`
	AuditFields
}

// SignedAmount returns the amount with the kind's sign applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
