package dto

import (
	"time"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a ledger entry
// directly (as opposed to via the sync endpoint).
type CreateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind" binding:"omitempty,txnkind"` // Defaults to EXPENSE
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	Date          *time.Time      `json:"date"` // Defaults to now
	WalletID      *string         `json:"walletID"`
	LocalID       *string         `json:"localID"`
}

// UpdateTransactionRequest carries the mutable fields of a ledger entry.
// Nil fields are left unchanged; a WalletID of "" clears the wallet link.
type UpdateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Kind          *string          `json:"kind" binding:"omitempty,txnkind"`
	Category      *string          `json:"category"`
	PaymentMethod *string          `json:"paymentMethod"`
	Description   *string          `json:"description"`
	Date          *time.Time       `json:"date"`
	WalletID      *string          `json:"walletID"`
}

// ListTransactionsRequest narrows and pages a ledger listing.
type ListTransactionsRequest struct {
	Category  *string    `form:"category"`
	WalletID  *string    `form:"walletId"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	WalletID      *string         `json:"walletID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	LocalID       *string         `json:"localID,omitempty"`
	SyncStatus    string          `json:"syncStatus,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse is one page of a ledger listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API form.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		WalletID:      txn.WalletID,
		Amount:        txn.Amount,
		Kind:          string(txn.Kind),
		Category:      txn.Category,
		PaymentMethod: txn.PaymentMethod,
		Description:   txn.Description,
		OccurredAt:    txn.OccurredAt,
		LocalID:       txn.LocalID,
		SyncStatus:    string(txn.SyncStatus),
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
