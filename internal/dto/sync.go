package dto

import (
	"time"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SyncTransactionRequest is one client-cached candidate in a sync batch.
// Fields are validated per item inside the reconciler so that one malformed
// candidate fails alone instead of aborting the whole batch.
type SyncTransactionRequest struct {
	LocalID       string          `json:"localId"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	Date          *time.Time      `json:"date"`
	WalletID      *string         `json:"walletID"`
}

// SyncBatchRequest is the sync endpoint payload. A body whose transactions
// field is not an array fails binding before any item is processed.
type SyncBatchRequest struct {
	Transactions []SyncTransactionRequest `json:"transactions" binding:"required"`
}

// SyncFailureResponse reports one candidate that could not be reconciled.
type SyncFailureResponse struct {
	LocalID string `json:"localId"`
	Error   string `json:"error"`
}

// SyncBatchResponse is the reconciler's outcome: persisted transactions in
// input order plus per-item failures the client can retry individually.
type SyncBatchResponse struct {
	Message string                `json:"message"`
	Synced  []TransactionResponse `json:"synced"`
	Failed  []SyncFailureResponse `json:"failed,omitempty"`
}

// ToSyncBatchResponse converts a reconciliation result to API form.
func ToSyncBatchResponse(res *domain.SyncResult) SyncBatchResponse {
	resp := SyncBatchResponse{
		Message: "Sync complete",
		Synced:  ToTransactionResponses(res.Synced),
	}
	for _, f := range res.Failed {
		resp.Failed = append(resp.Failed, SyncFailureResponse{LocalID: f.LocalID, Error: f.Reason})
	}
	return resp
}
