package dto

import (
	"time"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the payload for creating a wallet.
type CreateWalletRequest struct {
	Name           string          `json:"name" binding:"required"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// WalletResponse is the API representation of a wallet. CurrentBalance is
// derived from the ledger at request time and never stored.
type WalletResponse struct {
	WalletID       string          `json:"walletID"`
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListWalletsResponse wraps the owner's wallets.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// DeleteWalletResponse reports how many transactions were unlinked when the
// wallet was removed. Transactions themselves are never deleted with a wallet.
type DeleteWalletResponse struct {
	Message              string `json:"message"`
	UnlinkedTransactions int64  `json:"unlinkedTransactions"`
}

// ToWalletResponse converts a wallet with its derived balance to API form.
func ToWalletResponse(w *domain.WalletWithBalance) WalletResponse {
	return WalletResponse{
		WalletID:       w.WalletID,
		Name:           w.Name,
		Icon:           w.Icon,
		Color:          w.Color,
		InitialBalance: w.InitialBalance,
		CurrentBalance: w.CurrentBalance,
		CreatedAt:      w.CreatedAt,
	}
}

// ToCreatedWalletResponse converts a freshly created wallet, whose balance is
// by definition its initial balance.
func ToCreatedWalletResponse(w *domain.Wallet) WalletResponse {
	return ToWalletResponse(&domain.WalletWithBalance{Wallet: *w, CurrentBalance: w.InitialBalance})
}
