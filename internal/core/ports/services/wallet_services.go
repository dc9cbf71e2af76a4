package services

import (
	"context"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

// WalletSvcFacade defines wallet registry operations, including balance
// derivation. Balances are recomputed from the ledger on every call.
type WalletSvcFacade interface {
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error)

	// GetWalletByID fetches one wallet with its derived current balance.
	GetWalletByID(ctx context.Context, walletID, userID string) (*domain.WalletWithBalance, error)

	// ListWallets fetches all of the owner's wallets, each with its derived
	// current balance.
	ListWallets(ctx context.Context, userID string) ([]domain.WalletWithBalance, error)

	// DeleteWallet removes the wallet and unlinks (never deletes) its
	// transactions, returning how many were unlinked.
	DeleteWallet(ctx context.Context, walletID, userID string) (int64, error)
}
