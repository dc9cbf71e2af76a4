package repositories

import (
	"context"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
)

// WalletReader defines read operations for wallet data.
type WalletReader interface {
	// FindWalletByID retrieves a wallet by ID, scoped to its owner.
	FindWalletByID(ctx context.Context, walletID, userID string) (*domain.Wallet, error)

	// ListWallets retrieves all of the owner's wallets, newest first.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data.
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// DeleteWallet removes the owner's wallet. Linked transactions are not
	// touched here; the service unlinks them separately.
	DeleteWallet(ctx context.Context, walletID, userID string) error
}

// WalletRepositoryFacade combines all wallet repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
