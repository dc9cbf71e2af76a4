package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// walletService manages wallets and derives their balances. A wallet's
// current balance is never persisted: it is always recomputed as
// initialBalance + Σ income − Σ expense over the transactions linked to it,
// which keeps the ledger the single source of truth and rules out drift.
type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo, txnRepo: txnRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// CreateWallet records a new wallet for userID.
func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: wallet name is required", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	icon := req.Icon
	if icon == "" {
		icon = domain.DefaultWalletIcon
	}
	color := req.Color
	if color == "" {
		color = domain.DefaultWalletColor
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:       uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Icon:           icon,
		Color:          color,
		InitialBalance: req.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		logger.Error("Failed to save wallet in repository", slog.String("error", err.Error()), slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}

	logger.Info("Wallet created", slog.String("wallet_id", wallet.WalletID), slog.String("name", wallet.Name))
	return &wallet, nil
}

// GetWalletByID fetches one wallet with its derived current balance.
func (s *walletService) GetWalletByID(ctx context.Context, walletID, userID string) (*domain.WalletWithBalance, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.deriveBalance(ctx, *wallet)
	if err != nil {
		return nil, err
	}
	return &domain.WalletWithBalance{Wallet: *wallet, CurrentBalance: balance}, nil
}

// ListWallets fetches the owner's wallets, each with its derived balance.
func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.WalletWithBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	wallets, err := s.walletRepo.ListWallets(ctx, userID)
	if err != nil {
		logger.Error("Failed to list wallets from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	out := make([]domain.WalletWithBalance, 0, len(wallets))
	for _, wallet := range wallets {
		balance, err := s.deriveBalance(ctx, wallet)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.WalletWithBalance{Wallet: wallet, CurrentBalance: balance})
	}
	return out, nil
}

// DeleteWallet removes the wallet and unlinks its transactions, preserving
// ledger history. Returns how many transactions were unlinked.
//
// Unlinking must run before the wallet row is deleted: the FK's ON DELETE
// SET NULL would otherwise null the references inside the DELETE itself and
// the count UPDATE would match zero rows.
func (s *walletService) DeleteWallet(ctx context.Context, walletID, userID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Ownership check first: ClearWalletReference is keyed by wallet ID alone.
	if _, err := s.walletRepo.FindWalletByID(ctx, walletID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find wallet for deletion", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
		}
		return 0, err
	}

	unlinked, err := s.txnRepo.ClearWalletReference(ctx, walletID)
	if err != nil {
		logger.Error("Failed to unlink transactions from wallet", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
		return 0, fmt.Errorf("failed to unlink transactions before wallet delete: %w", err)
	}

	if err := s.walletRepo.DeleteWallet(ctx, walletID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete wallet in repository", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
		}
		return 0, err
	}

	logger.Info("Wallet deleted", slog.String("wallet_id", walletID), slog.Int64("unlinked_transactions", unlinked))
	return unlinked, nil
}

// deriveBalance folds the wallet's linked transactions over its initial
// balance. The sum is commutative, so order does not matter; an empty set
// yields the initial balance.
func (s *walletService) deriveBalance(ctx context.Context, wallet domain.Wallet) (decimal.Decimal, error) {
	txns, err := s.txnRepo.FindTransactionsByWalletID(ctx, wallet.UserID, wallet.WalletID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions for wallet %s: %w", wallet.WalletID, err)
	}

	balance := wallet.InitialBalance
	for _, txn := range txns {
		balance = balance.Add(txn.SignedAmount())
	}
	return balance, nil
}
