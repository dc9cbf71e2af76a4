package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
)

const walletColumns = `wallet_id, user_id, name, icon, color, initial_balance, created_at, created_by, last_updated_at, last_updated_by`

// PgxWalletRepository persists wallets in PostgreSQL. Note that no balance
// column exists anywhere: balances are derived from the ledger on read.
type PgxWalletRepository struct {
	pool *pgxpool.Pool
}

// NewPgxWalletRepository creates a new repository for wallet data.
func NewPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{pool: pool}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.WalletID,
		&w.UserID,
		&w.Name,
		&w.Icon,
		&w.Color,
		&w.InitialBalance,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SaveWallet inserts a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		wallet.WalletID,
		wallet.UserID,
		wallet.Name,
		wallet.Icon,
		wallet.Color,
		wallet.InitialBalance,
		wallet.CreatedAt,
		wallet.CreatedBy,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet %s: %w", wallet.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves one wallet scoped to its owner.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID, userID string) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE wallet_id = $1 AND user_id = $2;
	`
	wallet, err := scanWallet(r.pool.QueryRow(ctx, query, walletID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet by ID %s: %w", walletID, err)
	}
	return wallet, nil
}

// ListWallets retrieves all of the owner's wallets, newest first.
func (r *PgxWalletRepository) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		wallets = append(wallets, *wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// DeleteWallet removes the owner's wallet. Unlinking its transactions is the
// caller's responsibility (the wallet service does both).
func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, walletID, userID string) error {
	query := `DELETE FROM wallets WHERE wallet_id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, walletID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %s: %w", walletID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
