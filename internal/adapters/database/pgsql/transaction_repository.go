package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/expense_tracker_app/internal/utils/pagination"
)

const transactionColumns = `transaction_id, user_id, wallet_id, amount, kind, category, payment_method, description, occurred_at, local_id, sync_status, created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository persists ledger entries in PostgreSQL.
type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.WalletID,
		&txn.Amount,
		&txn.Kind,
		&txn.Category,
		&txn.PaymentMethod,
		&txn.Description,
		&txn.OccurredAt,
		&txn.LocalID,
		&txn.SyncStatus,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.WalletID,
		txn.Amount,
		txn.Kind,
		txn.Category,
		txn.PaymentMethod,
		txn.Description,
		txn.OccurredAt,
		txn.LocalID,
		txn.SyncStatus,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves one entry scoped to its owner. Existence and
// ownership are checked together so both misses look identical.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// FindTransactionByLocalID retrieves the owner's entry carrying the client
// idempotency key. The reconciler relies on this as its find-or-create probe.
func (r *PgxTransactionRepository) FindTransactionByLocalID(ctx context.Context, userID, localID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND local_id = $2
		LIMIT 1;
	`
	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, userID, localID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by local ID %s: %w", localID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a newest-occurred-first page of the owner's
// entries using (occurred_at, transaction_id) cursor tokens.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	argPos := 2

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.WalletID != nil {
		query += fmt.Sprintf(" AND wallet_id = $%d", argPos)
		args = append(args, *filter.WalletID)
		argPos++
	}
	if filter.DateRange != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d AND occurred_at <= $%d", argPos, argPos+1)
		args = append(args, filter.DateRange.Start, filter.DateRange.End)
		argPos += 2
	}

	if nextToken != nil {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		cursorTime, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (occurred_at, transaction_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, cursorTime, fields[1])
		argPos += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += " ORDER BY occurred_at DESC, transaction_id DESC LIMIT " + strconv.Itoa(limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	var token *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		lastTxn := transactions[len(transactions)-1]
		t := pagination.EncodeMultiFieldToken(lastTxn.OccurredAt.Format(time.RFC3339Nano), lastTxn.TransactionID)
		token = &t
	}

	return transactions, token, nil
}

// FindTransactionsByWalletID retrieves every entry linked to the wallet. The
// balance fold is order-independent, so no ORDER BY is needed.
func (r *PgxTransactionRepository) FindTransactionsByWalletID(ctx context.Context, userID, walletID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND wallet_id = $2;
	`
	rows, err := r.pool.Query(ctx, query, userID, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return transactions, nil
}

// FindTransactionsByPeriod retrieves the owner's entries inside the closed
// interval, newest first.
func (r *PgxTransactionRepository) FindTransactionsByPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		ORDER BY occurred_at DESC, transaction_id DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for period: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return transactions, nil
}

// SummarizeByCategory aggregates the owner's entries inside the period into
// per-category totals and counts, largest total first. Grouping is on the raw
// category string; the database collation is case-sensitive, so "Food" and
// "food" stay separate buckets.
func (r *PgxTransactionRepository) SummarizeByCategory(ctx context.Context, userID string, kind *domain.TransactionKind, period domain.Period) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
	`
	args := []interface{}{userID, period.Start, period.End}
	if kind != nil {
		query += " AND kind = $4"
		args = append(args, *kind)
	}
	query += `
		GROUP BY category
		ORDER BY total DESC;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category summary row: %w", err)
		}
		result = append(result, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category summary rows: %w", err)
	}
	return result, nil
}

// UpdateTransaction overwrites the mutable fields of an owned entry.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET wallet_id = $3, amount = $4, kind = $5, category = $6, payment_method = $7,
			description = $8, occurred_at = $9, sync_status = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $1 AND user_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.WalletID,
		txn.Amount,
		txn.Kind,
		txn.Category,
		txn.PaymentMethod,
		txn.Description,
		txn.OccurredAt,
		txn.SyncStatus,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction permanently removes the owner's entry.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearWalletReference unlinks every entry pointing at the wallet.
func (r *PgxTransactionRepository) ClearWalletReference(ctx context.Context, walletID string) (int64, error) {
	query := `UPDATE transactions SET wallet_id = NULL WHERE wallet_id = $1;`
	tag, err := r.pool.Exec(ctx, query, walletID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear wallet reference %s: %w", walletID, err)
	}
	return tag.RowsAffected(), nil
}
