package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all PostgreSQL repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Transaction: NewPgxTransactionRepository(pool),
		Wallet:      NewPgxWalletRepository(pool),
	}
}
