package services

import (
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the given
// repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.Transaction),
		Wallet:      NewWalletService(repos.Wallet, repos.Transaction),
		Sync:        NewSyncService(repos.Transaction),
		Analytics:   NewAnalyticsService(repos.Transaction),
	}
}
