package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	Transaction TransactionRepositoryFacade
	Wallet      WalletRepositoryFacade
}
