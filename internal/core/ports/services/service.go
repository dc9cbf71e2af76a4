package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this at route registration and depend only on the facades.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Wallet      WalletSvcFacade
	Sync        SyncSvcFacade
	Analytics   AnalyticsSvcFacade
}
