package domain

// SyncItemFailure records one batch candidate that could not be reconciled,
// keyed by the client's idempotency key so just that item can be retried.
type SyncItemFailure struct {
	LocalID string `json:"localID"`
	Reason  string `json:"reason"`
}

// SyncResult is the outcome of reconciling one client batch. Synced holds the
// persisted transactions in input order; items in Failed did not abort the
// rest of the batch and left earlier items committed.
type SyncResult struct {
	Synced []Transaction
	Failed []SyncItemFailure
}
