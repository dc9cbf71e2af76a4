package domain

import "github.com/shopspring/decimal"

// Wallet is a named balance container a user may file transactions under.
// Its current balance is never stored; it is always derived from the ledger
// so the transaction history stays the single source of truth.
type Wallet struct {
	WalletID       string          `json:"walletID"` // Primary key (UUID)
	UserID         string          `json:"userID"`   // Owner (Not Null)
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`  // Presentation only
	Color          string          `json:"color"` // Presentation only, hex string
	InitialBalance decimal.Decimal `json:"initialBalance"`
	AuditFields
}

const (
	DefaultWalletIcon  = "wallet"
	DefaultWalletColor = "#D0FD3E"
)

// WalletWithBalance pairs a wallet with its balance as derived from the
// ledger at read time.
type WalletWithBalance struct {
	Wallet
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
