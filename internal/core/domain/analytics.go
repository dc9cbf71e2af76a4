package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a per-category breakdown. Category keys are the
// raw stored strings; "Food" and "food" are distinct buckets on purpose.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// PeriodSummary is the result of aggregating a user's ledger over one period.
type PeriodSummary struct {
	Period     Period
	Total      decimal.Decimal
	ByCategory []CategoryTotal // Ordered by descending total
}

// DailySummary lists one day's transactions alongside their plain sum.
type DailySummary struct {
	Period       Period
	Transactions []Transaction
	Total        decimal.Decimal
}

// MonthlySummary lists one month's transactions with their plain sum and a
// category → amount rollup.
type MonthlySummary struct {
	Period       Period
	Transactions []Transaction
	Total        decimal.Decimal
	ByCategory   map[string]decimal.Decimal
}

// Insight describes a significant month-over-month change in one category's
// spending.
type Insight struct {
	Category      string          `json:"category"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	LastAmount    decimal.Decimal `json:"lastAmount"`
	ChangePercent int64           `json:"changePercent"`
	Message       string          `json:"message"`
}

// SpendingInsights compares the current expense month against the previous
// one. LastMonthTotal covers only categories that also appear in the current
// month, matching what OverallChange is measured against.
type SpendingInsights struct {
	Insights          []Insight       `json:"insights"`
	CurrentMonthTotal decimal.Decimal `json:"currentMonthTotal"`
	LastMonthTotal    decimal.Decimal `json:"lastMonthTotal"`
	OverallChange     int64           `json:"overallChange"`
}
