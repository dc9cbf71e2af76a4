package services

import (
	"context"
	"time"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
)

// AnalyticsSvcFacade defines period aggregation and insight generation.
// All operations are read-only scans over the ledger's current contents.
type AnalyticsSvcFacade interface {
	// Aggregate sums the owner's transactions inside the period, optionally
	// restricted to one kind, with a per-category breakdown ordered by
	// descending total. An empty ledger yields zero totals, not an error.
	Aggregate(ctx context.Context, userID string, kind *domain.TransactionKind, period domain.Period) (*domain.PeriodSummary, error)

	// DailySummary lists the day's transactions newest-first with their sum.
	DailySummary(ctx context.Context, userID string, date time.Time) (*domain.DailySummary, error)

	// MonthlySummary lists the month's transactions with their sum and a
	// category rollup. Month is 1-indexed.
	MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlySummary, error)

	// Insights compares the expense month containing now against the month
	// before it and reports significant per-category changes.
	Insights(ctx context.Context, userID string, now time.Time) (*domain.SpendingInsights, error)
}
