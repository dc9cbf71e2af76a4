package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// insightThresholdPercent is the minimum absolute rounded change for a
// category to produce an insight.
const insightThresholdPercent = 10

var oneHundred = decimal.NewFromInt(100)

// analyticsService computes period aggregates and month-over-month spending
// insights. Everything here is a read-only scan over the ledger's current
// contents; an empty ledger yields zero totals, never an error.
type analyticsService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.AnalyticsSvcFacade {
	return &analyticsService{txnRepo: txnRepo}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// Aggregate sums the owner's transactions inside the period with a
// per-category breakdown ordered by descending total. Category keys are the
// raw stored strings; no case folding.
func (s *analyticsService) Aggregate(ctx context.Context, userID string, kind *domain.TransactionKind, period domain.Period) (*domain.PeriodSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	breakdown, err := s.txnRepo.SummarizeByCategory(ctx, userID, kind, period)
	if err != nil {
		logger.Error("Failed to summarize transactions by category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	if breakdown == nil {
		breakdown = []domain.CategoryTotal{}
	}

	total := decimal.Zero
	for _, ct := range breakdown {
		total = total.Add(ct.Total)
	}

	return &domain.PeriodSummary{Period: period, Total: total, ByCategory: breakdown}, nil
}

// DailySummary lists the day's transactions newest-first with their plain sum.
func (s *analyticsService) DailySummary(ctx context.Context, userID string, date time.Time) (*domain.DailySummary, error) {
	period := domain.DayPeriod(date)

	txns, err := s.txnRepo.FindTransactionsByPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}

	return &domain.DailySummary{Period: period, Transactions: txns, Total: total}, nil
}

// MonthlySummary lists the month's transactions with their plain sum and a
// category → amount rollup. Month is 1-indexed.
func (s *analyticsService) MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlySummary, error) {
	period := domain.MonthPeriod(year, month, time.UTC)

	txns, err := s.txnRepo.FindTransactionsByPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		total = total.Add(txn.Amount)
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}

	return &domain.MonthlySummary{Period: period, Transactions: txns, Total: total, ByCategory: byCategory}, nil
}

// Insights compares the expense month containing now against the month before
// it. For each category present in the current month with prior-month
// spending, the rounded percent change is computed and reported when its
// absolute value reaches the threshold. Categories with no prior-month data
// contribute to the current total but never emit an insight; the division by
// zero is avoided by skipping, not by treating the change as infinite.
func (s *analyticsService) Insights(ctx context.Context, userID string, now time.Time) (*domain.SpendingInsights, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense := domain.Expense
	currentPeriod := domain.MonthOf(now)
	lastPeriod := domain.PreviousMonth(now)

	current, err := s.txnRepo.SummarizeByCategory(ctx, userID, &expense, currentPeriod)
	if err != nil {
		logger.Error("Failed to summarize current month", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to aggregate current month: %w", err)
	}
	last, err := s.txnRepo.SummarizeByCategory(ctx, userID, &expense, lastPeriod)
	if err != nil {
		logger.Error("Failed to summarize previous month", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to aggregate previous month: %w", err)
	}

	lastByCategory := make(map[string]decimal.Decimal, len(last))
	for _, ct := range last {
		lastByCategory[ct.Category] = ct.Total
	}

	result := &domain.SpendingInsights{
		Insights:          []domain.Insight{},
		CurrentMonthTotal: decimal.Zero,
		LastMonthTotal:    decimal.Zero,
	}

	for _, ct := range current {
		result.CurrentMonthTotal = result.CurrentMonthTotal.Add(ct.Total)

		lastAmount, hadPrior := lastByCategory[ct.Category]
		if !hadPrior || !lastAmount.IsPositive() {
			continue
		}
		result.LastMonthTotal = result.LastMonthTotal.Add(lastAmount)

		changePercent := roundedPercentChange(ct.Total, lastAmount)
		if changePercent >= insightThresholdPercent || changePercent <= -insightThresholdPercent {
			result.Insights = append(result.Insights, domain.Insight{
				Category:      ct.Category,
				CurrentAmount: ct.Total,
				LastAmount:    lastAmount,
				ChangePercent: changePercent,
				Message:       insightMessage(ct.Category, changePercent),
			})
		}
	}

	if result.LastMonthTotal.IsPositive() {
		result.OverallChange = roundedPercentChange(result.CurrentMonthTotal, result.LastMonthTotal)
	}

	return result, nil
}

// roundedPercentChange computes round(((current − last) / last) × 100).
// Callers must ensure last is positive.
func roundedPercentChange(current, last decimal.Decimal) int64 {
	return current.Sub(last).Div(last).Mul(oneHundred).Round(0).IntPart()
}

func insightMessage(category string, changePercent int64) string {
	if changePercent > 0 {
		return fmt.Sprintf("You spent %d%% more on %s this month", changePercent, category)
	}
	return fmt.Sprintf("You spent %d%% less on %s this month", -changePercent, category)
}
