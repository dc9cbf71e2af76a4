package dto

import (
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one row of a per-category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// CategoryBreakdownResponse is the categories report for one month.
type CategoryBreakdownResponse struct {
	Breakdown []CategoryTotalResponse `json:"breakdown"`
	Total     decimal.Decimal         `json:"total"`
	Month     int                     `json:"month"` // 1-indexed
	Year      int                     `json:"year"`
}

// DailySummaryResponse lists one day's transactions with their sum.
type DailySummaryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        decimal.Decimal       `json:"total"`
	Date         string                `json:"date"` // Start of the day, ISO-8601
}

// MonthlySummaryResponse lists one month's transactions with their sum and a
// category → amount rollup.
type MonthlySummaryResponse struct {
	Transactions []TransactionResponse      `json:"transactions"`
	Total        decimal.Decimal            `json:"total"`
	ByCategory   map[string]decimal.Decimal `json:"byCategory"`
	Month        int                        `json:"month"` // 1-indexed
	Year         int                        `json:"year"`
}

// InsightResponse is one significant month-over-month category change.
type InsightResponse struct {
	Category      string          `json:"category"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	LastAmount    decimal.Decimal `json:"lastAmount"`
	ChangePercent int64           `json:"changePercent"`
	Message       string          `json:"message"`
}

// InsightsResponse compares the current expense month against the previous one.
type InsightsResponse struct {
	Insights          []InsightResponse `json:"insights"`
	CurrentMonthTotal decimal.Decimal   `json:"currentMonthTotal"`
	LastMonthTotal    decimal.Decimal   `json:"lastMonthTotal"`
	OverallChange     int64             `json:"overallChange"`
}

// CategorySuggestionsResponse exposes the fixed suggestion sets. The category
// field on transactions remains free text.
type CategorySuggestionsResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// ToCategoryBreakdownResponse converts an aggregation result to API form.
func ToCategoryBreakdownResponse(summary *domain.PeriodSummary, month int, year int) CategoryBreakdownResponse {
	resp := CategoryBreakdownResponse{
		Breakdown: make([]CategoryTotalResponse, len(summary.ByCategory)),
		Total:     summary.Total,
		Month:     month,
		Year:      year,
	}
	for i, ct := range summary.ByCategory {
		resp.Breakdown[i] = CategoryTotalResponse{Category: ct.Category, Total: ct.Total, Count: ct.Count}
	}
	return resp
}

// ToDailySummaryResponse converts a daily summary to API form.
func ToDailySummaryResponse(s *domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Transactions: ToTransactionResponses(s.Transactions),
		Total:        s.Total,
		Date:         s.Period.Start.Format("2006-01-02"),
	}
}

// ToMonthlySummaryResponse converts a monthly summary to API form.
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Transactions: ToTransactionResponses(s.Transactions),
		Total:        s.Total,
		ByCategory:   s.ByCategory,
		Month:        int(s.Period.Start.Month()),
		Year:         s.Period.Start.Year(),
	}
}

// ToInsightsResponse converts spending insights to API form.
func ToInsightsResponse(in *domain.SpendingInsights) InsightsResponse {
	resp := InsightsResponse{
		Insights:          make([]InsightResponse, len(in.Insights)),
		CurrentMonthTotal: in.CurrentMonthTotal,
		LastMonthTotal:    in.LastMonthTotal,
		OverallChange:     in.OverallChange,
	}
	for i, ins := range in.Insights {
		resp.Insights[i] = InsightResponse{
			Category:      ins.Category,
			CurrentAmount: ins.CurrentAmount,
			LastAmount:    ins.LastAmount,
			ChangePercent: ins.ChangePercent,
			Message:       ins.Message,
		}
	}
	return resp
}
