package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/core/services"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.AnalyticsSvcFacade
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

// expenseKind matches the *TransactionKind argument the service builds for
// expense-only aggregation.
func expenseKind() interface{} {
	return mock.MatchedBy(func(kind *domain.TransactionKind) bool {
		return kind != nil && *kind == domain.Expense
	})
}

func (suite *AnalyticsServiceTestSuite) TestAggregate_EmptyLedger() {
	ctx := context.Background()
	userID := uuid.NewString()
	period := domain.MonthPeriod(2025, time.March, time.UTC)

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, (*domain.TransactionKind)(nil), period).
		Return([]domain.CategoryTotal{}, nil).Once()

	summary, err := suite.service.Aggregate(ctx, userID, nil, period)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.Total.IsZero())
	suite.Empty(summary.ByCategory)
}

func (suite *AnalyticsServiceTestSuite) TestAggregate_SumsBreakdown() {
	ctx := context.Background()
	userID := uuid.NewString()
	period := domain.MonthPeriod(2025, time.March, time.UTC)

	// Categories differing only in case stay distinct buckets.
	breakdown := []domain.CategoryTotal{
		{Category: "Food", Total: decimal.NewFromInt(200), Count: 4},
		{Category: "food", Total: decimal.NewFromInt(50), Count: 1},
		{Category: "Transport", Total: decimal.NewFromInt(30), Count: 2},
	}

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, (*domain.TransactionKind)(nil), period).
		Return(breakdown, nil).Once()

	summary, err := suite.service.Aggregate(ctx, userID, nil, period)

	suite.Require().NoError(err)
	suite.True(summary.Total.Equal(decimal.NewFromInt(280)))
	suite.Require().Len(summary.ByCategory, 3)
	suite.Equal("Food", summary.ByCategory[0].Category)
	suite.Equal("food", summary.ByCategory[1].Category)
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_Rollup() {
	ctx := context.Background()
	userID := uuid.NewString()
	period := domain.MonthPeriod(2025, time.June, time.UTC)

	txns := []domain.Transaction{
		{Amount: decimal.NewFromInt(60), Kind: domain.Expense, Category: "Food"},
		{Amount: decimal.NewFromInt(40), Kind: domain.Expense, Category: "Food"},
		{Amount: decimal.NewFromInt(25), Kind: domain.Expense, Category: "Transport"},
	}

	suite.mockRepo.On("FindTransactionsByPeriod", ctx, userID, period).Return(txns, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, userID, 2025, time.June)

	suite.Require().NoError(err)
	suite.True(summary.Total.Equal(decimal.NewFromInt(125)))
	suite.True(summary.ByCategory["Food"].Equal(decimal.NewFromInt(100)))
	suite.True(summary.ByCategory["Transport"].Equal(decimal.NewFromInt(25)))
	suite.Len(summary.Transactions, 3)
}

func (suite *AnalyticsServiceTestSuite) TestDailySummary_Empty() {
	ctx := context.Background()
	userID := uuid.NewString()
	date := time.Date(2025, time.June, 10, 15, 4, 5, 0, time.UTC)

	suite.mockRepo.On("FindTransactionsByPeriod", ctx, userID, domain.DayPeriod(date)).
		Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.DailySummary(ctx, userID, date)

	suite.Require().NoError(err)
	suite.True(summary.Total.IsZero())
	suite.Empty(summary.Transactions)
}

func (suite *AnalyticsServiceTestSuite) TestInsights_BelowThresholdSuppressed() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	current := []domain.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(109), Count: 3}}
	last := []domain.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(100), Count: 4}}

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.MonthOf(now)).
		Return(current, nil).Once()
	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.PreviousMonth(now)).
		Return(last, nil).Once()

	insights, err := suite.service.Insights(ctx, userID, now)

	suite.Require().NoError(err)
	// 109 vs 100 is a 9% change: below the 10% threshold.
	suite.Empty(insights.Insights)
	suite.True(insights.CurrentMonthTotal.Equal(decimal.NewFromInt(109)))
	suite.True(insights.LastMonthTotal.Equal(decimal.NewFromInt(100)))
	suite.Equal(int64(9), insights.OverallChange)
}

func (suite *AnalyticsServiceTestSuite) TestInsights_AtThresholdEmitted() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	current := []domain.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(110), Count: 3}}
	last := []domain.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(100), Count: 4}}

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.MonthOf(now)).
		Return(current, nil).Once()
	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.PreviousMonth(now)).
		Return(last, nil).Once()

	insights, err := suite.service.Insights(ctx, userID, now)

	suite.Require().NoError(err)
	suite.Require().Len(insights.Insights, 1)

	insight := insights.Insights[0]
	suite.Equal("Food", insight.Category)
	suite.Equal(int64(10), insight.ChangePercent)
	suite.Equal("You spent 10% more on Food this month", insight.Message)
}

func (suite *AnalyticsServiceTestSuite) TestInsights_DecreaseEmitted() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	current := []domain.CategoryTotal{{Category: "Shopping", Total: decimal.NewFromInt(80), Count: 2}}
	last := []domain.CategoryTotal{{Category: "Shopping", Total: decimal.NewFromInt(100), Count: 5}}

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.MonthOf(now)).
		Return(current, nil).Once()
	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.PreviousMonth(now)).
		Return(last, nil).Once()

	insights, err := suite.service.Insights(ctx, userID, now)

	suite.Require().NoError(err)
	suite.Require().Len(insights.Insights, 1)
	suite.Equal(int64(-20), insights.Insights[0].ChangePercent)
	suite.Equal("You spent 20% less on Shopping this month", insights.Insights[0].Message)
	suite.Equal(int64(-20), insights.OverallChange)
}

func (suite *AnalyticsServiceTestSuite) TestInsights_NewCategorySkipped() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	current := []domain.CategoryTotal{
		{Category: "Food", Total: decimal.NewFromInt(150), Count: 3},
		{Category: "Gadgets", Total: decimal.NewFromInt(500), Count: 1}, // no prior data
	}
	last := []domain.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(100), Count: 4}}

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.MonthOf(now)).
		Return(current, nil).Once()
	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.PreviousMonth(now)).
		Return(last, nil).Once()

	insights, err := suite.service.Insights(ctx, userID, now)

	suite.Require().NoError(err)

	// Gadgets has no prior month data: it never emits an insight, but it
	// still counts toward the current month total.
	suite.Require().Len(insights.Insights, 1)
	suite.Equal("Food", insights.Insights[0].Category)
	suite.Equal(int64(50), insights.Insights[0].ChangePercent)
	suite.True(insights.CurrentMonthTotal.Equal(decimal.NewFromInt(650)))
	suite.True(insights.LastMonthTotal.Equal(decimal.NewFromInt(100)))
}

func (suite *AnalyticsServiceTestSuite) TestInsights_JanuaryComparesToPriorDecember() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

	wantLast := domain.MonthPeriod(2024, time.December, time.UTC)
	suite.Equal(wantLast, domain.PreviousMonth(now))

	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), domain.MonthOf(now)).
		Return([]domain.CategoryTotal{}, nil).Once()
	suite.mockRepo.On("SummarizeByCategory", ctx, userID, expenseKind(), wantLast).
		Return([]domain.CategoryTotal{}, nil).Once()

	insights, err := suite.service.Insights(ctx, userID, now)

	suite.Require().NoError(err)
	suite.Empty(insights.Insights)
	suite.Equal(int64(0), insights.OverallChange)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
