package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/fintrackhq/expense_tracker_app/internal/core/services"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

type SyncServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.SyncSvcFacade
}

func (suite *SyncServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewSyncService(suite.mockRepo)
}

func (suite *SyncServiceTestSuite) TestSyncBatch_CreatesNewEntries() {
	ctx := context.Background()
	userID := uuid.NewString()

	candidates := []dto.SyncTransactionRequest{
		{LocalID: "local-1", Amount: decimal.NewFromInt(50), Kind: "EXPENSE", Category: "Food"},
		{LocalID: "local-2", Amount: decimal.NewFromInt(1200), Kind: "INCOME", Category: "Salary"},
	}

	// Neither localId is known yet, so both items become inserts.
	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Twice()

	result, err := suite.service.SyncBatch(ctx, userID, candidates)

	suite.Require().NoError(err)
	suite.Require().Len(result.Synced, 2)
	suite.Empty(result.Failed)

	first := result.Synced[0]
	suite.NotEmpty(first.TransactionID)
	suite.Equal(userID, first.UserID)
	suite.Equal("local-1", *first.LocalID)
	suite.Equal(domain.SyncStatusSynced, first.SyncStatus)
	suite.Equal(domain.Expense, first.Kind)

	second := result.Synced[1]
	suite.Equal("local-2", *second.LocalID)
	suite.Equal(domain.Income, second.Kind)
	suite.Equal(domain.SyncStatusSynced, second.SyncStatus)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncBatch_ResubmitUpdatesInPlace() {
	ctx := context.Background()
	userID := uuid.NewString()
	localID := "local-1"

	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(40),
		Kind:          domain.Expense,
		Category:      "Food",
		LocalID:       &localID,
		SyncStatus:    domain.SyncStatusSynced,
	}

	candidate := dto.SyncTransactionRequest{
		LocalID:  localID,
		Amount:   decimal.NewFromInt(55),
		Kind:     "EXPENSE",
		Category: "Groceries",
	}

	// The localId is already present: the candidate overwrites that entry
	// instead of creating a second one.
	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, localID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	result, err := suite.service.SyncBatch(ctx, userID, []dto.SyncTransactionRequest{candidate})

	suite.Require().NoError(err)
	suite.Require().Len(result.Synced, 1)
	suite.Empty(result.Failed)

	synced := result.Synced[0]
	suite.Equal(existing.TransactionID, synced.TransactionID)
	suite.True(synced.Amount.Equal(decimal.NewFromInt(55)))
	suite.Equal("Groceries", synced.Category)
	suite.Equal(domain.SyncStatusSynced, synced.SyncStatus)

	// SaveTransaction must never be called for a resubmitted item.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncBatch_PartialFailureContinues() {
	ctx := context.Background()
	userID := uuid.NewString()

	candidates := []dto.SyncTransactionRequest{
		{LocalID: "", Amount: decimal.NewFromInt(10), Category: "Food"},
		{LocalID: "local-2", Amount: decimal.NewFromInt(-5), Category: "Food"},
		{LocalID: "local-3", Amount: decimal.NewFromInt(20), Category: "Transport"},
	}

	// Only the valid third item reaches the repository.
	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	result, err := suite.service.SyncBatch(ctx, userID, candidates)

	suite.Require().NoError(err)
	suite.Require().Len(result.Synced, 1)
	suite.Equal("local-3", *result.Synced[0].LocalID)

	suite.Require().Len(result.Failed, 2)
	suite.Equal("", result.Failed[0].LocalID)
	suite.Contains(result.Failed[0].Reason, "localId is required")
	suite.Equal("local-2", result.Failed[1].LocalID)
	suite.Contains(result.Failed[1].Reason, "amount must be positive")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncBatch_RepoFailureReportedPerItem() {
	ctx := context.Background()
	userID := uuid.NewString()

	candidates := []dto.SyncTransactionRequest{
		{LocalID: "local-1", Amount: decimal.NewFromInt(10), Category: "Food"},
		{LocalID: "local-2", Amount: decimal.NewFromInt(20), Category: "Transport"},
	}

	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-2").Return(nil, apperrors.ErrNotFound).Once()

	// The first insert fails at the store; the second must still go through.
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.LocalID != nil && *txn.LocalID == "local-1"
	})).Return(assert.AnError).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.LocalID != nil && *txn.LocalID == "local-2"
	})).Return(nil).Once()

	result, err := suite.service.SyncBatch(ctx, userID, candidates)

	suite.Require().NoError(err)
	suite.Require().Len(result.Synced, 1)
	suite.Equal("local-2", *result.Synced[0].LocalID)
	suite.Require().Len(result.Failed, 1)
	suite.Equal("local-1", result.Failed[0].LocalID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncBatch_DefaultsKindAndDate() {
	ctx := context.Background()
	userID := uuid.NewString()

	candidate := dto.SyncTransactionRequest{
		LocalID:  "local-1",
		Amount:   decimal.NewFromInt(15),
		Category: "Food",
		// Kind and Date omitted
	}

	suite.mockRepo.On("FindTransactionByLocalID", ctx, userID, "local-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	result, err := suite.service.SyncBatch(ctx, userID, []dto.SyncTransactionRequest{candidate})

	suite.Require().NoError(err)
	suite.Require().Len(result.Synced, 1)
	synced := result.Synced[0]
	suite.Equal(domain.Expense, synced.Kind)
	suite.Equal(services.DefaultPaymentMethod, synced.PaymentMethod)
	suite.WithinDuration(time.Now().UTC(), synced.OccurredAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncBatch_EmptyBatch() {
	ctx := context.Background()
	userID := uuid.NewString()

	result, err := suite.service.SyncBatch(ctx, userID, []dto.SyncTransactionRequest{})

	suite.Require().NoError(err)
	suite.Empty(result.Synced)
	suite.Empty(result.Failed)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func TestSyncService(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
