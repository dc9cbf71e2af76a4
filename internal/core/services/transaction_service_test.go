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
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/core/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func stringPtr(s string) *string {
	return &s
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Defaults() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		// Kind, PaymentMethod and Date omitted
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Expense, txn.Kind)
	suite.Equal(services.DefaultPaymentMethod, txn.PaymentMethod)
	suite.Equal(userID, txn.UserID)
	suite.Equal(userID, txn.CreatedBy)
	suite.WithinDuration(time.Now().UTC(), txn.OccurredAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(0),
		Category: "Food",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsUnknownKind() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Kind:     "TRANSFER",
		Category: "Food",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID, userID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, transactionID, userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListTransactions", ctx, userID, portsrepo.TransactionFilter{}, 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	txns, token, err := suite.service.ListTransactions(ctx, userID, dto.ListTransactionsRequest{})

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
	suite.Nil(token)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ClearsWalletLink() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	walletID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		WalletID:      &walletID,
		Amount:        decimal.NewFromInt(10),
		Kind:          domain.Expense,
		Category:      "Food",
	}

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.WalletID == nil
	})).Return(nil).Once()

	// An empty walletID clears the link rather than pointing at a wallet "".
	txn, err := suite.service.UpdateTransaction(ctx, transactionID, userID, dto.UpdateTransactionRequest{
		WalletID: stringPtr(""),
	})

	suite.Require().NoError(err)
	suite.Nil(txn.WalletID)
	suite.Equal(userID, txn.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsEmptyCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		Kind:          domain.Expense,
		Category:      "Food",
	}

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID, userID).Return(existing, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, transactionID, userID, dto.UpdateTransactionRequest{
		Category: stringPtr(""),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, transactionID, userID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, transactionID, userID).Return(assert.AnError).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
