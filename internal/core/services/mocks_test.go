package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/expense_tracker_app/internal/core/ports/repositories"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByLocalID(ctx context.Context, userID, localID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, localID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByWalletID(ctx context.Context, userID, walletID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SummarizeByCategory(ctx context.Context, userID string, kind *domain.TransactionKind, period domain.Period) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ClearWalletReference(ctx context.Context, walletID string) (int64, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// MockWalletRepository is a mock type for the WalletRepositoryFacade interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, walletID, userID string) error {
	args := m.Called(ctx, walletID, userID)
	return args.Error(0)
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)
