package interfaces

import (
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
)

type MockTransactionService struct {
	CreateFunc func(userEmail, rawType string, amount decimal.Decimal, rawCategory, description *string) (*domain.Transaction, error)
	GetFunc    func(filter domain.TransactionFilter) ([]domain.Transaction, error)
	SumFunc    func(filter domain.TransactionFilter) (decimal.Decimal, error)

	CreateCalls int
}

func (m *MockTransactionService) CreateTransaction(userEmail, rawType string, amount decimal.Decimal, rawCategory, description *string) (*domain.Transaction, error) {
	m.CreateCalls++
	if m.CreateFunc == nil {
		panic("implement me")
	}
	return m.CreateFunc(userEmail, rawType, amount, rawCategory, description)
}

func (m *MockTransactionService) GetTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.GetFunc == nil {
		panic("implement me")
	}
	return m.GetFunc(filter)
}

func (m *MockTransactionService) GetUserTransactionSum(filter domain.TransactionFilter) (decimal.Decimal, error) {
	if m.SumFunc == nil {
		panic("implement me")
	}
	return m.SumFunc(filter)
}
