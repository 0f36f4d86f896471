package infrastructure

import (
	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
)

// MockTransactionRepository is an in-memory stand-in used by the application
// layer tests. It applies filters with the same semantics as the SQL
// predicates.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
	FindErr      error
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByFilter(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if filter.UserID != nil && transaction.UserID != *filter.UserID {
			continue
		}
		if filter.Category != nil && transaction.Category != *filter.Category {
			continue
		}
		if filter.TransactionType != nil && transaction.Type != *filter.TransactionType {
			continue
		}
		if filter.AmountMin != nil && transaction.Amount.LessThan(*filter.AmountMin) {
			continue
		}
		if filter.AmountMax != nil && transaction.Amount.GreaterThan(*filter.AmountMax) {
			continue
		}
		if filter.StartTimestamp != nil && transaction.CreatedAt.Before(*filter.StartTimestamp) {
			continue
		}
		if filter.EndTimestamp != nil && transaction.CreatedAt.After(*filter.EndTimestamp) {
			continue
		}
		filtered = append(filtered, transaction)
	}
	return filtered, nil
}
