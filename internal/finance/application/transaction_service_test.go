package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletAPI/internal/finance/errors"
	"github.com/sebuszqo/WalletAPI/internal/finance/infrastructure"
	"github.com/sebuszqo/WalletAPI/internal/user"
)

type mockUserResolver struct {
	users map[string]*user.User
}

func (m *mockUserResolver) GetUserByEmail(email string) (*user.User, error) {
	found, ok := m.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return found, nil
}

func newTestService(repo domain.TransactionRepository) *TransactionService {
	resolver := &mockUserResolver{
		users: map[string]*user.User{
			"alice@example.com": {ID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Email: "alice@example.com", Name: "alice"},
		},
	}
	return NewTransactionService(repo, resolver)
}

func TestCreateTransaction_NormalizesExpenseToNegative(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	category := "Groceries"
	transaction, err := service.CreateTransaction("alice@example.com", "Expense", decimal.RequireFromString("30"), &category, nil)
	assert.NoError(t, err)

	assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("-30")))
	assert.Equal(t, domain.TypeExpense, transaction.Type)
	assert.Equal(t, domain.CategoryGroceries, transaction.Category)
	assert.Len(t, repo.Transactions, 1)
}

func TestCreateTransaction_NormalizesIncomeIgnoringSign(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	transaction, err := service.CreateTransaction("alice@example.com", "Income", decimal.RequireFromString("-100"), nil, nil)
	assert.NoError(t, err)

	assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("100")))
}

func TestCreateTransaction_DefaultsCategoryAndDescription(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	transaction, err := service.CreateTransaction("alice@example.com", "Income", decimal.RequireFromString("10"), nil, nil)
	assert.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, transaction.Category)
	assert.Equal(t, "", transaction.Description)
}

func TestCreateTransaction_InvalidCategoryRejectedBeforeSave(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	category := "Snacks"
	_, err := service.CreateTransaction("alice@example.com", "Expense", decimal.RequireFromString("5"), &category, nil)

	assert.True(t, financeErrors.IsInvalidEnumValueError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_InvalidTypeRejectedBeforeSave(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	_, err := service.CreateTransaction("alice@example.com", "Transfer", decimal.RequireFromString("5"), nil, nil)

	assert.True(t, financeErrors.IsInvalidEnumValueError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_UnknownUser(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	_, err := service.CreateTransaction("bob@example.com", "Income", decimal.RequireFromString("5"), nil, nil)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, repo.Transactions)
}

func TestGetUserTransactionSum_RequiresUserID(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	_, err := service.GetUserTransactionSum(domain.TransactionFilter{})

	assert.True(t, financeErrors.IsMissingRequiredFilterError(err))

	var missingErr *financeErrors.MissingRequiredFilterError
	assert.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "user_id", missingErr.Field)
}

func TestGetUserTransactionSum_EmptySetSumsToZero(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestService(repo)

	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	sum, err := service.GetUserTransactionSum(domain.TransactionFilter{UserID: &userID})

	assert.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestGetUserTransactionSum_ExactDecimalFold(t *testing.T) {
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: userID, Type: domain.TypeIncome, Amount: decimal.RequireFromString("50.00")},
			{UserID: userID, Type: domain.TypeExpense, Amount: decimal.RequireFromString("-20.00")},
			{UserID: "other-user", Type: domain.TypeIncome, Amount: decimal.RequireFromString("999.99")},
		},
	}
	service := newTestService(repo)

	sum, err := service.GetUserTransactionSum(domain.TransactionFilter{UserID: &userID})

	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("30.00")), "expected 30.00, got %s", sum)
}

func TestGetUserTransactionSum_RespectsAdditionalFilters(t *testing.T) {
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	january := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: userID, Type: domain.TypeIncome, Category: domain.CategoryOther, Amount: decimal.RequireFromString("100"), CreatedAt: january},
			{UserID: userID, Type: domain.TypeExpense, Category: domain.CategoryGroceries, Amount: decimal.RequireFromString("-40"), CreatedAt: june},
		},
	}
	service := newTestService(repo)

	category := domain.CategoryGroceries
	sum, err := service.GetUserTransactionSum(domain.TransactionFilter{UserID: &userID, Category: &category})
	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("-40")))

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	sum, err = service.GetUserTransactionSum(domain.TransactionFilter{UserID: &userID, StartTimestamp: &start})
	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("-40")))
}
