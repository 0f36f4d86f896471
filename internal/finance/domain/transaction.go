package domain

import (
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/sebuszqo/WalletAPI/internal/finance/errors"
)

type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// ParseTransactionType matches the canonical label exactly, case-sensitive.
// Anything else is rejected rather than coerced.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case string(TypeExpense):
		return TypeExpense, nil
	case string(TypeIncome):
		return TypeIncome, nil
	default:
		return "", financeErrors.NewInvalidEnumValueError("transaction_type", s)
	}
}

func (t TransactionType) String() string {
	return string(t)
}

type TransactionCategory string

const (
	CategoryGroceries     TransactionCategory = "Groceries"
	CategoryRestaurant    TransactionCategory = "Restaurant"
	CategoryHousing       TransactionCategory = "Housing"
	CategoryHolidays      TransactionCategory = "Holidays"
	CategoryShopping      TransactionCategory = "Shopping"
	CategoryEntertainment TransactionCategory = "Entertainment"
	CategoryOther         TransactionCategory = "Other"
)

func ParseTransactionCategory(s string) (TransactionCategory, error) {
	switch s {
	case string(CategoryGroceries):
		return CategoryGroceries, nil
	case string(CategoryRestaurant):
		return CategoryRestaurant, nil
	case string(CategoryHousing):
		return CategoryHousing, nil
	case string(CategoryHolidays):
		return CategoryHolidays, nil
	case string(CategoryShopping):
		return CategoryShopping, nil
	case string(CategoryEntertainment):
		return CategoryEntertainment, nil
	case string(CategoryOther):
		return CategoryOther, nil
	default:
		return "", financeErrors.NewInvalidEnumValueError("category", s)
	}
}

func (c TransactionCategory) String() string {
	return string(c)
}

type Transaction struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Type        TransactionType     `json:"transaction_type"`
	Amount      decimal.Decimal     `json:"amount"`
	Category    TransactionCategory `json:"category"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NormalizeAmount discards the sign of the raw amount and reapplies it from
// the transaction type: expenses are stored negative, income positive.
func NormalizeAmount(transactionType TransactionType, raw decimal.Decimal) decimal.Decimal {
	if transactionType == TypeExpense {
		return raw.Abs().Neg()
	}
	return raw.Abs()
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByFilter(filter TransactionFilter) ([]Transaction, error)
}
