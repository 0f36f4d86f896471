package infrastructure

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
)

func TestBuildTransactionQuery_EmptyFilter(t *testing.T) {
	query, params := buildTransactionQuery(domain.TransactionFilter{})

	assert.Equal(t, baseTransactionQuery, query)
	assert.Empty(t, params)
}

func TestBuildTransactionQuery_SingleFilter(t *testing.T) {
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	query, params := buildTransactionQuery(domain.TransactionFilter{UserID: &userID})

	assert.Equal(t, baseTransactionQuery+" WHERE user_id = $1", query)
	assert.Equal(t, []interface{}{userID}, params)
}

func TestBuildTransactionQuery_ClauseOrderIsFixed(t *testing.T) {
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	category := domain.CategoryGroceries

	// Field assignment order must not matter; clause order is fixed.
	filter := domain.TransactionFilter{}
	filter.Category = &category
	filter.UserID = &userID

	query, params := buildTransactionQuery(filter)

	assert.Equal(t, baseTransactionQuery+" WHERE user_id = $1 AND category = $2", query)
	assert.Equal(t, []interface{}{userID, "Groceries"}, params)
}

func TestBuildTransactionQuery_AllFilters(t *testing.T) {
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	category := domain.CategoryHousing
	transactionType := domain.TypeExpense
	amountMin := decimal.RequireFromString("-500")
	amountMax := decimal.RequireFromString("0")
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)

	query, params := buildTransactionQuery(domain.TransactionFilter{
		UserID:          &userID,
		Category:        &category,
		TransactionType: &transactionType,
		AmountMin:       &amountMin,
		AmountMax:       &amountMax,
		StartTimestamp:  &start,
		EndTimestamp:    &end,
	})

	expected := baseTransactionQuery +
		" WHERE user_id = $1" +
		" AND category = $2" +
		" AND transaction_type = $3" +
		" AND amount >= $4" +
		" AND amount <= $5" +
		" AND created_at >= $6" +
		" AND created_at <= $7"
	assert.Equal(t, expected, query)
	assert.Equal(t, []interface{}{userID, "Housing", "Expense", amountMin, amountMax, start, end}, params)
}

func TestBuildTransactionQuery_NoUserValueInSQLText(t *testing.T) {
	category := domain.CategoryShopping
	query, _ := buildTransactionQuery(domain.TransactionFilter{Category: &category})

	assert.NotContains(t, query, "Shopping")
}
