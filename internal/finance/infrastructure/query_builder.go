package infrastructure

import (
	"fmt"
	"strings"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
)

const baseTransactionQuery = `SELECT id, user_id, transaction_type, amount, category, description, created_at, updated_at FROM transactions`

// buildTransactionQuery composes the filtered SELECT for the given filter.
// Every present filter contributes exactly one predicate, in a fixed order,
// bound positionally ($1..$n). Filter values never end up in the SQL text.
func buildTransactionQuery(filter domain.TransactionFilter) (string, []interface{}) {
	var query strings.Builder
	query.WriteString(baseTransactionQuery)

	var params []interface{}
	whereInserted := false

	appendPredicate := func(column, operator string, value interface{}) {
		if !whereInserted {
			query.WriteString(" WHERE ")
			whereInserted = true
		} else {
			query.WriteString(" AND ")
		}
		params = append(params, value)
		query.WriteString(fmt.Sprintf("%s %s $%d", column, operator, len(params)))
	}

	if filter.UserID != nil {
		appendPredicate("user_id", "=", *filter.UserID)
	}
	if filter.Category != nil {
		appendPredicate("category", "=", filter.Category.String())
	}
	if filter.TransactionType != nil {
		appendPredicate("transaction_type", "=", filter.TransactionType.String())
	}
	if filter.AmountMin != nil {
		appendPredicate("amount", ">=", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		appendPredicate("amount", "<=", *filter.AmountMax)
	}
	if filter.StartTimestamp != nil {
		appendPredicate("created_at", ">=", *filter.StartTimestamp)
	}
	if filter.EndTimestamp != nil {
		appendPredicate("created_at", "<=", *filter.EndTimestamp)
	}

	return query.String(), params
}
