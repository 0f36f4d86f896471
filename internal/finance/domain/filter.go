package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction fetch. Every field is optional;
// the zero value matches all transactions.
type TransactionFilter struct {
	UserID          *string
	Category        *TransactionCategory
	TransactionType *TransactionType
	AmountMin       *decimal.Decimal
	AmountMax       *decimal.Decimal
	StartTimestamp  *time.Time
	EndTimestamp    *time.Time
}
