package infrastructure

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletAPI/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, transaction_type, amount, category, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id string
	err := r.db.QueryRow(
		query,
		transaction.UserID,
		transaction.Type.String(),
		transaction.Amount,
		transaction.Category.String(),
		transaction.Description,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not create transaction: %v", err)
	}

	transaction.ID = id
	return nil
}

// FindByFilter executes the composed filter query and maps every returned
// row into a typed transaction. A row that fails to map aborts the whole
// call; no partial result set is ever returned.
func (r *TransactionRepository) FindByFilter(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, params := buildTransactionQuery(filter)

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("could not query transactions: %v", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := mapRowToTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read transactions: %v", err)
	}

	return transactions, nil
}

func mapRowToTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		rawType     string
		rawCategory string
		amount      decimal.Decimal
	)
	err := rows.Scan(
		&transaction.ID,
		&transaction.UserID,
		&rawType,
		&amount,
		&rawCategory,
		&transaction.Description,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not scan transaction row: %v", err)
	}

	transactionType, err := domain.ParseTransactionType(rawType)
	if err != nil {
		return nil, financeErrors.NewRowMappingError("transaction_type", rawType, err)
	}
	category, err := domain.ParseTransactionCategory(rawCategory)
	if err != nil {
		return nil, financeErrors.NewRowMappingError("category", rawCategory, err)
	}

	transaction.Type = transactionType
	transaction.Category = category
	transaction.Amount = amount
	return &transaction, nil
}
