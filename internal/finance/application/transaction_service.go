package application

import (
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletAPI/internal/finance/errors"
	"github.com/sebuszqo/WalletAPI/internal/user"
)

type UserResolver interface {
	GetUserByEmail(email string) (*user.User, error)
}

type TransactionService struct {
	repo        domain.TransactionRepository
	userService UserResolver
}

func NewTransactionService(repo domain.TransactionRepository, userService UserResolver) *TransactionService {
	return &TransactionService{repo: repo, userService: userService}
}

// CreateTransaction validates the raw type and category labels, resolves the
// owning user by email and stores the transaction with a sign-normalized
// amount. The sign of the submitted amount is never trusted.
func (s *TransactionService) CreateTransaction(userEmail, rawType string, amount decimal.Decimal, rawCategory, description *string) (*domain.Transaction, error) {
	transactionType, err := domain.ParseTransactionType(rawType)
	if err != nil {
		return nil, err
	}

	category := domain.CategoryOther
	if rawCategory != nil {
		category, err = domain.ParseTransactionCategory(*rawCategory)
		if err != nil {
			return nil, err
		}
	}

	owner, err := s.userService.GetUserByEmail(userEmail)
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		UserID:   owner.ID,
		Type:     transactionType,
		Amount:   domain.NormalizeAmount(transactionType, amount),
		Category: category,
	}
	if description != nil {
		transaction.Description = *description
	}

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) GetTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.repo.FindByFilter(filter)
}

// GetUserTransactionSum folds the filtered transaction set into a single
// signed total. A user_id filter is mandatory so a client can never request
// an accidental sum across all users. An empty result sums to exact zero.
func (s *TransactionService) GetUserTransactionSum(filter domain.TransactionFilter) (decimal.Decimal, error) {
	if filter.UserID == nil {
		return decimal.Zero, financeErrors.NewMissingRequiredFilterError("user_id")
	}

	transactions, err := s.repo.FindByFilter(filter)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, transaction := range transactions {
		total = total.Add(transaction.Amount)
	}
	return total, nil
}
