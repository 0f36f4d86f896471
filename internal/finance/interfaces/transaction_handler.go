package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletAPI/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletAPI/internal/finance/errors"
	"github.com/sebuszqo/WalletAPI/internal/user"
)

type TransactionServiceInterface interface {
	CreateTransaction(userEmail, rawType string, amount decimal.Decimal, rawCategory, description *string) (*domain.Transaction, error)
	GetTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetUserTransactionSum(filter domain.TransactionFilter) (decimal.Decimal, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil {
		log.Fatal("RespondJSON function must not be nil")
		return nil
	}
	if respondError == nil {
		log.Fatal("RespondError function must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// parseTransactionFilter converts raw query parameters into a typed filter.
// Only typed, validated values cross into the application layer.
func parseTransactionFilter(query url.Values) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if raw := query.Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid user_id %q", raw)
		}
		userID := id.String()
		filter.UserID = &userID
	}
	if raw := query.Get("category"); raw != "" {
		category, err := domain.ParseTransactionCategory(raw)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
	}
	if raw := query.Get("transaction_type"); raw != "" {
		transactionType, err := domain.ParseTransactionType(raw)
		if err != nil {
			return filter, err
		}
		filter.TransactionType = &transactionType
	}
	if raw := query.Get("amount_min"); raw != "" {
		amountMin, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid amount_min %q", raw)
		}
		filter.AmountMin = &amountMin
	}
	if raw := query.Get("amount_max"); raw != "" {
		amountMax, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid amount_max %q", raw)
		}
		filter.AmountMax = &amountMax
	}
	if raw := query.Get("start_timestamp"); raw != "" {
		startTimestamp, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid start_timestamp %q", raw)
		}
		filter.StartTimestamp = &startTimestamp
	}
	if raw := query.Get("end_timestamp"); raw != "" {
		endTimestamp, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid end_timestamp %q", raw)
		}
		filter.EndTimestamp = &endTimestamp
	}

	return filter, nil
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserEmail       string          `json:"user_email"`
		TransactionType string          `json:"transaction_type"`
		Amount          decimal.Decimal `json:"amount"`
		Category        *string         `json:"category"`
		Description     *string         `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.CreateTransaction(req.UserEmail, req.TransactionType, req.Amount, req.Category, req.Description)
	if err != nil {
		if financeErrors.IsInvalidEnumValueError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, user.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction created successfully",
	})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.service.GetTransactions(filter)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Transactions retrieved successfully",
		"transactions": transactions,
	})
}

func (h *TransactionHandler) GetTransactionSum(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sum, err := h.service.GetUserTransactionSum(filter)
	if err != nil {
		if financeErrors.IsMissingRequiredFilterError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions sum")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transactions sum retrieved successfully",
		"amount":  sum,
	})
}
