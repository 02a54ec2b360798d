package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(userID string, transaction *domain.Transaction) error
	GetUserTransactions(userID string, accountID *int, month *domain.Month) ([]domain.TransactionWithCategory, error)
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
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// transactionResponse is the wire shape of a ledger entry. Amount travels as
// a decimal string; the category is an embedded read-time view, not a stored
// back-reference.
type transactionResponse struct {
	ID                 int               `json:"id"`
	Title              string            `json:"title"`
	Amount             string            `json:"amount"`
	Type               string            `json:"type"`
	Date               string            `json:"date"`
	FinancialAccountID int               `json:"financial_account_id"`
	CategoryID         int               `json:"category_id"`
	Category           *categoryEmbedded `json:"category,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

type categoryEmbedded struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func newTransactionResponse(t domain.Transaction, category *categoryEmbedded) transactionResponse {
	return transactionResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Amount:             domain.FormatCents(t.AmountCents),
		Type:               t.Type,
		Date:               t.Date.Format("2006-01-02"),
		FinancialAccountID: t.AccountID,
		CategoryID:         t.CategoryID,
		Category:           category,
		CreatedAt:          t.CreatedAt,
	}
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var accountID *int
	if raw := r.URL.Query().Get("financial_account_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid financial_account_id")
			return
		}
		accountID = &id
	}

	var month *domain.Month
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := domain.ParseMonth(raw)
		if err != nil {
			respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
			return
		}
		month = &m
	}

	transactions, err := h.service.GetUserTransactions(userID, accountID, month)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	payload := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		payload = append(payload, newTransactionResponse(transaction.Transaction, &categoryEmbedded{
			ID:   transaction.CategoryID,
			Name: transaction.CategoryName,
			Type: transaction.CategoryType,
		}))
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   payload,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title              string `json:"title"`
		Amount             string `json:"amount"`
		Type               string `json:"type"`
		Date               string `json:"date"`
		FinancialAccountID int    `json:"financial_account_id"`
		CategoryID         int    `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amountCents, err := domain.ParseAmountToCents(req.Amount)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	transaction := domain.Transaction{
		Title:       req.Title,
		AmountCents: amountCents,
		Type:        req.Type,
		Date:        date,
		AccountID:   req.FinancialAccountID,
		CategoryID:  req.CategoryID,
	}
	if err := h.service.CreateTransaction(userID, &transaction); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   newTransactionResponse(transaction, nil),
	})
}
