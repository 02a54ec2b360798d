package interfaces

import (
	"net/http"
	"strconv"

	"github.com/finware/FinanceTracker/internal/finance/application"
	"github.com/finware/FinanceTracker/internal/finance/domain"
)

type SummaryServiceInterface interface {
	GetAccountBalance(userID string, accountID int) (int64, error)
	GetTotalBalance(userID string) (int64, error)
	GetMonthlySummary(userID string, month domain.Month) (application.MonthlySummary, error)
	GetCategorySpending(userID string, month domain.Month, accountID *int) ([]application.CategorySpending, error)
}

// SummaryHandler exposes the derived views of the ledger: balances, the
// monthly income/expense summary and the per-category breakdown.
type SummaryHandler struct {
	service      SummaryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSummaryHandler(
	service SummaryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SummaryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SummaryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SummaryHandler) GetAccountBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	balance, err := h.service.GetAccountBalance(userID, accountID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute balance")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]string{"balance": domain.FormatCents(balance)},
	})
}

func (h *SummaryHandler) GetTotalBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.service.GetTotalBalance(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute total balance")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]string{"balance": domain.FormatCents(balance)},
	})
}

func (h *SummaryHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := domain.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute summary")
		return
	}

	summary, err := h.service.GetMonthlySummary(userID, month)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]string{
			"total_income":   domain.FormatCents(summary.TotalIncome),
			"total_expenses": domain.FormatCents(summary.TotalExpenses),
			"net":            domain.FormatCents(summary.Net),
		},
	})
}

func (h *SummaryHandler) GetCategorySpending(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := domain.ParseMonth(r.PathValue("month"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute category spending")
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

	spending, err := h.service.GetCategorySpending(userID, month, accountID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to compute category spending")
		return
	}

	type spendingResponse struct {
		CategoryID   int    `json:"category_id"`
		CategoryName string `json:"category_name"`
		Type         string `json:"type"`
		Amount       string `json:"amount"`
	}
	payload := make([]spendingResponse, 0, len(spending))
	for _, group := range spending {
		payload = append(payload, spendingResponse{
			CategoryID:   group.CategoryID,
			CategoryName: group.CategoryName,
			Type:         group.Type,
			Amount:       domain.FormatCents(group.Amount),
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   payload,
	})
}
