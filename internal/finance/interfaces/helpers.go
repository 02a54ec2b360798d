package interfaces

import (
	"log"
	"net/http"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

// userIDFromRequest reads the identity the auth middleware resolved into the
// request context. Handlers never trust anything else for ownership.
func userIDFromRequest(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok && userID != ""
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Protected-resource failures keep their own message so the client can tell
// them apart from a generic failure.
func respondServiceError(respondError func(w http.ResponseWriter, status int, message string), w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsAuthorizationError(err):
		respondError(w, http.StatusForbidden, err.Error())
	case financeErrors.IsProtectedResourceError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsStoreError(err):
		log.Printf("Store error: %v", err)
		respondError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		log.Printf("Unexpected error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
