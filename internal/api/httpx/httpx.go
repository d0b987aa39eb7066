package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fundflow/crowdfund-backend/internal/store"
)

// APIError is the only failure body the API produces: a human-readable
// message, no structured codes.
type APIError struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Error: msg})
}

// WriteStoreError maps a store failure to its HTTP status. Anything outside
// the taxonomy is treated as the store being unreachable and reported as a
// 500 without leaking internals.
func WriteStoreError(w http.ResponseWriter, err error) {
	switch {
	case store.IsValidation(err):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		WriteError(w, http.StatusNotFound, "campaign not found")
	case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrInvalidCredentials):
		WriteError(w, http.StatusBadRequest, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, store.ErrUnavailable.Error())
	}
}
