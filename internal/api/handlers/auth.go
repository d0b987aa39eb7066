package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fundflow/crowdfund-backend/internal/api/httpx"
	"github.com/fundflow/crowdfund-backend/internal/models"
	"github.com/fundflow/crowdfund-backend/internal/services"
)

type AuthHandler struct {
	Svc *services.AccountService
}

func NewAuthHandler(svc *services.AccountService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Svc.Register(r.Context(), creds.Email, creds.Password); err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "signup successful"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tok, err := h.Svc.Authenticate(r.Context(), creds.Email, creds.Password)
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"token": tok})
}
