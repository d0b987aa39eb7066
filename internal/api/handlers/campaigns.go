package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundflow/crowdfund-backend/internal/api/httpx"
	"github.com/fundflow/crowdfund-backend/internal/models"
	"github.com/fundflow/crowdfund-backend/internal/services"
)

type CampaignHandler struct {
	Svc *services.CampaignService
}

func NewCampaignHandler(svc *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{Svc: svc}
}

// Create accepts either a single campaign object or an array of them and
// mirrors the input shape in the response.
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var ins []models.CampaignInput
		if err := json.Unmarshal(trimmed, &ins); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		cs, err := h.Svc.CreateBatch(r.Context(), ins)
		if err != nil {
			httpx.WriteStoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, cs)
		return
	}

	var in models.CampaignInput
	if err := json.Unmarshal(trimmed, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Svc.List(r.Context())
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	if cs == nil {
		cs = []models.Campaign{}
	}
	httpx.WriteJSON(w, http.StatusOK, cs)
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

type donateReq struct {
	Amount float64 `json:"amount"`
}

func (h *CampaignHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req donateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Svc.Donate(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}
