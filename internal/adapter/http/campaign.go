package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
)

const dateLayout = "2006-01-02"

type createCampaignRequest struct {
	Name      string  `json:"name"`
	Objective string  `json:"objective"`
	Budget    float64 `json:"budget"`
	Status    string  `json:"status"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

type updateCampaignRequest struct {
	Name      *string         `json:"name"`
	Objective *string         `json:"objective"`
	Budget    *float64        `json:"budget"`
	Status    *string         `json:"status"`
	StartDate *string         `json:"start_date"`
	EndDate   *string         `json:"end_date"`
	Metrics   *domain.Metrics `json:"metrics"`
}

type createVariantRequest struct {
	Name         string `json:"name"`
	CreativeText string `json:"creative_text"`
	CreativeURL  string `json:"creative_url"`
}

// validateDates checks that provided dates parse as ISO dates and, when both
// are present, that the schedule does not end before it starts. The store
// itself does not enforce this; it belongs to the edge.
func validateDates(start, end string) error {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(dateLayout, start); err != nil {
			return fmt.Errorf("invalid start_date %q", start)
		}
	}
	if end != "" {
		if to, err = time.Parse(dateLayout, end); err != nil {
			return fmt.Errorf("invalid end_date %q", end)
		}
	}
	if start != "" && end != "" && from.After(to) {
		return fmt.Errorf("start_date %s is after end_date %s", start, end)
	}
	return nil
}

// handleListCampaigns returns every campaign in insertion order.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCreateCampaign creates a campaign from the request body. The new
// record comes back with its assigned id, zeroed metrics and no variants.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.campaigns.CreateCampaign(r.Context(), port.CampaignDraft{
		Name:      req.Name,
		Objective: req.Objective,
		Budget:    req.Budget,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleUpdateCampaign applies a partial update. Fields absent from the body
// keep their stored values.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	start, end := "", ""
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if err := validateDates(start, end); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.campaigns.UpdateCampaign(r.Context(), id, domain.CampaignPatch{
		Name:      req.Name,
		Objective: req.Objective,
		Budget:    req.Budget,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Metrics:   req.Metrics,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleDeleteCampaign removes a campaign and its variants.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCreateVariant appends a variant to a campaign.
func (h *Handler) handleCreateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req createVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	v, err := h.campaigns.CreateVariant(r.Context(), id, port.VariantDraft{
		Name:         req.Name,
		CreativeText: req.CreativeText,
		CreativeURL:  req.CreativeURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, v)
}

// handleDeleteVariant removes a variant from a campaign.
func (h *Handler) handleDeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	variantID, err := idParam(r, "variant_id")
	if err != nil {
		http.Error(w, "invalid variant id", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.DeleteVariant(r.Context(), id, variantID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
