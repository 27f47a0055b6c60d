package httpadapter

import "net/http"

// handleStatsOverview returns the dashboard aggregate: campaign and
// active-campaign counts plus total budget and total spend across all
// stored campaigns. The numbers are recomputed on every request.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.campaigns.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
