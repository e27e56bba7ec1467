package handlers

import "net/http"

// GetInsightsHandler godoc
// @Summary Generate inventory insights for the current catalog
// @Description Best-effort advisory content; on any upstream failure a fixed fallback list is returned with status 200
// @Tags insights
// @Produce json
// @Success 200 {object} InsightsResult
// @Router /insights [get]
func GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	insights := advisor.InventoryInsights(r.Context(), catalog.GetAll())
	writeJSON(w, http.StatusOK, InsightsResult{Data: insights})
}
