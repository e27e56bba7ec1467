package handlers

import (
	"net/http"

	"github.com/shopgenius/shopgenius-api/internal/analytics"
)

// GetAnalyticsSummaryHandler godoc
// @Summary Aggregate catalog figures for the analytics dashboard
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Router /analytics/summary [get]
func GetAnalyticsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.Summarize(catalog.GetAll()))
}
