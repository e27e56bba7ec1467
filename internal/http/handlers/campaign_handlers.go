package handlers

import (
	"net/http"

	"github.com/shopgenius/shopgenius-api/internal/models"
)

// GenerateCampaignHandler godoc
// @Summary Draft a personalized marketing email
// @Description Best-effort advisory content; on any upstream failure a fixed fallback draft is returned with status 200
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body CampaignDraftRequest true "Campaign request"
// @Success 200 {object} CampaignDraftResponse
// @Failure 400 {object} []ValidationError
// @Router /campaigns/draft [post]
func GenerateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var req CampaignDraftRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCampaignRequest(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	draft := advisor.CampaignEmail(r.Context(), models.CampaignRequest{
		CustomerName:   req.CustomerName,
		Intent:         req.Intent,
		ContextDetails: req.ContextDetails,
	})
	writeJSON(w, http.StatusOK, CampaignDraftResponse{Subject: draft.Subject, Body: draft.Body})
}
