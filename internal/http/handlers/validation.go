package handlers

import (
	"strings"

	"github.com/shopgenius/shopgenius-api/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCampaignRequest(req CampaignDraftRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, ValidationError{Field: "CustomerName", Description: "Customer name is required"})
	}
	if !models.ValidIntent(req.Intent) {
		errs = append(errs, ValidationError{Field: "Intent", Description: "Intent must be one of: " + strings.Join(models.Intents, ", ")})
	}
	return errs
}
