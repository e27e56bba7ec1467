package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/shopgenius/shopgenius-api/internal/models"
	"google.golang.org/genai"
)

var insightSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

var campaignSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subject": {Type: genai.TypeString},
		"body":    {Type: genai.TypeString},
	},
	Required: []string{"subject", "body"},
}

func insightPrompt(products []models.Product) string {
	data, err := json.Marshal(products)
	if err != nil {
		// Product marshals to plain JSON fields; this cannot fail in practice.
		data = []byte("[]")
	}
	return fmt.Sprintf(`Analyze the following inventory data and provide 3 actionable business insights or alerts (e.g., items to restock, top-performing categories).
Data: %s

Format as a JSON array of strings.`, data)
}

func campaignPrompt(req models.CampaignRequest) string {
	prompt := fmt.Sprintf(`Generate a professional and engaging marketing email for an e-commerce store.
Customer Name: %s
Context: %s
`, req.CustomerName, req.Intent)
	if req.ContextDetails != "" {
		prompt += fmt.Sprintf("Product involved: %s\n", req.ContextDetails)
	}
	prompt += `
The output should be a JSON object with 'subject' and 'body' fields.
Make the tone friendly, modern, and high-conversion.`
	return prompt
}
