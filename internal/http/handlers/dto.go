package handlers

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	LowStock    bool    `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CategoriesResult struct {
	Data []string `json:"data"`
}

type InsightsResult struct {
	Data []string `json:"data"`
}

type CampaignDraftRequest struct {
	CustomerName   string `json:"customer_name"`
	Intent         string `json:"intent"`
	ContextDetails string `json:"context_details,omitempty"`
}

type CampaignDraftResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
