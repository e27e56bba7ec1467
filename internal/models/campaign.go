package models

// Campaign intents supported by the email draft generator.
const (
	IntentWelcome           = "welcome"
	IntentAbandonedCart     = "abandoned-cart"
	IntentBackInStock       = "back-in-stock"
	IntentExclusiveDiscount = "exclusive-discount"
)

// Intents lists the fixed set of campaign intents.
var Intents = []string{IntentWelcome, IntentAbandonedCart, IntentBackInStock, IntentExclusiveDiscount}

// ValidIntent reports whether s is one of the supported campaign intents.
func ValidIntent(s string) bool {
	for _, intent := range Intents {
		if s == intent {
			return true
		}
	}
	return false
}

// CampaignRequest describes one email draft request. CustomerName must be
// non-empty; callers validate before invoking the draft service.
type CampaignRequest struct {
	CustomerName   string `json:"customer_name"`
	Intent         string `json:"intent"`
	ContextDetails string `json:"context_details,omitempty"`
}

// CampaignDraft is a generated marketing email for one customer.
type CampaignDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
