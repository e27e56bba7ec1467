package gemini

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/shopgenius/shopgenius-api/internal/models"
	"go.uber.org/zap"
)

// InsightCache stores successful insight responses keyed by a catalog
// fingerprint. Implementations are optional; a nil cache disables caching.
type InsightCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, insights []string)
}

// Fallbacks returned whenever a generation attempt fails for any reason.
var (
	fallbackInsights = [2]string{"Monitor low stock items", "Analyze category performance"}

	fallbackDraft = models.CampaignDraft{
		Subject: "Special Offer Just For You!",
		Body:    "We noticed you looking at our products. Here's a special discount code just for you: GEMINI10.",
	}
)

// Service implements the insight and campaign draft services on top of a
// Generator. Each call is independent and stateless; no conversation context
// is carried between calls.
type Service struct {
	gen   Generator
	log   *zap.Logger
	cache InsightCache
}

// Option configures a Service.
type Option func(*Service)

// WithInsightCache enables caching of successful insight responses.
func WithInsightCache(c InsightCache) Option {
	return func(s *Service) { s.cache = c }
}

// NewService creates the AI advisory service. gen may be nil, in which case
// every call takes the fallback path.
func NewService(gen Generator, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{gen: gen, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InventoryInsights asks the model for three actionable observations about
// the catalog. Transport and parse failures are absorbed uniformly: the error
// is logged and a fixed two-item fallback is returned. Never returns an error.
func (s *Service) InventoryInsights(ctx context.Context, products []models.Product) []string {
	key := catalogFingerprint(products)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached
		}
	}

	if s.gen == nil {
		s.log.Warn("inventory insights skipped: no generator configured")
		return fallbackInsights[:]
	}

	text, err := s.gen.GenerateJSON(ctx, insightPrompt(products), insightSchema)
	if err != nil {
		s.log.Warn("inventory insights request failed", zap.Error(err))
		return fallbackInsights[:]
	}

	var insights []string
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		s.log.Warn("inventory insights response was not valid JSON", zap.Error(err))
		return fallbackInsights[:]
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, insights)
	}
	return insights
}

// CampaignEmail drafts one personalized marketing email. A non-empty customer
// name is a caller precondition. On any failure a fixed fallback draft is
// returned; the error never propagates.
func (s *Service) CampaignEmail(ctx context.Context, req models.CampaignRequest) models.CampaignDraft {
	if s.gen == nil {
		s.log.Warn("campaign draft skipped: no generator configured")
		return fallbackDraft
	}

	text, err := s.gen.GenerateJSON(ctx, campaignPrompt(req), campaignSchema)
	if err != nil {
		s.log.Warn("campaign draft request failed", zap.Error(err))
		return fallbackDraft
	}

	var draft models.CampaignDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		s.log.Warn("campaign draft response was not valid JSON", zap.Error(err))
		return fallbackDraft
	}
	if draft.Subject == "" || draft.Body == "" {
		s.log.Warn("campaign draft response missing required fields")
		return fallbackDraft
	}
	return draft
}

// catalogFingerprint hashes the catalog so identical snapshots share one
// cache entry.
func catalogFingerprint(products []models.Product) string {
	data, err := json.Marshal(products)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}
