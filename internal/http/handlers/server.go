package handlers

import (
	"github.com/shopgenius/shopgenius-api/internal/gemini"
	"github.com/shopgenius/shopgenius-api/internal/repo"
	"go.uber.org/zap"
)

var (
	catalog *repo.Catalog
	advisor *gemini.Service

	logger = zap.NewNop()
)

func SetCatalog(c *repo.Catalog) {
	catalog = c
}

func SetAdvisor(s *gemini.Service) {
	advisor = s
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
