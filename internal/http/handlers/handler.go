package handlers

import (
	"orbiz-dashboard-service/internal/config"
	"orbiz-dashboard-service/internal/pdf"

	"go.uber.org/zap"
)

// Handler carries the wiring every report endpoint needs. The service is
// stateless: nothing here outlives a request except the config and the
// startup-resolved PDF capability.
type Handler struct {
	Logger *zap.Logger
	Config config.Config
	PDF    *pdf.Exporter
}
