package objectstore

import (
	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for bucket and object routes.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the objectstore feature over an injected client.
func NewFeature(client storage.Client, logger *zap.Logger, journal Journal) *Feature {
	svc := NewService(client, logger, journal)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "objectstore"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service returns the storage facade backing the feature.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
