package audit

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the audit feature. A nil store disables it.
func NewFeature(store *Store, logger *zap.Logger) *Feature {
	f := &Feature{store: store}
	if store != nil {
		f.handler = NewHandler(store, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled reports whether a journal database is configured.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
