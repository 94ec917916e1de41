package audit

import (
	"bucket-manager/core/logger"
	"bucket-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the journal.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/audit", h.HandleRecent)
}

// HandleRecent lists recent journal entries.
// @Summary Recent Operations
// @Description Lists recorded bucket and object mutations, newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Number of entries (default 50, max 500)"
// @Success 200 {array} Entry
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit, _, err := utils.ParseInt64(c.Query("limit"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.store.Recent(c.Context(), int(limit))
	if err != nil {
		l.Error("Failed to read journal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}
