package integrity

import (
	"bucket-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the bucket and database checks.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if bucketReport, err := h.service.CheckBucket(ctx); err != nil {
		report["bucket"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = bucketReport
	}

	if dbReport, err := h.service.CheckDatabase(ctx); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = dbReport
	}

	return c.JSON(report)
}

// HandleBucketCheck checks and optionally creates the default bucket.
// @Summary Check Bucket
// @Description Checks if the default bucket exists. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists {
		l.Warn("Default bucket is missing", zap.String("bucket", report.Bucket))

		if fix {
			l.Info("Attempting to create default bucket")
			if err := h.service.FixBucket(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to create bucket",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"bucket": report.Bucket,
			})
		}
	}

	return c.JSON(report)
}

// HandleDatabaseCheck checks the journal database.
// @Summary Check Database
// @Description Checks that the journal database is reachable and its table exists.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase(c.Context())
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status == "error" {
		l.Warn("Database check found problems",
			zap.Strings("missing_tables", report.MissingTables),
			zap.String("error", report.Error))
	}

	return c.JSON(report)
}
