package sync

import (
	"context"
	"errors"

	"datacache/core/adapters"
	"datacache/core/jsonapi"
	"datacache/core/logger"
	"datacache/core/persistence"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cache synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ContentIDsRequest lists the contents a deletion applies to.
type ContentIDsRequest struct {
	ContentIDs []int64 `json:"content_ids"`
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/documents", h.HandleIngestDocument)
	group.Post("/objects", h.HandleSyncObjects)
	group.Delete("/bookmarks", h.HandleDeleteBookmarks)
	group.Delete("/progressions", h.HandleDeleteProgressions)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIngestDocument normalizes a JSON:API document and writes it to the cache.
// @Summary Ingest Document
// @Description Normalize a JSON:API document from the request body and persist the result.
// @Tags sync
// @Accept json
// @Produce json
// @Param document body object true "JSON:API document"
// @Success 200 {object} Summary "Ingestion summary"
// @Failure 422 {object} map[string]string "Malformed or undecodable document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/documents [post]
func (h *Handler) HandleIngestDocument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Ingest(c.Context(), c.Body())
	if err != nil {
		l.Error("Document ingestion failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleSyncObjects loads the documents stored under a prefix.
// @Summary Sync Stored Documents
// @Description Load every JSON:API page stored under the prefix, persist the merged update and archive it.
// @Tags sync
// @Produce json
// @Param prefix query string false "Prefix relative to the document prefix (e.g. 'contents/')"
// @Success 200 {object} Summary "Sync summary"
// @Failure 404 {object} map[string]string "No documents under prefix"
// @Failure 422 {object} map[string]string "Malformed or undecodable document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/objects [post]
func (h *Handler) HandleSyncObjects(c *fiber.Ctx) error {
	prefix := c.Query("prefix")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("prefix", prefix))
	l.Info("Triggering prefix sync")

	summary, err := h.service.SyncPrefix(c.Context(), prefix)
	if err != nil {
		l.Error("Prefix sync failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleDeleteBookmarks removes bookmarks by content id.
// @Summary Delete Bookmarks
// @Tags sync
// @Accept json
// @Produce json
// @Param request body ContentIDsRequest true "Content ids"
// @Success 200 {object} persistence.ApplyStats "Deletion stats"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 503 {object} map[string]string "Database not available"
// @Router /sync/bookmarks [delete]
func (h *Handler) HandleDeleteBookmarks(c *fiber.Ctx) error {
	return h.handleDeletion(c, "bookmarks", h.service.DeleteBookmarks)
}

// HandleDeleteProgressions removes progressions by content id.
// @Summary Delete Progressions
// @Tags sync
// @Accept json
// @Produce json
// @Param request body ContentIDsRequest true "Content ids"
// @Success 200 {object} persistence.ApplyStats "Deletion stats"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 503 {object} map[string]string "Database not available"
// @Router /sync/progressions [delete]
func (h *Handler) HandleDeleteProgressions(c *fiber.Ctx) error {
	return h.handleDeletion(c, "progressions", h.service.DeleteProgressions)
}

func (h *Handler) handleDeletion(c *fiber.Ctx, kind string, remove func(context.Context, []int64) (persistence.ApplyStats, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ContentIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	stats, err := remove(c.Context(), req.ContentIDs)
	if err != nil {
		l.Error("Deletion failed", zap.String("kind", kind), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleSchemaCheck lists cache columns missing from the database.
// @Summary Check Cache Schema
// @Description Compare the cache tables against the models.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{} "Missing columns per table"
// @Failure 503 {object} map[string]string "Database not available"
// @Router /sync/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	missing, err := h.service.MissingColumns(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return respondError(c, err)
	}

	status := "ok"
	if len(missing) > 0 {
		status = "drift"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"missing": missing,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, adapters.ErrDecoding),
		errors.Is(err, jsonapi.ErrMalformedDocument),
		errors.Is(err, jsonapi.ErrErrorDocument):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrNoDocuments):
		return fiber.StatusNotFound
	case errors.Is(err, persistence.ErrNoDatabase):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
