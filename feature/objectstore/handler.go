package objectstore

import (
	"bufio"
	"bytes"
	"net/url"
	"strings"
	"time"

	"bucket-manager/core/logger"
	"bucket-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for buckets and objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ObjectResponse is the metadata returned by the stat endpoint.
type ObjectResponse struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

// BucketResponse describes one bucket.
type BucketResponse struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// RemoveObjectsRequest is the body of the batch delete endpoint.
type RemoveObjectsRequest struct {
	Keys []string `json:"keys"`
}

// RegisterRoutes registers the bucket and object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Get("/names", h.HandleListBucketNames)
	group.Get("/:bucket/exists", h.HandleBucketExists)
	group.Put("/:bucket", h.HandleMakeBucket)
	group.Delete("/:bucket", h.HandleRemoveBucket)
	group.Get("/:bucket/objects", h.HandleListObjects)
	group.Get("/:bucket/objects/*", h.HandleGetObject)
	group.Put("/:bucket/objects/*", h.HandlePutObject)
	group.Delete("/:bucket/objects/*", h.HandleRemoveObject)
	group.Post("/:bucket/delete", h.HandleRemoveObjects)
	group.Get("/:bucket/stat/*", h.HandleStatObject)
	group.Get("/:bucket/url/*", h.HandleObjectURL)
	group.Get("/:bucket/presign/get/*", h.HandlePresignGet)
	group.Get("/:bucket/presign/put/*", h.HandlePresignPut)
}

// HandleListBuckets lists all buckets.
// @Summary List Buckets
// @Description Lists every bucket visible to the configured credentials.
// @Tags buckets
// @Produce json
// @Success 200 {array} BucketResponse
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /buckets [get]
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	buckets, err := h.service.ListBuckets(c.Context())
	if err != nil {
		return h.fail(c, "List buckets failed", err)
	}

	resp := make([]BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, BucketResponse{Name: b.Name, CreationDate: b.CreationDate})
	}
	return c.JSON(resp)
}

// HandleListBucketNames lists bucket names.
// @Summary List Bucket Names
// @Tags buckets
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /buckets/names [get]
func (h *Handler) HandleListBucketNames(c *fiber.Ctx) error {
	names, err := h.service.ListBucketNames(c.Context())
	if err != nil {
		return h.fail(c, "List bucket names failed", err)
	}
	return c.JSON(fiber.Map{"buckets": names})
}

// HandleBucketExists reports whether a bucket exists.
// @Summary Bucket Exists
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]bool
// @Router /buckets/{bucket}/exists [get]
func (h *Handler) HandleBucketExists(c *fiber.Ctx) error {
	exists, err := h.service.BucketExists(c.Context(), bucketParam(c))
	if err != nil {
		return h.fail(c, "Bucket existence check failed", err)
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// HandleMakeBucket creates a bucket.
// @Summary Create Bucket
// @Description Creates the bucket unless it already exists. Returns 201 when created, 200 with created=false otherwise.
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 201 {object} map[string]bool
// @Success 200 {object} map[string]bool
// @Router /buckets/{bucket} [put]
func (h *Handler) HandleMakeBucket(c *fiber.Ctx) error {
	created, err := h.service.MakeBucket(c.Context(), bucketParam(c))
	if err != nil {
		return h.fail(c, "Create bucket failed", err)
	}
	if created {
		c.Status(fiber.StatusCreated)
	}
	return c.JSON(fiber.Map{"created": created})
}

// HandleRemoveBucket removes a bucket holding no data.
// @Summary Remove Bucket
// @Description Removes the bucket if it exists and holds no object with content.
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]bool
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleRemoveBucket(c *fiber.Ctx) error {
	removed, err := h.service.RemoveBucket(c.Context(), bucketParam(c))
	if err != nil {
		return h.fail(c, "Remove bucket failed", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleListObjects lists object keys in a bucket.
// @Summary List Objects
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string][]string
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	names, err := h.service.ListObjectNames(c.Context(), bucketParam(c))
	if err != nil {
		return h.fail(c, "List objects failed", err)
	}
	return c.JSON(fiber.Map{"objects": names})
}

// HandleGetObject streams an object, or a byte range of it.
// @Summary Download Object
// @Description Streams the object as an attachment. With offset/length only that range is returned.
// @Tags objects
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param filename query string false "Download file name"
// @Param offset query int false "Range start"
// @Param length query int false "Range length"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /buckets/{bucket}/objects/{key} [get]
func (h *Handler) HandleGetObject(c *fiber.Ctx) error {
	key := objectKey(c)
	if key == "" {
		return h.HandleListObjects(c)
	}

	offset, hasOffset, err := utils.ParseInt64(c.Query("offset"))
	if err != nil {
		return h.badRequest(c, err)
	}
	length, hasLength, err := utils.ParseInt64(c.Query("length"))
	if err != nil {
		return h.badRequest(c, err)
	}

	if hasOffset || hasLength {
		var lengthPtr *int64
		if hasLength {
			lengthPtr = &length
		}
		reader, err := h.service.DownloadRange(c.Context(), bucketParam(c), key, offset, lengthPtr)
		if err != nil {
			return h.fail(c, "Ranged download failed", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.SendStream(reader)
	}

	stream, err := h.service.OpenStream(c.Context(), bucketParam(c), key, c.Query("filename"))
	if err != nil {
		return h.fail(c, "Download failed", err)
	}

	c.Set(fiber.HeaderContentDisposition, stream.ContentDisposition())
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)

	// Headers are committed from here on; a failure midway can only be logged.
	l := logger.WithRayID(h.service.logger, c).With(zap.String("bucket", bucketParam(c)), zap.String("object", key))
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer stream.Close()
		written, err := stream.WriteTo(flushWriter{w: w})
		if err != nil {
			l.Error("Download interrupted", zap.Int64("written", written), zap.Error(err))
			return
		}
		l.Debug("Streamed object", zap.Int64("bytes", written))
	})
	return nil
}

// HandlePutObject uploads the request body as an object.
// @Summary Upload Object
// @Description Uploads the raw request body. The Content-Type header is stored with the object.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} map[string]bool
// @Router /buckets/{bucket}/objects/{key} [put]
func (h *Handler) HandlePutObject(c *fiber.Ctx) error {
	key := objectKey(c)
	if key == "" {
		return h.badRequest(c, errMissingKey)
	}

	contentType := c.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	uploaded, err := h.service.UploadStream(c.Context(), bucketParam(c), key, bytes.NewReader(c.Body()), contentType)
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.JSON(fiber.Map{"uploaded": uploaded})
}

// HandleRemoveObject deletes one object.
// @Summary Remove Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} map[string]bool
// @Router /buckets/{bucket}/objects/{key} [delete]
func (h *Handler) HandleRemoveObject(c *fiber.Ctx) error {
	key := objectKey(c)
	if key == "" {
		return h.badRequest(c, errMissingKey)
	}

	removed, err := h.service.RemoveObject(c.Context(), bucketParam(c), key)
	if err != nil {
		return h.fail(c, "Remove object failed", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleRemoveObjects deletes several objects.
// @Summary Remove Objects
// @Description Deletes the listed keys and returns the ones that could not be deleted (missing keys included).
// @Tags objects
// @Accept json
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param body body RemoveObjectsRequest true "Keys to delete"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /buckets/{bucket}/delete [post]
func (h *Handler) HandleRemoveObjects(c *fiber.Ctx) error {
	var req RemoveObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, err)
	}
	if len(req.Keys) == 0 {
		return h.badRequest(c, errMissingKey)
	}

	failed, err := h.service.RemoveObjects(c.Context(), bucketParam(c), req.Keys)
	if err != nil {
		return h.fail(c, "Batch remove failed", err)
	}
	return c.JSON(fiber.Map{"failed": failed})
}

// HandleStatObject returns object metadata.
// @Summary Stat Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} ObjectResponse
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /buckets/{bucket}/stat/{key} [get]
func (h *Handler) HandleStatObject(c *fiber.Ctx) error {
	info, err := h.service.StatObject(c.Context(), bucketParam(c), objectKey(c))
	if err != nil {
		return h.fail(c, "Stat object failed", err)
	}
	return c.JSON(ObjectResponse{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	})
}

// HandleObjectURL returns the direct URL of an object.
// @Summary Object URL
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} map[string]string
// @Router /buckets/{bucket}/url/{key} [get]
func (h *Handler) HandleObjectURL(c *fiber.Ctx) error {
	u, err := h.service.ObjectURL(c.Context(), bucketParam(c), objectKey(c))
	if err != nil {
		return h.fail(c, "Object URL failed", err)
	}
	return c.JSON(fiber.Map{"url": u})
}

// HandlePresignGet returns a presigned download URL.
// @Summary Presign GET
// @Tags presign
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param expires query int false "Expiry in seconds (1-604800, default 604800)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /buckets/{bucket}/presign/get/{key} [get]
func (h *Handler) HandlePresignGet(c *fiber.Ctx) error {
	expires, ok, err := utils.ParseInt64(c.Query("expires"))
	if err != nil {
		return h.badRequest(c, err)
	}
	if !ok {
		expires = DefaultExpirySeconds
	}

	u, err := h.service.PresignedGetURL(c.Context(), bucketParam(c), objectKey(c), int(expires))
	if err != nil {
		return h.fail(c, "Presign GET failed", err)
	}
	return c.JSON(fiber.Map{"url": u})
}

// HandlePresignPut returns a presigned upload URL.
// @Summary Presign PUT
// @Tags presign
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param expires query int false "Expiry value (default 7 days worth of seconds)"
// @Param unit query string false "Expiry unit: s, m, h, d (default s)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /buckets/{bucket}/presign/put/{key} [get]
func (h *Handler) HandlePresignPut(c *fiber.Ctx) error {
	expires, ok, err := utils.ParseInt64(c.Query("expires"))
	if err != nil {
		return h.badRequest(c, err)
	}
	unit, err := utils.ParseTimeUnit(c.Query("unit"))
	if err != nil {
		return h.badRequest(c, err)
	}
	if !ok {
		expires, unit = DefaultExpirySeconds, time.Second
	}

	u, err := h.service.PresignedPutURL(c.Context(), bucketParam(c), objectKey(c), int(expires), unit)
	if err != nil {
		return h.fail(c, "Presign PUT failed", err)
	}
	return c.JSON(fiber.Map{"url": u})
}

// fail logs err and writes it with the status matching its kind.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	kind := Classify(err)
	l := logger.WithRayID(h.service.logger, c)
	if kind == KindInternal || kind == KindConnectivity {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err), zap.Stringer("kind", kind))
	}
	return c.Status(StatusFor(kind)).JSON(ErrorResponse{Error: err.Error(), Kind: kind.String()})
}

func (h *Handler) badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error(), Kind: KindInvalidArgument.String()})
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNone:
		return fiber.StatusOK
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidArgument:
		return fiber.StatusBadRequest
	case KindAuth:
		return fiber.StatusForbidden
	case KindConnectivity:
		return fiber.StatusBadGateway
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// flushWriter pushes every chunk to the connection as soon as it is written.
type flushWriter struct {
	w *bufio.Writer
}

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}

func bucketParam(c *fiber.Ctx) string {
	return strings.Clone(c.Params("bucket"))
}

// objectKey returns the unescaped wildcard part of the route.
func objectKey(c *fiber.Ctx) string {
	raw := c.Params("*")
	if key, err := url.PathUnescape(raw); err == nil {
		return strings.Clone(key)
	}
	return strings.Clone(raw)
}
