package handlers

import (
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tomsarry/content_backend/logger"
	"github.com/tomsarry/content_backend/metrics"
	"github.com/tomsarry/content_backend/models"
	"github.com/tomsarry/content_backend/utils"
)

// ServiceName is reported by the root endpoint
const ServiceName = "TikTok AI Content Understanding API"

// Endpoints advertised by the health check
var Endpoints = []string{
	"/analyze-video",
	"/recommendations",
	"/analyze-text",
	"/performance-metrics",
}

// defaultRecommendations is used when num_recommendations is absent or empty
const defaultRecommendations = 10

// Handler serves the API routes and holds no per-request state
type Handler struct {
	version string
	sampler utils.Sampler
	catalog utils.Catalog
	now     func() time.Time
	open    func(*multipart.FileHeader) (multipart.File, error)
}

// New creates a Handler reporting version and drawing random values from sampler
func New(version string, sampler utils.Sampler, catalog utils.Catalog) *Handler {
	return &Handler{
		version: version,
		sampler: sampler,
		catalog: catalog,
		now:     time.Now,
		open:    (*multipart.FileHeader).Open,
	}
}

// Root answers with the service greeting
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootStatus{
		Status:    "ok",
		Message:   ServiceName,
		Timestamp: utils.ISOTimestamp(h.now()),
		Version:   h.version,
	})
}

// Health lists the functional endpoints
func (h *Handler) Health(c *gin.Context) {
	endpoints := make([]string, len(Endpoints))
	copy(endpoints, Endpoints)

	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Endpoints: endpoints,
		Version:   h.version,
		Timestamp: utils.ISOTimestamp(h.now()),
	})
}

// AnalyzeVideo accepts a multipart upload in the "file" field and returns a
// placeholder analysis. The upload is read but never inspected
func (h *Handler) AnalyzeVideo(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), "analyze-video")

	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			missingField(c, "file")
			return
		}
		log.Warn().Err(err).Msg("could not parse upload")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "There was an error parsing the body"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := utils.CheckVideo(contentType); err != nil {
		metrics.RecordVideoAnalysis(metrics.OutcomeRejected)
		log.Warn().Str("filename", file.Filename).Str("content_type", contentType).Msg("rejected non video upload")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}

	log.Info().Str("filename", file.Filename).Msg("analyzing video")

	size, err := h.drain(file)
	if err != nil {
		metrics.RecordVideoAnalysis(metrics.OutcomeFailed)
		internalError(c, log, "error analyzing video", err)
		return
	}
	metrics.RecordUpload(size)
	log.Debug().Str("filename", file.Filename).Int64("bytes", size).Msg("upload received")

	res := utils.AnalyzeVideo(h.sampler, file.Filename, h.now())
	metrics.RecordVideoAnalysis(metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, res)
}

// drain reads the upload to the end and returns its size
func (h *Handler) drain(file *multipart.FileHeader) (int64, error) {
	f, err := h.open(file)
	if err != nil {
		return 0, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(io.Discard, f)
	if err != nil {
		return n, fmt.Errorf("read upload: %w", err)
	}
	return n, nil
}

// parseCount reads num_recommendations. Absent or empty values give the
// default; values past the int range saturate so that cutting keeps slice
// semantics
func parseCount(raw string, present bool) (int, error) {
	if !present || raw == "" {
		return defaultRecommendations, nil
	}
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if raw[0] == '-' {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, err
}

// Recommendations returns the canned list for the requested profile, cut to
// num_recommendations. Unknown profiles get the default profile's list
func (h *Handler) Recommendations(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), "recommendations")

	profile, ok := c.GetPostForm("user_profile")
	if !ok || profile == "" {
		missingField(c, "user_profile")
		return
	}

	raw, present := c.GetPostForm("num_recommendations")
	count, err := parseCount(raw, present)
	if err != nil {
		log.Debug().Err(err).Str("num_recommendations", raw).Msg("invalid recommendation count")
		invalidField(c, "num_recommendations", "value is not a valid integer", "type_error.integer")
		return
	}

	items, resolved, known := h.catalog.Lookup(profile)
	if !known {
		log.Debug().Str("user_profile", profile).Str("resolved", resolved).Msg("unknown profile, serving default list")
	}
	if items == nil {
		internalError(c, log, "error generating recommendations", fmt.Errorf("no recommendations for profile %q", resolved))
		return
	}
	metrics.RecordRecommendation(resolved, known)

	c.JSON(http.StatusOK, models.RecommendationSet{
		Status:          "success",
		UserProfile:     profile,
		Recommendations: utils.Take(items, count),
		Timestamp:       utils.ISOTimestamp(h.now()),
	})
}

// PerformanceMetrics reports sampled resource usage and static model figures
func (h *Handler) PerformanceMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, utils.PerformanceMetrics(h.sampler, h.now()))
}
