package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobview/src/core/jobsearch"
	"jobview/src/core/savedjobs"
)

// DBPing reports whether the relational store answers a round trip. Wired
// from the server command so the handler stays free of gorm.
type DBPing func(ctx context.Context) error

type Handler struct {
	jobs   jobsearch.Service
	saved  savedjobs.Service
	dbPing DBPing
}

func NewHandler(jobs jobsearch.Service, saved savedjobs.Service, dbPing DBPing) *Handler {
	return &Handler{
		jobs:   jobs,
		saved:  saved,
		dbPing: dbPing,
	}
}

// RegisterRoutes registers all API routes. The auth middleware guards the
// saved-job group; job search and health stay anonymous.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	api := r.Group("/api")

	// System routes
	api.GET("/health", h.Health)
	api.GET("/health/db", h.HealthDB)

	// Job search routes
	api.GET("/jobs", h.ListJobs)
	api.GET("/jobs/:id", h.GetJob)

	// Saved job routes
	saved := api.Group("/saved-jobs", auth)
	saved.POST("", h.CreateSavedJob)
	saved.GET("", h.ListSavedJobs)
	saved.GET("/ids", h.GetSavedJobIDs)
	saved.PATCH("/:id", h.UpdateSavedJob)
	saved.DELETE("/:id", h.DeleteSavedJob)
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, status int, err error) {
	var code string
	switch {
	case errors.Is(err, jobsearch.ErrJobNotFound),
		errors.Is(err, savedjobs.ErrJobNotFound),
		errors.Is(err, savedjobs.ErrSavedJobNotFound):
		code = "NOT_FOUND"
		status = http.StatusNotFound
	case status == http.StatusBadRequest:
		code = "INVALID_REQUEST"
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
