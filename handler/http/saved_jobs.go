package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobview/src/core/savedjobs"
)

type createSavedJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

type updateSavedJobRequest struct {
	Status     *string    `json:"status"`
	Note       *string    `json:"note"`
	AppliedAt  *time.Time `json:"applied_at"`
	FollowUpAt *time.Time `json:"follow_up_at"`
}

// CreateSavedJob godoc
// @Summary Bookmark a job posting
// @Tags saved-jobs
// @Accept json
// @Produce json
// @Param body body createSavedJobRequest true "Posting to save"
// @Success 200 {object} savedjobs.SavedJobView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /saved-jobs [post]
func (h *Handler) CreateSavedJob(c *gin.Context) {
	var req createSavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	view, err := h.saved.Save(c.Request.Context(), userFrom(c), req.JobID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, view)
}

// ListSavedJobs godoc
// @Summary List the caller's saved jobs
// @Tags saved-jobs
// @Produce json
// @Param status query string false "Exact status filter"
// @Param q query string false "Free-text search over the saved posting"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size, clamped to 1..100 (default 20)"
// @Success 200 {object} savedjobs.ListResult
// @Failure 500 {object} ErrorResponse
// @Router /saved-jobs [get]
func (h *Handler) ListSavedJobs(c *gin.Context) {
	params := parseListParams(c.Request.URL.Query())

	result, err := h.saved.List(c.Request.Context(), userFrom(c), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, result)
}

// GetSavedJobIDs godoc
// @Summary List the job ids the caller has saved
// @Tags saved-jobs
// @Produce json
// @Success 200 {array} int64
// @Failure 500 {object} ErrorResponse
// @Router /saved-jobs/ids [get]
func (h *Handler) GetSavedJobIDs(c *gin.Context) {
	ids, err := h.saved.JobIDs(c.Request.Context(), userFrom(c))
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, ids)
}

// UpdateSavedJob godoc
// @Summary Partially update a saved job
// @Tags saved-jobs
// @Accept json
// @Produce json
// @Param id path int true "Saved job ID"
// @Param body body updateSavedJobRequest true "Fields to change; omitted fields are untouched"
// @Success 200 {object} savedjobs.SavedJobView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /saved-jobs/{id} [patch]
func (h *Handler) UpdateSavedJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusNotFound, savedjobs.ErrSavedJobNotFound)
		return
	}

	var req updateSavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	patch := savedjobs.UpdatePatch{
		Status:     req.Status,
		Note:       req.Note,
		AppliedAt:  req.AppliedAt,
		FollowUpAt: req.FollowUpAt,
	}

	view, err := h.saved.Update(c.Request.Context(), userFrom(c), id, patch)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, view)
}

// DeleteSavedJob godoc
// @Summary Remove a saved job
// @Tags saved-jobs
// @Produce json
// @Param id path int true "Saved job ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /saved-jobs/{id} [delete]
func (h *Handler) DeleteSavedJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusNotFound, savedjobs.ErrSavedJobNotFound)
		return
	}

	deleted, err := h.saved.Delete(c.Request.Context(), userFrom(c), id)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		sendError(c, http.StatusNotFound, savedjobs.ErrSavedJobNotFound)
		return
	}

	sendJSON(c, http.StatusOK, gin.H{"ok": true})
}
