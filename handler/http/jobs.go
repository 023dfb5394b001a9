package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobview/src/core/jobsearch"
)

// ListJobs godoc
// @Summary Search job postings
// @Tags jobs
// @Produce json
// @Param q query string false "Free-text search over title, company, location, description"
// @Param company query string false "Company substring filter"
// @Param contract_type query string false "Exact contract type"
// @Param active query bool false "Only active (or only inactive) postings"
// @Param date_from query string false "Inclusive lower bound on posted date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper bound on posted date (YYYY-MM-DD)"
// @Param sort query string false "Sort field, - prefix for descending (default -posted_date)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size, clamped to 1..100 (default 20)"
// @Success 200 {object} jobsearch.SearchResult
// @Failure 500 {object} ErrorResponse
// @Router /jobs [get]
func (h *Handler) ListJobs(c *gin.Context) {
	params := parseSearchParams(c.Request.URL.Query())

	result, err := h.jobs.Search(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, result)
}

// GetJob godoc
// @Summary Get one job posting
// @Tags jobs
// @Produce json
// @Param id path int true "Posting ID"
// @Success 200 {object} jobsearch.JobPosting
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusNotFound, jobsearch.ErrJobNotFound)
		return
	}

	posting, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, posting)
}
