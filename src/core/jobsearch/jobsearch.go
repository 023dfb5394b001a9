package jobsearch

import (
	"context"
	"errors"
	"time"
)

var (
	ErrJobNotFound = errors.New("Job not found")
)

// JobPosting is a scraped job listing. Rows are written by the external
// ingestion pipeline only; this service never mutates them.
type JobPosting struct {
	ID            int64      `json:"id"`
	ExternalJobID string     `json:"job_id,omitempty"`
	Title         string     `json:"title"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	URL           string     `json:"url"`
	Description   string     `json:"description,omitempty"`
	ContractType  string     `json:"contract_type"`
	PostedDate    *time.Time `json:"posted_date"`
	ScrapedAt     *time.Time `json:"scraped_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Active        *bool      `json:"active"`
	Status        string     `json:"status,omitempty"`
}

// Filters are combined with logical AND. Zero values mean "not filtered",
// except Active which distinguishes unset (nil) from false.
type Filters struct {
	Q            string
	Company      string
	ContractType string
	Active       *bool
	DateFrom     *time.Time
	DateTo       *time.Time
}

// SearchParams carries the caller-facing search inputs before clamping.
type SearchParams struct {
	Filters  Filters
	Sort     string
	Page     int
	PageSize int
}

// SearchResult is one page of postings plus pagination metadata.
type SearchResult struct {
	Items      []JobPosting `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Repository defines the storage operations needed by the search service.
type Repository interface {
	// Search returns one page of postings matching the filters plus the
	// total match count ignoring pagination.
	Search(ctx context.Context, f Filters, order Order, limit, offset int) ([]JobPosting, int64, error)
	// GetByID returns (nil, nil) when no posting has the given id.
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
}

// Service is the search API exposed to transport layers.
type Service interface {
	Search(ctx context.Context, p SearchParams) (*SearchResult, error)
	GetJob(ctx context.Context, id int64) (*JobPosting, error)
}
