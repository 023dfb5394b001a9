package savedjobs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatusSaved is the status assigned to a freshly created bookmark. The
// field is free-form afterwards (applied, interviewing, rejected, ...).
const StatusSaved = "saved"

var (
	ErrJobNotFound      = errors.New("Job not found")
	ErrSavedJobNotFound = errors.New("Saved job not found")

	// ErrAlreadySaved is returned by Repository.Create when the
	// (user_id, job_id) uniqueness constraint fires. The service converts
	// it into an idempotent success, it never reaches callers.
	ErrAlreadySaved = errors.New("Job already saved")
)

// SavedJob is a user's bookmark on a posting, with personal tracking state.
type SavedJob struct {
	ID         int64
	UserID     uuid.UUID
	JobID      int64
	Status     string
	Note       *string
	AppliedAt  *time.Time
	FollowUpAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// JobLite is the posting projection embedded in saved-job responses.
type JobLite struct {
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	URL        string     `json:"url"`
	PostedDate *time.Time `json:"posted_date"`
}

// SavedJobView is a SavedJob joined with its posting, shaped for transport.
type SavedJobView struct {
	ID         int64      `json:"id"`
	JobID      int64      `json:"job_id"`
	Status     string     `json:"status"`
	Note       *string    `json:"note"`
	AppliedAt  *time.Time `json:"applied_at"`
	FollowUpAt *time.Time `json:"follow_up_at"`
	CreatedAt  time.Time  `json:"created_at"`
	Job        *JobLite   `json:"job"`
}

// UpdatePatch carries a partial update. Nil fields are left unchanged.
type UpdatePatch struct {
	Status     *string
	Note       *string
	AppliedAt  *time.Time
	FollowUpAt *time.Time
}

// Apply copies the non-nil patch fields onto the saved job.
func (p UpdatePatch) Apply(sj *SavedJob) {
	if p.Status != nil {
		sj.Status = *p.Status
	}
	if p.Note != nil {
		sj.Note = p.Note
	}
	if p.AppliedAt != nil {
		sj.AppliedAt = p.AppliedAt
	}
	if p.FollowUpAt != nil {
		sj.FollowUpAt = p.FollowUpAt
	}
}

// ListParams filters and paginates a user's saved jobs.
type ListParams struct {
	Status   string
	Q        string
	Page     int
	PageSize int
}

// ListResult is one page of saved jobs plus pagination metadata.
type ListResult struct {
	Items    []SavedJobView `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Repository defines the storage operations needed by the saved-job
// service. Every owned-row lookup filters on user id in the same query, so
// a row owned by another user is indistinguishable from a missing one.
type Repository interface {
	// JobLite returns (nil, nil) when no posting has the given id.
	JobLite(ctx context.Context, jobID int64) (*JobLite, error)
	// FindByUserAndJob returns (nil, nil) when the user has not saved the job.
	FindByUserAndJob(ctx context.Context, userID uuid.UUID, jobID int64) (*SavedJob, error)
	// Create inserts the bookmark, filling ID/CreatedAt/UpdatedAt.
	// Returns ErrAlreadySaved when the (user_id, job_id) pair exists.
	Create(ctx context.Context, sj *SavedJob) error
	// FindOwned returns (nil, nil) when no row with that id belongs to the user.
	FindOwned(ctx context.Context, userID uuid.UUID, savedID int64) (*SavedJob, error)
	// Update persists the mutable fields of an owned row. Returns false
	// when the row no longer exists for that user.
	Update(ctx context.Context, sj *SavedJob) (bool, error)
	// Delete removes an owned row, reporting whether one was deleted.
	Delete(ctx context.Context, userID uuid.UUID, savedID int64) (bool, error)
	// List returns one page of the user's saved jobs joined with their
	// postings, newest bookmark first, plus the total ignoring pagination.
	List(ctx context.Context, userID uuid.UUID, status, q string, limit, offset int) ([]SavedJobView, int64, error)
	// ListJobIDs returns the job id of every bookmark owned by the user.
	ListJobIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

// Service is the saved-job API exposed to transport layers.
type Service interface {
	Save(ctx context.Context, userID uuid.UUID, jobID int64) (*SavedJobView, error)
	List(ctx context.Context, userID uuid.UUID, p ListParams) (*ListResult, error)
	Update(ctx context.Context, userID uuid.UUID, savedID int64, patch UpdatePatch) (*SavedJobView, error)
	Delete(ctx context.Context, userID uuid.UUID, savedID int64) (bool, error)
	JobIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
}
