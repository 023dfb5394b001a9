package savedjobctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobview/src/core/savedjobs"
)

// SavedJob mirrors the user_saved_jobs table. The composite unique index on
// (user_id, job_id) backs the at-most-one-bookmark-per-job invariant.
type SavedJob struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_saved_jobs_user_job"`
	JobID      int64     `gorm:"not null;uniqueIndex:idx_user_saved_jobs_user_job"`
	Status     string    `gorm:"type:text;not null;default:'saved'"`
	Note       *string   `gorm:"type:text"`
	AppliedAt  *time.Time
	FollowUpAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SavedJob) TableName() string {
	return "user_saved_jobs"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) JobLite(ctx context.Context, jobID int64) (*savedjobs.JobLite, error) {
	var row jobLiteRow
	result := r.db.WithContext(ctx).
		Table("jobs").
		Select("title, company, location, url, posted_date").
		Where("id = ?", jobID).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", result.Error)
	}

	return row.toLite(), nil
}

func (r *Repository) FindByUserAndJob(ctx context.Context, userID uuid.UUID, jobID int64) (*savedjobs.SavedJob, error) {
	var row SavedJob
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find saved job: %w", result.Error)
	}

	sj := toDomain(row)
	return &sj, nil
}

func (r *Repository) Create(ctx context.Context, sj *savedjobs.SavedJob) error {
	row := SavedJob{
		UserID:     sj.UserID,
		JobID:      sj.JobID,
		Status:     sj.Status,
		Note:       sj.Note,
		AppliedAt:  sj.AppliedAt,
		FollowUpAt: sj.FollowUpAt,
	}

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		// Requires gorm's TranslateError so the postgres unique
		// violation surfaces as ErrDuplicatedKey.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return savedjobs.ErrAlreadySaved
		}
		return fmt.Errorf("failed to create saved job: %w", result.Error)
	}

	*sj = toDomain(row)
	return nil
}

func (r *Repository) FindOwned(ctx context.Context, userID uuid.UUID, savedID int64) (*savedjobs.SavedJob, error) {
	var row SavedJob
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", savedID, userID).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find saved job: %w", result.Error)
	}

	sj := toDomain(row)
	return &sj, nil
}

func (r *Repository) Update(ctx context.Context, sj *savedjobs.SavedJob) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&SavedJob{}).
		Where("id = ? AND user_id = ?", sj.ID, sj.UserID).
		Updates(map[string]interface{}{
			"status":       sj.Status,
			"note":         sj.Note,
			"applied_at":   sj.AppliedAt,
			"follow_up_at": sj.FollowUpAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update saved job: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *Repository) Delete(ctx context.Context, userID uuid.UUID, savedID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", savedID, userID).
		Delete(&SavedJob{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete saved job: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID, status, q string, limit, offset int) ([]savedjobs.SavedJobView, int64, error) {
	var total int64
	if err := r.listQuery(ctx, userID, status, q).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saved jobs: %w", err)
	}

	var rows []listRow
	err := r.listQuery(ctx, userID, status, q).
		Select("s.id, s.job_id, s.status, s.note, s.applied_at, s.follow_up_at, s.created_at, " +
			"j.title, j.company, j.location, j.url, j.posted_date").
		Order("s.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saved jobs: %w", err)
	}

	views := make([]savedjobs.SavedJobView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}

	return views, total, nil
}

func (r *Repository) ListJobIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&SavedJob{}).
		Where("user_id = ?", userID).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved job ids: %w", err)
	}

	return ids, nil
}

// listQuery builds the ownership-scoped join shared by the count and page
// queries. The free-text filter matches the joined posting, so rows whose
// posting vanished are excluded the same way the page query excludes them.
func (r *Repository) listQuery(ctx context.Context, userID uuid.UUID, status, q string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("user_saved_jobs AS s").
		Joins("JOIN jobs j ON j.id = s.job_id").
		Where("s.user_id = ?", userID)

	if status != "" {
		query = query.Where("s.status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("j.title ILIKE ? OR j.company ILIKE ? OR j.location ILIKE ?", like, like, like)
	}

	return query
}

type jobLiteRow struct {
	Title      *string
	Company    *string
	Location   *string
	URL        *string `gorm:"column:url"`
	PostedDate *time.Time
}

func (row jobLiteRow) toLite() *savedjobs.JobLite {
	return &savedjobs.JobLite{
		Title:      strVal(row.Title),
		Company:    strVal(row.Company),
		Location:   strVal(row.Location),
		URL:        strVal(row.URL),
		PostedDate: row.PostedDate,
	}
}

type listRow struct {
	ID         int64
	JobID      int64
	Status     string
	Note       *string
	AppliedAt  *time.Time
	FollowUpAt *time.Time
	CreatedAt  time.Time
	jobLiteRow `gorm:"embedded"`
}

func (row listRow) toView() savedjobs.SavedJobView {
	return savedjobs.SavedJobView{
		ID:         row.ID,
		JobID:      row.JobID,
		Status:     row.Status,
		Note:       row.Note,
		AppliedAt:  row.AppliedAt,
		FollowUpAt: row.FollowUpAt,
		CreatedAt:  row.CreatedAt,
		Job:        row.jobLiteRow.toLite(),
	}
}

func toDomain(row SavedJob) savedjobs.SavedJob {
	return savedjobs.SavedJob{
		ID:         row.ID,
		UserID:     row.UserID,
		JobID:      row.JobID,
		Status:     row.Status,
		Note:       row.Note,
		AppliedAt:  row.AppliedAt,
		FollowUpAt: row.FollowUpAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
