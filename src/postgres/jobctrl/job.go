package jobctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobview/src/core/jobsearch"
)

// Job mirrors the jobs table. Rows are inserted and refreshed by the
// external scraping pipeline; this repository only reads them.
type Job struct {
	ID            int64   `gorm:"primaryKey"`
	ExternalJobID *string `gorm:"size:255;uniqueIndex"`
	Title         *string `gorm:"size:500"`
	Company       *string `gorm:"size:255"`
	Location      *string `gorm:"size:255"`
	URL           *string `gorm:"column:url;type:text"`
	Description   *string `gorm:"type:text"`
	ContractType  *string `gorm:"size:100"`
	PostedDate    *time.Time
	ScrapedAt     *time.Time
	UpdatedAt     *time.Time
	Active        *bool
	Status        *string `gorm:"type:text"`
}

func (Job) TableName() string {
	return "jobs"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Search(ctx context.Context, f jobsearch.Filters, order jobsearch.Order, limit, offset int) ([]jobsearch.JobPosting, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	var rows []Job
	err := r.filtered(ctx, f).
		Order(orderClause(order)).
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}

	postings := make([]jobsearch.JobPosting, 0, len(rows))
	for _, row := range rows {
		postings = append(postings, toDomain(row))
	}

	return postings, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*jobsearch.JobPosting, error) {
	var row Job
	result := r.db.WithContext(ctx).First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", result.Error)
	}

	posting := toDomain(row)
	return &posting, nil
}

// filtered builds the WHERE clause shared by the count and page queries.
// Every value is bound as a parameter, including the date bounds.
func (r *Repository) filtered(ctx context.Context, f jobsearch.Filters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Job{})

	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}
	if f.Company != "" {
		q = q.Where("company ILIKE ?", contains(f.Company))
	}
	if f.ContractType != "" {
		q = q.Where("contract_type = ?", f.ContractType)
	}
	if f.DateFrom != nil {
		q = q.Where("posted_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("posted_date <= ?", *f.DateTo)
	}
	if f.Q != "" {
		like := contains(f.Q)
		q = q.Where("title ILIKE ? OR company ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			like, like, like, like)
	}

	return q
}

// orderClause renders the resolved sort. Order.Field comes from the
// jobsearch whitelist and matches the column names of the jobs table, so
// the rendered fragment never contains caller input.
func orderClause(o jobsearch.Order) string {
	if o.Desc {
		return o.Field + " DESC"
	}
	return o.Field + " ASC"
}

func contains(s string) string {
	return "%" + s + "%"
}

func toDomain(row Job) jobsearch.JobPosting {
	return jobsearch.JobPosting{
		ID:            row.ID,
		ExternalJobID: strVal(row.ExternalJobID),
		Title:         strVal(row.Title),
		Company:       strVal(row.Company),
		Location:      strVal(row.Location),
		URL:           strVal(row.URL),
		Description:   strVal(row.Description),
		ContractType:  strVal(row.ContractType),
		PostedDate:    row.PostedDate,
		ScrapedAt:     row.ScrapedAt,
		UpdatedAt:     row.UpdatedAt,
		Active:        row.Active,
		Status:        strVal(row.Status),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
