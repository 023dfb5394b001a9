package savedjobs

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/google/uuid"

	"jobview/src/log"
)

const (
	minPageSize = 1
	maxPageSize = 100
)

type service struct {
	repo Repository
}

// NewService returns the saved-job service backed by the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, userID uuid.UUID, jobID int64) (*SavedJobView, error) {
	lite, err := s.repo.JobLite(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	if lite == nil {
		return nil, ErrJobNotFound
	}

	existing, err := s.repo.FindByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up saved job: %w", err)
	}
	if existing != nil {
		return view(existing, lite), nil
	}

	sj := &SavedJob{
		UserID: userID,
		JobID:  jobID,
		Status: StatusSaved,
	}
	err = s.repo.Create(ctx, sj)
	if errors.Is(err, ErrAlreadySaved) {
		// Lost a race against a concurrent save of the same pair. The
		// store kept a single row; return it as if we created it.
		log.Debug("save raced, returning existing row", "jobID", jobID)
		sj, err = s.repo.FindByUserAndJob(ctx, userID, jobID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up saved job: %w", err)
		}
		if sj == nil {
			return nil, ErrSavedJobNotFound
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	return view(sj, lite), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, p ListParams) (*ListResult, error) {
	limit := clampPageSize(p.PageSize)
	page := p.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	items, total, err := s.repo.List(ctx, userID, p.Status, p.Q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}

	for i := range items {
		if items[i].Job != nil {
			decodeLite(items[i].Job)
		}
	}

	return &ListResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: limit,
	}, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, savedID int64, patch UpdatePatch) (*SavedJobView, error) {
	sj, err := s.repo.FindOwned(ctx, userID, savedID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up saved job: %w", err)
	}
	if sj == nil {
		return nil, ErrSavedJobNotFound
	}

	patch.Apply(sj)

	updated, err := s.repo.Update(ctx, sj)
	if err != nil {
		return nil, fmt.Errorf("failed to update saved job: %w", err)
	}
	if !updated {
		return nil, ErrSavedJobNotFound
	}

	lite, err := s.repo.JobLite(ctx, sj.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}

	return view(sj, lite), nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, savedID int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, userID, savedID)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved job: %w", err)
	}
	return deleted, nil
}

func (s *service) JobIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	ids, err := s.repo.ListJobIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved job ids: %w", err)
	}
	return ids, nil
}

func view(sj *SavedJob, lite *JobLite) *SavedJobView {
	if lite != nil {
		decodeLite(lite)
	}
	return &SavedJobView{
		ID:         sj.ID,
		JobID:      sj.JobID,
		Status:     sj.Status,
		Note:       sj.Note,
		AppliedAt:  sj.AppliedAt,
		FollowUpAt: sj.FollowUpAt,
		CreatedAt:  sj.CreatedAt,
		Job:        lite,
	}
}

func clampPageSize(pageSize int) int {
	if pageSize < minPageSize {
		return minPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

// decodeLite normalizes HTML-escaped text stored by the ingestion pipeline.
func decodeLite(l *JobLite) {
	l.Title = html.UnescapeString(l.Title)
	l.Company = html.UnescapeString(l.Company)
	l.Location = html.UnescapeString(l.Location)
	l.URL = html.UnescapeString(l.URL)
}
