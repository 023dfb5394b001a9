package jobsearch

import (
	"context"
	"fmt"
	"html"
)

const (
	minPageSize = 1
	maxPageSize = 100
)

type service struct {
	repo Repository
}

// NewService returns the search service backed by the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	limit := clampPageSize(p.PageSize)
	page := p.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	order := ParseSort(p.Sort)

	items, total, err := s.repo.Search(ctx, p.Filters, order, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	for i := range items {
		decodePosting(&items[i])
	}

	return &SearchResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *service) GetJob(ctx context.Context, id int64) (*JobPosting, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if posting == nil {
		return nil, ErrJobNotFound
	}

	decodePosting(posting)
	return posting, nil
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

// totalPages is ceil(total/limit) with a floor of one page so clients always
// render at least an empty first page.
func totalPages(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}

// decodePosting normalizes HTML-escaped text stored by the ingestion
// pipeline ("C&amp;A" becomes "C&A") on the fields clients display.
func decodePosting(p *JobPosting) {
	p.Title = html.UnescapeString(p.Title)
	p.Company = html.UnescapeString(p.Company)
	p.Location = html.UnescapeString(p.Location)
	p.URL = html.UnescapeString(p.URL)
}
