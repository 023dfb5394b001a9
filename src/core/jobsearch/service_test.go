package jobsearch_test

import (
	"context"
	"errors"
	"testing"

	"jobview/src/core/jobsearch"
)

type fakeRepo struct {
	items []jobsearch.JobPosting
	total int64
	byID  map[int64]jobsearch.JobPosting
	err   error

	gotFilters jobsearch.Filters
	gotOrder   jobsearch.Order
	gotLimit   int
	gotOffset  int
}

func (f *fakeRepo) Search(_ context.Context, filters jobsearch.Filters, order jobsearch.Order, limit, offset int) ([]jobsearch.JobPosting, int64, error) {
	f.gotFilters = filters
	f.gotOrder = order
	f.gotLimit = limit
	f.gotOffset = offset
	return f.items, f.total, f.err
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*jobsearch.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func TestSearchPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		total          int64
		wantLimit      int
		wantOffset     int
		wantPage       int
		wantTotalPages int
	}{
		{
			name:           "defaults",
			page:           1,
			pageSize:       20,
			total:          45,
			wantLimit:      20,
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 3,
		},
		{
			name:           "second page",
			page:           2,
			pageSize:       20,
			total:          45,
			wantLimit:      20,
			wantOffset:     20,
			wantPage:       2,
			wantTotalPages: 3,
		},
		{
			name:           "page size clamped high",
			page:           1,
			pageSize:       500,
			total:          1000,
			wantLimit:      100,
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 10,
		},
		{
			name:           "page size clamped low",
			page:           3,
			pageSize:       0,
			total:          2,
			wantLimit:      1,
			wantOffset:     2,
			wantPage:       3,
			wantTotalPages: 2,
		},
		{
			name:           "negative page clamped",
			page:           -4,
			pageSize:       10,
			total:          0,
			wantLimit:      10,
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 1,
		},
		{
			name:           "empty result still one page",
			page:           1,
			pageSize:       20,
			total:          0,
			wantLimit:      20,
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{total: tt.total}
			svc := jobsearch.NewService(repo)

			result, err := svc.Search(context.Background(), jobsearch.SearchParams{
				Page:     tt.page,
				PageSize: tt.pageSize,
			})
			if err != nil {
				t.Fatalf("Search() unexpected error: %v", err)
			}

			if repo.gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", repo.gotLimit, tt.wantLimit)
			}
			if repo.gotOffset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", repo.gotOffset, tt.wantOffset)
			}
			if result.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", result.Page, tt.wantPage)
			}
			if result.PageSize != tt.wantLimit {
				t.Errorf("PageSize = %d, want %d", result.PageSize, tt.wantLimit)
			}
			if result.Total != tt.total {
				t.Errorf("Total = %d, want %d", result.Total, tt.total)
			}
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestSearchPassesFiltersAndSort(t *testing.T) {
	active := true
	repo := &fakeRepo{}
	svc := jobsearch.NewService(repo)

	filters := jobsearch.Filters{
		Q:            "engineer",
		Company:      "acme",
		ContractType: "CDI",
		Active:       &active,
	}
	_, err := svc.Search(context.Background(), jobsearch.SearchParams{
		Filters:  filters,
		Sort:     "-company",
		Page:     1,
		PageSize: 20,
	})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	if repo.gotFilters != filters {
		t.Errorf("filters = %+v, want %+v", repo.gotFilters, filters)
	}
	if repo.gotOrder.Field != "company" || !repo.gotOrder.Desc {
		t.Errorf("order = %+v, want company descending", repo.gotOrder)
	}
}

func TestSearchDecodesHTMLEntities(t *testing.T) {
	repo := &fakeRepo{
		items: []jobsearch.JobPosting{
			{
				Title:   "C&amp;A",
				Company: "Smith &amp; Sons",
				URL:     "https://example.com/?a=1&amp;b=2",
			},
		},
		total: 1,
	}
	svc := jobsearch.NewService(repo)

	result, err := svc.Search(context.Background(), jobsearch.SearchParams{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	got := result.Items[0]
	if got.Title != "C&A" {
		t.Errorf("Title = %q, want %q", got.Title, "C&A")
	}
	if got.Company != "Smith & Sons" {
		t.Errorf("Company = %q, want %q", got.Company, "Smith & Sons")
	}
	if got.URL != "https://example.com/?a=1&b=2" {
		t.Errorf("URL = %q, want decoded ampersand", got.URL)
	}
}

func TestGetJob(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]jobsearch.JobPosting{
			7: {ID: 7, Title: "Staff Engineer &amp; Lead"},
		},
	}
	svc := jobsearch.NewService(repo)

	got, err := svc.GetJob(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetJob(7) unexpected error: %v", err)
	}
	if got.Title != "Staff Engineer & Lead" {
		t.Errorf("Title = %q, want decoded entities", got.Title)
	}

	_, err = svc.GetJob(context.Background(), 999)
	if !errors.Is(err, jobsearch.ErrJobNotFound) {
		t.Errorf("GetJob(999) error = %v, want ErrJobNotFound", err)
	}
}
