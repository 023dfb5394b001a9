package http

import (
	"net/url"
	"strconv"
	"time"

	"jobview/src/core/jobsearch"
	"jobview/src/core/savedjobs"
)

// The read API favors permissive defaults over strict validation: values
// that fail to parse are dropped or defaulted, never rejected. Page-size
// clamping lives in the services.

const dateLayout = "2006-01-02"

func parseSearchParams(query url.Values) jobsearch.SearchParams {
	return jobsearch.SearchParams{
		Filters: jobsearch.Filters{
			Q:            query.Get("q"),
			Company:      query.Get("company"),
			ContractType: query.Get("contract_type"),
			Active:       parseBoolPtr(query.Get("active")),
			DateFrom:     parseDate(query.Get("date_from"), false),
			DateTo:       parseDate(query.Get("date_to"), true),
		},
		Sort:     query.Get("sort"),
		Page:     atoiDefault(query.Get("page"), 1),
		PageSize: atoiDefault(query.Get("page_size"), 20),
	}
}

func parseListParams(query url.Values) savedjobs.ListParams {
	return savedjobs.ListParams{
		Status:   query.Get("status"),
		Q:        query.Get("q"),
		Page:     atoiDefault(query.Get("page"), 1),
		PageSize: atoiDefault(query.Get("page_size"), 20),
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// parseDate reads a YYYY-MM-DD bound. End-of-range bounds are pushed to the
// last second of the day so the named date itself stays inclusive when
// compared against timestamp columns.
func parseDate(s string, endOfDay bool) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t
}
