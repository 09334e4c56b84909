// Package query filters and paginates an in-memory transaction
// collection. It is pure: callers pass the full collection and get back
// the matching page plus the pre-pagination total.
package query

import "fintrack/models"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Filter narrows and pages a collection. Category matches are exact and
// case-sensitive. The date range applies only when both bounds are set,
// and is inclusive; dates are fixed-width ISO strings so lexical
// comparison is correct. Page and Limit fall back to the defaults when
// non-positive.
type Filter struct {
	Category  string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

// Result is one page of the filtered collection. Total counts every
// match, independent of pagination.
type Result struct {
	Data  []models.Transaction
	Total int
	Page  int
	Limit int
}

// Apply runs the filter over the collection. A page past the end of the
// filtered set yields an empty Data with the correct Total.
func Apply(transactions []models.Transaction, f Filter) Result {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.StartDate != "" && f.EndDate != "" {
			if t.Date < f.StartDate || t.Date > f.EndDate {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	total := len(filtered)

	// Compared with division rather than multiplied: (Page-1)*Limit
	// overflows int for huge page/limit values. Any page starting past
	// the filtered set is empty.
	if f.Page-1 > total/f.Limit {
		return Result{
			Data:  []models.Transaction{},
			Total: total,
			Page:  f.Page,
			Limit: f.Limit,
		}
	}

	start := (f.Page - 1) * f.Limit
	end := total
	if f.Limit < total-start {
		end = start + f.Limit
	}

	return Result{
		Data:  filtered[start:end],
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
}
