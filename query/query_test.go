package query

import (
	"fmt"
	"testing"

	"fintrack/models"
)

// sampleCollection builds a deterministic collection spanning several
// categories and dates.
func sampleCollection(n int) []models.Transaction {
	categories := []string{"Food", "Salary", "Rent"}
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Transaction{
			ID:       fmt.Sprintf("%d", i+1),
			Amount:   float64(i+1) * 10,
			Category: categories[i%len(categories)],
			Date:     fmt.Sprintf("2024-01-%02d", i%28+1),
		})
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Category: "Food"},
		{ID: "2", Category: "food"},
		{ID: "3", Category: "Food"},
		{ID: "4", Category: "Salary"},
	}

	res := Apply(txs, Filter{Category: "Food"})
	if res.Total != 2 {
		t.Errorf("Expected total 2, got %d", res.Total)
	}
	for _, tx := range res.Data {
		if tx.Category != "Food" {
			t.Errorf("Expected category 'Food', got %q", tx.Category)
		}
	}
}

func TestDateRangeInclusive(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-01-15"},
		{ID: "3", Date: "2024-01-31"},
		{ID: "4", Date: "2024-02-01"},
	}

	res := Apply(txs, Filter{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	if res.Total != 3 {
		t.Errorf("Expected total 3, got %d", res.Total)
	}
	if len(res.Data) != 3 || res.Data[0].ID != "1" || res.Data[2].ID != "3" {
		t.Errorf("Expected ids 1..3, got %+v", res.Data)
	}
}

func TestDateRangeRequiresBothBounds(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-06-01"},
	}

	// Only one bound set: no date filtering at all.
	if res := Apply(txs, Filter{StartDate: "2024-05-01"}); res.Total != 2 {
		t.Errorf("Expected total 2 with only startDate, got %d", res.Total)
	}
	if res := Apply(txs, Filter{EndDate: "2024-02-01"}); res.Total != 2 {
		t.Errorf("Expected total 2 with only endDate, got %d", res.Total)
	}
}

func TestTotalIndependentOfPagination(t *testing.T) {
	txs := sampleCollection(25)

	want := Apply(txs, Filter{Category: "Food"}).Total
	for page := 1; page <= 10; page++ {
		for _, limit := range []int{1, 3, 7, 100} {
			res := Apply(txs, Filter{Category: "Food", Page: page, Limit: limit})
			if res.Total != want {
				t.Errorf("page=%d limit=%d: expected total %d, got %d", page, limit, want, res.Total)
			}
		}
	}
}

func TestPaginationExhaustive(t *testing.T) {
	txs := sampleCollection(23)
	limit := 5

	var collected []models.Transaction
	for page := 1; ; page++ {
		res := Apply(txs, Filter{Page: page, Limit: limit})
		if len(res.Data) == 0 {
			break
		}
		collected = append(collected, res.Data...)
	}

	if len(collected) != len(txs) {
		t.Fatalf("Expected %d transactions across pages, got %d", len(txs), len(collected))
	}
	seen := map[string]bool{}
	for i, tx := range collected {
		if tx.ID != txs[i].ID {
			t.Errorf("Position %d: expected id %s, got %s", i, txs[i].ID, tx.ID)
		}
		if seen[tx.ID] {
			t.Errorf("Duplicate id %s across pages", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestPageBeyondEnd(t *testing.T) {
	txs := sampleCollection(5)

	res := Apply(txs, Filter{Page: 99, Limit: 10})
	if len(res.Data) != 0 {
		t.Errorf("Expected empty data, got %d items", len(res.Data))
	}
	if res.Total != 5 {
		t.Errorf("Expected total 5, got %d", res.Total)
	}
	if res.Page != 99 {
		t.Errorf("Expected page 99 echoed back, got %d", res.Page)
	}
}

func TestPaginationHugeValues(t *testing.T) {
	txs := sampleCollection(5)

	// A limit near the int maximum must not overflow the start index.
	res := Apply(txs, Filter{Page: 3, Limit: 1 << 62})
	if len(res.Data) != 0 {
		t.Errorf("Expected empty data, got %d items", len(res.Data))
	}
	if res.Total != 5 {
		t.Errorf("Expected total 5, got %d", res.Total)
	}

	res = Apply(txs, Filter{Page: 1 << 62, Limit: 10})
	if len(res.Data) != 0 {
		t.Errorf("Expected empty data, got %d items", len(res.Data))
	}
	if res.Total != 5 {
		t.Errorf("Expected total 5, got %d", res.Total)
	}

	// On the first page a huge limit simply returns everything.
	res = Apply(txs, Filter{Page: 1, Limit: 1 << 62})
	if len(res.Data) != 5 {
		t.Errorf("Expected all 5 transactions, got %d", len(res.Data))
	}
}

func TestDefaultsApplied(t *testing.T) {
	txs := sampleCollection(15)

	res := Apply(txs, Filter{})
	if res.Page != DefaultPage || res.Limit != DefaultLimit {
		t.Errorf("Expected defaults %d/%d, got %d/%d", DefaultPage, DefaultLimit, res.Page, res.Limit)
	}
	if len(res.Data) != DefaultLimit {
		t.Errorf("Expected %d items on the default page, got %d", DefaultLimit, len(res.Data))
	}

	// Non-positive values fall back to the defaults too.
	res = Apply(txs, Filter{Page: -3, Limit: 0})
	if res.Page != DefaultPage || res.Limit != DefaultLimit {
		t.Errorf("Expected defaults for non-positive values, got %d/%d", res.Page, res.Limit)
	}
}

func TestCombinedFilters(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Category: "Food", Date: "2024-01-10"},
		{ID: "2", Category: "Food", Date: "2024-03-10"},
		{ID: "3", Category: "Rent", Date: "2024-01-15"},
	}

	res := Apply(txs, Filter{Category: "Food", StartDate: "2024-01-01", EndDate: "2024-01-31"})
	if res.Total != 1 || len(res.Data) != 1 || res.Data[0].ID != "1" {
		t.Errorf("Expected exactly id 1, got %+v", res.Data)
	}
}
