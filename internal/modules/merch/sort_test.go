package merch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSortCatalog_Order(t *testing.T) {
	products := []Product{
		{ID: "1", Sales: 10, Stock: 0},
		{ID: "2", Sales: 90, Stock: 5},
		{ID: "3", Sales: 90, Stock: 5},
		{ID: "4", Sales: 5, Stock: UnlimitedStock},
		{ID: "5", Sales: 999, Stock: 0}, // best seller but depleted
		{ID: "6", Sales: 0, Stock: 0},   // pinned, still first
	}
	snap := Snapshot{Settings: LandingSettings{PrioritizedProducts: []string{"6"}}}

	got := SortCatalog(products, snap)
	assert.Equal(t, []string{"6", "3", "2", "4", "5", "1"}, ids(got))
}

func TestSortCatalog_NumericIDComparison(t *testing.T) {
	products := []Product{
		{ID: "9", Stock: 5},
		{ID: "10", Stock: 5},
		{ID: "2", Stock: 5},
	}

	got := SortCatalog(products, Snapshot{})
	assert.Equal(t, []string{"10", "9", "2"}, ids(got), "ids compare numerically, not lexically")
}

func TestSortCatalog_NonNumericIDFallback(t *testing.T) {
	products := []Product{
		{ID: "a", Stock: 5},
		{ID: "c", Stock: 5},
		{ID: "b", Stock: 5},
	}

	got := SortCatalog(products, Snapshot{})
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestSortCatalog_DoesNotMutateInput(t *testing.T) {
	products := []Product{
		{ID: "1", Stock: 0},
		{ID: "2", Stock: 5},
	}

	got := SortCatalog(products, Snapshot{})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"1", "2"}, ids(products), "input slice stays in original order")
	assert.Equal(t, []string{"2", "1"}, ids(got))
}

func TestSortCatalog_SameLengthAndDeterministic(t *testing.T) {
	products := []Product{
		{ID: "3", Sales: 1, Stock: 5},
		{ID: "1", Sales: 1, Stock: 5},
		{ID: "2", Sales: 7, Stock: 0},
	}
	snap := Snapshot{Settings: LandingSettings{PrioritizedProducts: []string{"2"}}}

	first := SortCatalog(products, snap)
	second := SortCatalog(products, snap)
	assert.Len(t, first, len(products))
	assert.Equal(t, first, second)

	assert.Empty(t, SortCatalog(nil, snap))
}
