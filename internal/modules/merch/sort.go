package merch

import (
	"sort"
	"strconv"
)

// SortCatalog returns products in shop listing order: pinned first, then
// in-stock before out-of-stock, then sales descending, then newest (highest
// id) first. With distinct ids this is a strict total order. The input slice
// is left untouched; a sorted copy is returned.
func SortCatalog(products []Product, snap Snapshot) []Product {
	pinned := make(map[string]struct{}, len(snap.Settings.PrioritizedProducts))
	for _, id := range snap.Settings.PrioritizedProducts {
		pinned[id] = struct{}{}
	}

	out := append([]Product(nil), products...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		_, aPinned := pinned[a.ID]
		_, bPinned := pinned[b.ID]
		if aPinned != bPinned {
			return aPinned
		}
		if a.InStock() != b.InStock() {
			return a.InStock()
		}
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return idNewerFirst(a.ID, b.ID)
	})
	return out
}

// idNewerFirst compares ids numerically when both parse as integers (the
// usual case for auto-increment ids stored as strings), by plain string
// comparison otherwise, so the comparator stays total.
func idNewerFirst(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na > nb
	}
	return a > b
}
