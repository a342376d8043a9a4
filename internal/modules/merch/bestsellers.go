package merch

// SelectBestSellers fills up to requiredCount slots with products only.
// Pinned products come first in the owner's configured order (whatever their
// stock), then in-stock products by sales, then an out-of-stock fallback.
// Ids never repeat and no two tiles share a non-empty image.
func SelectBestSellers(snap Snapshot, requiredCount int) []DisplayItem {
	if requiredCount <= 0 {
		return []DisplayItem{}
	}

	items := make([]DisplayItem, 0, requiredCount)
	usedIDs := make(map[string]struct{})
	usedImages := make(map[string]struct{})

	add := func(p Product, outOfStock bool) {
		if len(items) >= requiredCount {
			return
		}
		if _, dup := usedIDs[p.ID]; dup {
			return
		}
		img := p.DisplayImage()
		if img != "" {
			if _, used := usedImages[img]; used {
				return
			}
			usedImages[img] = struct{}{}
		}
		usedIDs[p.ID] = struct{}{}
		items = append(items, productItem(p, outOfStock))
	}

	for _, id := range snap.Settings.PrioritizedProducts {
		if p, ok := productByID(snap.Products, id); ok {
			add(p, !p.InStock())
		}
	}

	if len(items) < requiredCount {
		available := filterProducts(snap.Products, func(p Product) bool {
			_, dup := usedIDs[p.ID]
			return !dup && p.InStock()
		})
		sortByImageThenSales(available)
		for _, p := range available {
			add(p, false)
		}
	}

	if len(items) < requiredCount {
		outOfStock := filterProducts(snap.Products, func(p Product) bool {
			_, dup := usedIDs[p.ID]
			return !dup && !p.InStock()
		})
		sortBySales(outOfStock)
		for _, p := range outOfStock {
			add(p, true)
		}
	}

	return items
}
