package merch

import "sort"

// highValueTopSellers is how many of the global best sellers count as
// high-value. A high-value product (pinned or a global top seller) is kept
// for a standalone tile instead of being spent as a category's
// representative image. Fixed policy, not tunable per store.
const highValueTopSellers = 5

// SelectLanding fills up to requiredCount featured slots with a mix of
// categories and products.
//
// With a tiny catalog every heuristic is noise, so everything is returned
// outright (categories first). Manual mode resolves the owner's curated
// entries verbatim. Auto mode runs a four-tier waterfall: pinned products,
// categories with a representative image, top in-stock products, and an
// out-of-stock fallback. Each tier only fills capacity left by the previous
// one, and a running set of consumed images keeps tiles visually distinct.
func SelectLanding(snap Snapshot, requiredCount int) []DisplayItem {
	if requiredCount <= 0 {
		return []DisplayItem{}
	}

	if len(snap.Products)+len(snap.Categories) <= requiredCount {
		return selectEverything(snap, requiredCount)
	}

	if snap.Settings.Mode == ModeManual {
		return selectManual(snap, requiredCount)
	}

	return selectAuto(snap, requiredCount)
}

func selectEverything(snap Snapshot, requiredCount int) []DisplayItem {
	items := make([]DisplayItem, 0, len(snap.Products)+len(snap.Categories))
	for _, c := range snap.Categories {
		items = append(items, categoryItem(c, c.Image))
	}
	for _, p := range snap.Products {
		items = append(items, productItem(p, false))
	}
	if len(items) > requiredCount {
		items = items[:requiredCount]
	}
	return items
}

// selectManual resolves the owner's configured entries in order, dropping
// references to deleted entities. The owner's intent is authoritative: no
// ranking, no image dedup.
func selectManual(snap Snapshot, requiredCount int) []DisplayItem {
	entries := snap.Settings.ManualItems
	if len(entries) > requiredCount {
		entries = entries[:requiredCount]
	}
	items := make([]DisplayItem, 0, len(entries))
	for _, m := range entries {
		switch m.Type {
		case TypeProduct:
			if p, ok := productByID(snap.Products, m.ID); ok {
				items = append(items, productItem(p, false))
			}
		case TypeCategory:
			if c, ok := categoryByID(snap.Categories, m.ID); ok {
				items = append(items, categoryItem(c, c.Image))
			}
		}
	}
	return items
}

func selectAuto(snap Snapshot, requiredCount int) []DisplayItem {
	fill := newSlotFill(requiredCount)

	pinned := make(map[string]struct{}, len(snap.Settings.PrioritizedProducts))
	for _, id := range snap.Settings.PrioritizedProducts {
		pinned[id] = struct{}{}
	}
	highValue := highValueProducts(snap.Products, pinned)

	// Tier 1: pinned products, image-first then sales.
	pins := make([]Product, 0, len(snap.Settings.PrioritizedProducts))
	for _, id := range snap.Settings.PrioritizedProducts {
		if p, ok := productByID(snap.Products, id); ok {
			pins = append(pins, p)
		}
	}
	sortByImageThenSales(pins)
	for _, p := range pins {
		if fill.full() {
			break
		}
		fill.addProduct(p, !p.InStock())
	}

	// Tier 2: categories, image-first then sales.
	if !fill.full() {
		cats := append([]Category(nil), snap.Categories...)
		sort.SliceStable(cats, func(i, j int) bool {
			a, b := cats[i], cats[j]
			if (a.Image != "") != (b.Image != "") {
				return a.Image != ""
			}
			return a.Sales > b.Sales
		})
		for _, c := range cats {
			if fill.full() {
				break
			}
			fill.addCategory(c, snap.Products, highValue)
		}
	}

	// Tier 3: remaining in-stock products, excluding pinned ids and products
	// already spent as a category cover.
	if !fill.full() {
		rest := filterProducts(snap.Products, func(p Product) bool {
			if !p.InStock() {
				return false
			}
			if _, isPinned := pinned[p.ID]; isPinned {
				return false
			}
			return !fill.spent(p.ID)
		})
		sortByImageThenSales(rest)
		for _, p := range rest {
			if fill.full() {
				break
			}
			fill.addProduct(p, false)
		}
	}

	// Tier 4: out-of-stock fallback, sales only.
	if !fill.full() {
		oos := filterProducts(snap.Products, func(p Product) bool {
			if p.InStock() {
				return false
			}
			if _, isPinned := pinned[p.ID]; isPinned {
				return false
			}
			return !fill.spent(p.ID)
		})
		sortBySales(oos)
		for _, p := range oos {
			if fill.full() {
				break
			}
			fill.addProduct(p, true)
		}
	}

	return fill.items
}

// highValueProducts returns the ids reserved for standalone display: every
// pinned id plus the global top sellers. Products that never sold are not
// counted as top sellers, so a fresh catalog is not forced through image
// substitution for no reason.
func highValueProducts(products []Product, pinned map[string]struct{}) map[string]struct{} {
	hv := make(map[string]struct{}, len(pinned)+highValueTopSellers)
	for id := range pinned {
		hv[id] = struct{}{}
	}
	ranked := append([]Product(nil), products...)
	sortBySales(ranked)
	for i := 0; i < len(ranked) && i < highValueTopSellers; i++ {
		if ranked[i].Sales <= 0 {
			break
		}
		hv[ranked[i].ID] = struct{}{}
	}
	return hv
}

// slotFill accumulates display items for a single selection call. All state
// is local to one invocation.
type slotFill struct {
	required   int
	items      []DisplayItem
	usedImages map[string]struct{}
	taken      map[string]struct{} // "type|id" pairs already placed
	consumed   map[string]struct{} // product ids spent as tiles or category covers
}

func newSlotFill(required int) *slotFill {
	return &slotFill{
		required:   required,
		items:      make([]DisplayItem, 0, required),
		usedImages: make(map[string]struct{}),
		taken:      make(map[string]struct{}),
		consumed:   make(map[string]struct{}),
	}
}

func (f *slotFill) full() bool { return len(f.items) >= f.required }

func (f *slotFill) spent(productID string) bool {
	_, ok := f.consumed[productID]
	return ok
}

func (f *slotFill) imageUsed(image string) bool {
	if image == "" {
		return false
	}
	_, ok := f.usedImages[image]
	return ok
}

func (f *slotFill) addProduct(p Product, outOfStock bool) bool {
	if f.full() {
		return false
	}
	key := TypeProduct + "|" + p.ID
	if _, dup := f.taken[key]; dup {
		return false
	}
	img := p.DisplayImage()
	if f.imageUsed(img) {
		return false
	}
	if img != "" {
		f.usedImages[img] = struct{}{}
	}
	f.taken[key] = struct{}{}
	f.consumed[p.ID] = struct{}{}
	f.items = append(f.items, productItem(p, outOfStock))
	return true
}

// addCategory places a category tile with a representative image. The
// category's own (or top member's) image is used unless it is already on a
// prior tile, or the top member is high-value and should keep its image for
// a standalone tile. In either case the next-best member with an unused
// image stands in and is marked consumed. A category with no alternative
// reuses the top image: a duplicate tile beats an empty one.
func (f *slotFill) addCategory(c Category, products []Product, highValue map[string]struct{}) bool {
	if f.full() {
		return false
	}
	key := TypeCategory + "|" + c.ID
	if _, dup := f.taken[key]; dup {
		return false
	}

	members := filterProducts(products, func(p Product) bool { return p.CategoryID == c.ID })
	top := topSeller(members)

	image := c.Image
	if image == "" && top != nil {
		image = top.DisplayImage()
	}

	force := f.imageUsed(image)
	if top != nil {
		if f.imageUsed(top.DisplayImage()) {
			force = true
		}
		if _, hv := highValue[top.ID]; hv {
			force = true
		}
	}

	coverID := ""
	if force {
		if sub := f.substituteCover(members, top); sub != nil {
			image = sub.DisplayImage()
			coverID = sub.ID
		} else if top != nil && top.DisplayImage() != "" {
			// Last resort: accept the duplicate.
			image = top.DisplayImage()
		}
	} else if top != nil && image != "" && image == top.DisplayImage() {
		coverID = top.ID
	}

	if image != "" {
		f.usedImages[image] = struct{}{}
	}
	if coverID != "" {
		f.consumed[coverID] = struct{}{}
	}
	f.taken[key] = struct{}{}
	f.items = append(f.items, categoryItem(c, image))
	return true
}

// substituteCover finds the best-selling member, top excluded, whose image
// is not yet on any tile.
func (f *slotFill) substituteCover(members []Product, top *Product) *Product {
	rest := filterProducts(members, func(p Product) bool {
		return top == nil || p.ID != top.ID
	})
	sortBySales(rest)
	for i := range rest {
		img := rest[i].DisplayImage()
		if img != "" && !f.imageUsed(img) {
			return &rest[i]
		}
	}
	return nil
}

func topSeller(members []Product) *Product {
	var top *Product
	for i := range members {
		if top == nil || members[i].Sales > top.Sales {
			top = &members[i]
		}
	}
	return top
}
