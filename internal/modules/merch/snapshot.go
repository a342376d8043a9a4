// Package merch decides what to show in a storefront's featured surfaces:
// landing tiles, the best-seller rail, the "you might also like" rail and
// the shop listing order. Every function here is a pure computation over a
// denormalized catalog snapshot; nothing reads the database or mutates its
// input, so concurrent calls need no coordination. The snapshot is refreshed
// out-of-band and may lag the transactional store.
package merch

import "sort"

// Item types used on DisplayItem and manual slot entries.
const (
	TypeProduct  = "product"
	TypeCategory = "category"
)

// Landing selection modes.
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

// UnlimitedStock is the stock sentinel meaning the product never runs out.
const UnlimitedStock = -1

// Product is one catalog product as the resolvers see it. IDs are plain
// strings: the snapshot producer stringifies database ids once, so nothing
// here compares mixed types. An empty CategoryID means uncategorized.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category,omitempty"`
	Image      string  `json:"image,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
	Stock      int     `json:"stock"`
	Sales      int     `json:"sales"`
}

// DisplayImage returns the image shown for p, preferring Image over the raw
// storage URL.
func (p Product) DisplayImage() string {
	if p.Image != "" {
		return p.Image
	}
	return p.ImageURL
}

// InStock reports whether p can still be sold.
func (p Product) InStock() bool {
	return p.Stock == UnlimitedStock || p.Stock > 0
}

// Category carries the denormalized per-category stats: Sales is the summed
// sales of member products, Image is either owner-set or inferred by the
// snapshot producer from the top-selling member with an image.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Sales int    `json:"sales"`
}

// ManualItem is one owner-curated landing slot entry. It may reference an
// entity that has since been deleted; resolution drops those silently.
type ManualItem struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// LandingSettings is the owner configuration for the featured surfaces. The
// zero value means auto mode with nothing pinned.
type LandingSettings struct {
	Mode                string       `json:"mode"`
	ManualItems         []ManualItem `json:"manualItems"`
	PrioritizedProducts []string     `json:"prioritizedProducts"`
}

// Snapshot is the read model one resolver call operates on. Callers own it;
// the resolvers never modify it.
type Snapshot struct {
	Products   []Product
	Categories []Category
	Settings   LandingSettings
}

// DisplayItem is one resolved slot, ready for the tile renderer. It is an
// ephemeral render payload and is never persisted.
type DisplayItem struct {
	Type       string  `json:"type"`
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price,omitempty"`
	CategoryID string  `json:"category,omitempty"`
	Stock      int     `json:"stock"`
	Sales      int     `json:"sales"`
	OutOfStock bool    `json:"isOutOfStock"`
}

func productItem(p Product, outOfStock bool) DisplayItem {
	return DisplayItem{
		Type:       TypeProduct,
		ID:         p.ID,
		Name:       p.Name,
		Image:      p.DisplayImage(),
		Price:      p.Price,
		CategoryID: p.CategoryID,
		Stock:      p.Stock,
		Sales:      p.Sales,
		OutOfStock: outOfStock,
	}
}

func categoryItem(c Category, image string) DisplayItem {
	return DisplayItem{
		Type:  TypeCategory,
		ID:    c.ID,
		Name:  c.Name,
		Image: image,
		Sales: c.Sales,
	}
}

func productByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func categoryByID(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func filterProducts(products []Product, keep func(Product) bool) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortByImageThenSales orders products with an image ahead of those without,
// then by sales descending. Stable, so catalog order breaks remaining ties.
func sortByImageThenSales(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		aImg, bImg := a.DisplayImage() != "", b.DisplayImage() != ""
		if aImg != bImg {
			return aImg
		}
		return a.Sales > b.Sales
	})
}

func sortBySales(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Sales > products[j].Sales
	})
}
