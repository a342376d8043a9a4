package view

import "github.com/swarup081/bizvistar-sub002/internal/modules/merch"

// ListingItem is one row of the shop listing page.
type ListingItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	CategoryID string  `json:"category,omitempty"`
	Sales      int     `json:"sales"`
	OutOfStock bool    `json:"outOfStock"`
}

func ListingFrom(products []merch.Product) []ListingItem {
	out := make([]ListingItem, 0, len(products))
	for _, p := range products {
		out = append(out, ListingItem{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Image:      p.DisplayImage(),
			CategoryID: p.CategoryID,
			Sales:      p.Sales,
			OutOfStock: !p.InStock(),
		})
	}
	return out
}
