package view

import "github.com/swarup081/bizvistar-sub002/internal/modules/merch"

// Tile is one featured slot as the storefront templates render it.
type Tile struct {
	Type       string  `json:"type"`
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price,omitempty"`
	OutOfStock bool    `json:"outOfStock"`
}

func TilesFrom(items []merch.DisplayItem) []Tile {
	out := make([]Tile, 0, len(items))
	for _, it := range items {
		out = append(out, Tile{
			Type:       it.Type,
			ID:         it.ID,
			Name:       it.Name,
			Image:      it.Image,
			Price:      it.Price,
			OutOfStock: it.OutOfStock,
		})
	}
	return out
}
