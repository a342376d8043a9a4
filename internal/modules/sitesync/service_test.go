package sitesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarup081/bizvistar-sub002/internal/modules/catalog"
	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
)

func int64p(v int64) *int64 { return &v }

const fixtureCategoryID = 3

func TestMapProducts(t *testing.T) {
	rows := []catalog.Product{
		{ID: 12, Name: "Mug", Price: 9.5, CategoryID: int64p(fixtureCategoryID), ImageKey: "mug.jpg", Stock: 4},
		{ID: 11, Name: "Poster", ImageURL: "https://cdn.example.com/poster.jpg", Stock: merch.UnlimitedStock},
		{ID: 10, Name: "Sticker", Stock: 0},
	}
	sales := map[int64]int{12: 7}

	got := MapProducts(rows, sales, func(key string) string { return "/uploads/" + key })
	require.Len(t, got, 3)

	assert.Equal(t, "12", got[0].ID, "ids are stringified once, at the snapshot boundary")
	assert.Equal(t, "3", got[0].CategoryID)
	assert.Equal(t, "/uploads/mug.jpg", got[0].Image, "storage keys resolve to public URLs")
	assert.Equal(t, 7, got[0].Sales)

	assert.Equal(t, "https://cdn.example.com/poster.jpg", got[1].Image, "absolute URLs pass through")
	assert.Equal(t, "", got[1].CategoryID, "null category maps to uncategorized")
	assert.Equal(t, merch.UnlimitedStock, got[1].Stock)

	assert.Equal(t, 0, got[2].Sales, "products without orders default to zero sales")
	assert.Equal(t, "", got[2].Image)
}

func TestMapProducts_AbsoluteImageKey(t *testing.T) {
	rows := []catalog.Product{
		{ID: 1, ImageKey: "https://pics.example.com/x.jpg", Stock: 1},
	}

	got := MapProducts(rows, nil, func(string) string { t.Fatal("resolve must not run for absolute keys"); return "" })
	require.Len(t, got, 1)
	assert.Equal(t, "https://pics.example.com/x.jpg", got[0].Image)
}

func TestMapCategories(t *testing.T) {
	rows := []catalog.Category{
		{ID: 3, Name: "Kitchen"},
		{ID: 4, Name: "Empty"},
	}
	products := []merch.Product{
		{ID: "1", CategoryID: "3", Sales: 2, Image: "low.jpg"},
		{ID: "2", CategoryID: "3", Sales: 9}, // top seller, no image
		{ID: "3", CategoryID: "3", Sales: 5, Image: "mid.jpg"},
		{ID: "4", CategoryID: "other", Sales: 100, Image: "other.jpg"},
	}

	got := MapCategories(rows, products)
	require.Len(t, got, 2)

	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, 16, got[0].Sales, "category sales sum member sales only")
	assert.Equal(t, "mid.jpg", got[0].Image, "cover is the best-selling member that has an image")

	assert.Equal(t, "4", got[1].ID)
	assert.Zero(t, got[1].Sales)
	assert.Empty(t, got[1].Image)
}
