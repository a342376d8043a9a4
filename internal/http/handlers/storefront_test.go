package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/http/middleware"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
)

type stubSites struct {
	site websites.Website
	err  error
}

func (s stubSites) GetBySlug(_ context.Context, slug string) (websites.Website, error) {
	if s.err != nil {
		return websites.Website{}, s.err
	}
	if slug != s.site.Slug {
		return websites.Website{}, gorm.ErrRecordNotFound
	}
	return s.site, nil
}

func storefrontRouter(sites SiteSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))

	h := NewStorefrontHandler(sites)
	r.GET("/api/sites/:slug/landing", h.Landing)
	r.GET("/api/sites/:slug/best-sellers", h.BestSellers)
	r.GET("/api/sites/:slug/products", h.Shop)
	r.GET("/api/sites/:slug/products/:id/similar", h.Similar)
	return r
}

func demoSite(t *testing.T) websites.Website {
	t.Helper()
	doc := `{
		"allProducts": [
			{"id":"1","name":"Filter Kit","price":12,"category":"10","image":"kit.jpg","stock":5,"sales":9},
			{"id":"2","name":"Kettle","price":48,"category":"10","image":"kettle.jpg","stock":3,"sales":4},
			{"id":"3","name":"Mug","price":9,"category":"11","image":"mug.jpg","stock":0,"sales":20}
		],
		"categories": [
			{"id":"10","name":"Brew Gear","image":"kit.jpg","sales":13},
			{"id":"11","name":"Mugs","image":"mug.jpg","sales":20}
		],
		"landing_settings": {"mode":"auto"}
	}`
	return websites.Website{ID: "w1", Slug: "demo", SiteData: datatypes.JSON(doc)}
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestLanding_ReturnsTiles(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/demo/landing?count=2")
	require.Equal(t, http.StatusOK, code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 2)
	assert.Equal(t, "category", items[0]["type"])
}

func TestLanding_UnknownSlug(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/nope/landing")
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `"Store not found."`, string(body["error"]))
}

func TestBestSellers_DefaultCount(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/demo/best-sellers")
	require.Equal(t, http.StatusOK, code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body["items"], &items))
	// Catalog has three products; the rail never pads.
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0]["id"])
	assert.Equal(t, "2", items[1]["id"])
	// Out of stock sinks to the back regardless of sales.
	assert.Equal(t, "3", items[2]["id"])
	assert.Equal(t, true, items[2]["outOfStock"])
}

func TestSimilar_UnknownProduct(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/demo/products/999/similar")
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `"Product not found."`, string(body["error"]))
}

func TestSimilar_PrefersSameCategory(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/demo/products/1/similar")
	require.Equal(t, http.StatusOK, code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 2)
	// Kettle shares the category: 100+50+20+4 beats Mug's 50+20.
	assert.Equal(t, "2", items[0]["id"])
	assert.Equal(t, "3", items[1]["id"])
}

func TestShop_CategoryFilterKeepsListingOrder(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	code, body := getJSON(t, r, "/api/sites/demo/products?category=10")
	require.Equal(t, http.StatusOK, code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(body["products"], &products))
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0]["id"])
	assert.Equal(t, "2", products[1]["id"])
}

func TestCountQuery_Clamping(t *testing.T) {
	r := storefrontRouter(stubSites{site: demoSite(t)})

	// Garbage and zero fall back to the default; the rail still caps at
	// catalog size.
	for _, q := range []string{"count=0", "count=-3", "count=abc", "count=9999"} {
		code, body := getJSON(t, r, "/api/sites/demo/best-sellers?"+q)
		require.Equal(t, http.StatusOK, code, q)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(body["items"], &items))
		assert.Len(t, items, 3, q)
	}
}
