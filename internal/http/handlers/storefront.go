package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/http/middleware"
	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/shared/apperr"
	"github.com/swarup081/bizvistar-sub002/pkg/view"
)

// Default slot counts per surface; callers override with ?count=.
const (
	defaultLandingCount    = 3
	defaultBestSellerCount = 4
	defaultSimilarCount    = 4
	maxSlotCount           = 24
)

// SiteSource resolves a storefront by its public slug.
type SiteSource interface {
	GetBySlug(ctx context.Context, slug string) (websites.Website, error)
}

// StorefrontHandler serves the resolved merchandising surfaces the template
// renderer consumes.
type StorefrontHandler struct {
	sites SiteSource
}

func NewStorefrontHandler(sites SiteSource) *StorefrontHandler {
	return &StorefrontHandler{sites: sites}
}

// Landing returns the featured tiles for the landing page.
func (h *StorefrontHandler) Landing(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	items := merch.SelectLanding(snap, countQuery(c, defaultLandingCount))
	c.JSON(http.StatusOK, gin.H{"items": view.TilesFrom(items)})
}

// BestSellers returns the best-seller rail.
func (h *StorefrontHandler) BestSellers(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	items := merch.SelectBestSellers(snap, countQuery(c, defaultBestSellerCount))
	c.JSON(http.StatusOK, gin.H{"items": view.TilesFrom(items)})
}

// Similar returns the "you might also like" rail for one product.
func (h *StorefrontHandler) Similar(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	ref, found := refProduct(snap.Products, c.Param("id"))
	if !found {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	items := merch.SimilarProducts(ref, snap.Products, countQuery(c, defaultSimilarCount))
	c.JSON(http.StatusOK, gin.H{"items": view.TilesFrom(items)})
}

// Shop returns every product in listing order, optionally narrowed to one
// category. Filtering happens after sorting, so the relative order matches
// the unfiltered listing.
func (h *StorefrontHandler) Shop(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	sorted := merch.SortCatalog(snap.Products, snap)
	if categoryID := c.Query("category"); categoryID != "" {
		filtered := make([]merch.Product, 0, len(sorted))
		for _, p := range sorted {
			if p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}
		sorted = filtered
	}

	c.JSON(http.StatusOK, gin.H{"products": view.ListingFrom(sorted)})
}

func (h *StorefrontHandler) snapshot(c *gin.Context) (merch.Snapshot, bool) {
	w, err := h.sites.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Store not found."))
		} else {
			middleware.Fail(c, apperr.Wrap(err))
		}
		return merch.Snapshot{}, false
	}

	data, err := w.Data()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return merch.Snapshot{}, false
	}
	return data.Snapshot(), true
}

func refProduct(products []merch.Product, id string) (merch.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return merch.Product{}, false
}

func countQuery(c *gin.Context, def int) int {
	v := c.Query("count")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	if n > maxSlotCount {
		return maxSlotCount
	}
	return n
}
