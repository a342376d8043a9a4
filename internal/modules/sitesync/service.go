// Package sitesync rebuilds the denormalized catalog snapshot the storefront
// resolvers read. It runs out-of-band (cron or on demand), so storefront
// ranking lags the transactional store by at most one refresh interval.
package sitesync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/swarup081/bizvistar-sub002/internal/modules/catalog"
	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
	"github.com/swarup081/bizvistar-sub002/internal/modules/orders"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/storage"
)

type Service struct {
	log    *slog.Logger
	sites  *websites.Repo
	cat    *catalog.Repo
	orders *orders.Repo
	store  storage.Storage
}

func NewService(log *slog.Logger, sites *websites.Repo, cat *catalog.Repo, ords *orders.Repo, store storage.Storage) *Service {
	return &Service{log: log, sites: sites, cat: cat, orders: ords, store: store}
}

// Sync recomputes one website's snapshot: products with aggregated sales,
// categories with summed member sales and an inferred cover image, written
// back into the site document. Keys this service does not own are preserved.
func (s *Service) Sync(ctx context.Context, websiteID string) error {
	prods, err := s.cat.ListProducts(ctx, websiteID)
	if err != nil {
		return fmt.Errorf("sitesync: list products: %w", err)
	}
	cats, err := s.cat.ListCategories(ctx, websiteID)
	if err != nil {
		return fmt.Errorf("sitesync: list categories: %w", err)
	}
	sales, err := s.orders.SalesByProduct(ctx, websiteID)
	if err != nil {
		return fmt.Errorf("sitesync: aggregate sales: %w", err)
	}

	mapped := MapProducts(prods, sales, s.store.PublicURL)
	mappedCats := MapCategories(cats, mapped)

	// An empty category list keeps whatever the document already holds.
	toStore := mappedCats
	if len(mappedCats) == 0 {
		toStore = nil
	}

	if err := s.sites.SaveSnapshot(ctx, websiteID, mapped, toStore); err != nil {
		return fmt.Errorf("sitesync: save snapshot: %w", err)
	}

	s.log.Info("site snapshot refreshed",
		"website_id", websiteID,
		"products", len(mapped),
		"categories", len(mappedCats),
	)
	return nil
}

// SyncAll refreshes every website. One failing site does not stop the rest.
func (s *Service) SyncAll(ctx context.Context) error {
	sites, err := s.sites.List(ctx)
	if err != nil {
		return fmt.Errorf("sitesync: list websites: %w", err)
	}

	var lastErr error
	for _, w := range sites {
		if err := s.Sync(ctx, w.ID); err != nil {
			s.log.Error("site snapshot refresh failed", "website_id", w.ID, "err", err)
			lastErr = err
		}
	}
	return lastErr
}

// MapProducts turns transactional product rows into snapshot products:
// string ids, resolved image URLs, sales defaulted to zero. resolve turns a
// storage key into a public URL; absolute URLs pass through untouched.
func MapProducts(rows []catalog.Product, sales map[int64]int, resolve func(string) string) []merch.Product {
	out := make([]merch.Product, 0, len(rows))
	for _, p := range rows {
		categoryID := ""
		if p.CategoryID != nil {
			categoryID = strconv.FormatInt(*p.CategoryID, 10)
		}

		image := p.ImageURL
		if image == "" && p.ImageKey != "" {
			image = resolveImage(p.ImageKey, resolve)
		}

		out = append(out, merch.Product{
			ID:         strconv.FormatInt(p.ID, 10),
			Name:       p.Name,
			Price:      p.Price,
			CategoryID: categoryID,
			Image:      image,
			Stock:      p.Stock,
			Sales:      sales[p.ID],
		})
	}
	return out
}

// MapCategories derives per-category stats from the already mapped products:
// summed member sales, and the top-selling member's image as the cover (the
// best-selling member that actually has one).
func MapCategories(rows []catalog.Category, products []merch.Product) []merch.Category {
	out := make([]merch.Category, 0, len(rows))
	for _, c := range rows {
		id := strconv.FormatInt(c.ID, 10)

		members := make([]merch.Product, 0)
		total := 0
		for _, p := range products {
			if p.CategoryID == id {
				members = append(members, p)
				total += p.Sales
			}
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Sales > members[j].Sales
		})
		cover := ""
		for _, m := range members {
			if img := m.DisplayImage(); img != "" {
				cover = img
				break
			}
		}

		out = append(out, merch.Category{
			ID:    id,
			Name:  c.Name,
			Image: cover,
			Sales: total,
		})
	}
	return out
}

func resolveImage(key string, resolve func(string) string) string {
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	if resolve == nil {
		return key
	}
	return resolve(key)
}
