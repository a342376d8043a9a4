package websites

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Get(ctx context.Context, id string) (Website, error) {
	var w Website
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return w, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Website, error) {
	var w Website
	err := r.db.WithContext(ctx).First(&w, "slug = ?", slug).Error
	return w, err
}

func (r *Repo) List(ctx context.Context) ([]Website, error) {
	var items []Website
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *Repo) Create(ctx context.Context, name, slug string) (Website, error) {
	w := Website{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		SiteData:  []byte(`{}`),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&w).Error; err != nil {
		return Website{}, err
	}
	return w, nil
}

// SaveSnapshot writes the refreshed catalog snapshot into the site document.
// A nil categories argument keeps the previously stored categories (the
// refresh routine passes nil when it found none, so a transient read problem
// does not wipe the storefront's category tiles).
func (r *Repo) SaveSnapshot(ctx context.Context, id string, products []merch.Product, categories []merch.Category) error {
	w, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	set := map[string]any{"allProducts": products}
	if categories != nil {
		set["categories"] = categories
	}
	merged, err := mergeSiteData(w.SiteData, set)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&Website{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"site_data":  merged,
			"updated_at": time.Now(),
		}).Error
}

// SaveLandingSettings replaces the owner's landing configuration, leaving
// the rest of the site document alone.
func (r *Repo) SaveLandingSettings(ctx context.Context, id string, settings merch.LandingSettings) error {
	w, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	merged, err := mergeSiteData(w.SiteData, map[string]any{"landing_settings": settings})
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&Website{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"site_data":  merged,
			"updated_at": time.Now(),
		}).Error
}
