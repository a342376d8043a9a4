package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ListProducts returns every product of a website, newest first.
func (r *Repo) ListProducts(ctx context.Context, websiteID string) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) ListCategories(ctx context.Context, websiteID string) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) GetProduct(ctx context.Context, websiteID string, id int64) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		First(&p, "id = ? AND website_id = ?", id, websiteID).Error
	return p, err
}

func (r *Repo) CreateProduct(ctx context.Context, p Product) (Product, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) CreateCategory(ctx context.Context, c Category) (Category, error) {
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) UpdateStock(ctx context.Context, websiteID string, id int64, stock int) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND website_id = ?", id, websiteID).
		Updates(map[string]any{
			"stock":      stock,
			"updated_at": time.Now(),
		}).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
