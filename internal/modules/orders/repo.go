package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// SalesByProduct sums ordered quantities per product for one website. The
// join through orders keeps cross-website order items out of the count.
func (r *Repo) SalesByProduct(ctx context.Context, websiteID string) (map[int64]int, error) {
	type row struct {
		ProductID int64
		Qty       int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id AS product_id, SUM(order_items.quantity) AS qty").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.website_id = ?", websiteID).
		Group("order_items.product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sales := make(map[int64]int, len(rows))
	for _, rw := range rows {
		sales[rw.ProductID] = rw.Qty
	}
	return sales, nil
}

type CreateLine struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Create inserts an order with its items in one transaction.
func (r *Repo) Create(ctx context.Context, websiteID string, lines []CreateLine) (Order, error) {
	now := time.Now()
	o := Order{
		ID:        uuid.NewString(),
		WebsiteID: websiteID,
		Status:    "paid",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, ln := range lines {
		o.Total += ln.UnitPrice * float64(ln.Quantity)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for _, ln := range lines {
			item := OrderItem{
				ID:        uuid.NewString(),
				OrderID:   o.ID,
				ProductID: ln.ProductID,
				Quantity:  ln.Quantity,
				UnitPrice: ln.UnitPrice,
				CreatedAt: now,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return o, nil
}
