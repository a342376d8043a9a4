package catalog

import "time"

// Product is the transactional product row. Stock -1 means unlimited.
// ImageKey is the storage key of the uploaded image; ImageURL is set when
// the owner pasted an absolute URL instead.
type Product struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	WebsiteID  string
	Name       string
	Price      float64
	CategoryID *int64
	ImageKey   string
	ImageURL   string
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Category struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	WebsiteID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
