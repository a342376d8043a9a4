package orders

import "time"

type Order struct {
	ID        string `gorm:"primaryKey"`
	WebsiteID string
	Status    string
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        string `gorm:"primaryKey"`
	OrderID   string
	ProductID int64
	Quantity  int
	UnitPrice float64
	CreatedAt time.Time
}
