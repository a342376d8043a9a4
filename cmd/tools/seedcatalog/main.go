package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/modules/catalog"
	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
	"github.com/swarup081/bizvistar-sub002/internal/modules/orders"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/shared/slug"
)

// Seeds a demo storefront with a small catalog and a few orders, so the
// merchandising endpoints have something to rank. Run createtable first,
// then syncsnapshot after.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()
	sites := websites.NewRepo(db)
	cat := catalog.NewRepo(db)
	ords := orders.NewRepo(db)

	name := "Demo Roastery"
	site, err := sites.Create(ctx, name, slug.FromName(name))
	if catalog.IsDuplicateKey(err) {
		log.Fatalf("demo site already seeded (slug %q taken)", slug.FromName(name))
	}
	if err != nil {
		log.Fatalf("failed to create website: %v", err)
	}

	beans, err := cat.CreateCategory(ctx, catalog.Category{WebsiteID: site.ID, Name: "Beans"})
	if err != nil {
		log.Fatalf("failed to create category: %v", err)
	}
	gear, err := cat.CreateCategory(ctx, catalog.Category{WebsiteID: site.ID, Name: "Brew Gear"})
	if err != nil {
		log.Fatalf("failed to create category: %v", err)
	}

	seed := []catalog.Product{
		{WebsiteID: site.ID, Name: "Ethiopia Natural 250g", Price: 14.5, CategoryID: &beans.ID, ImageURL: "https://cdn.example.com/img/ethiopia.jpg", Stock: 40},
		{WebsiteID: site.ID, Name: "Colombia Washed 250g", Price: 13.0, CategoryID: &beans.ID, ImageURL: "https://cdn.example.com/img/colombia.jpg", Stock: 25},
		{WebsiteID: site.ID, Name: "House Blend 1kg", Price: 32.0, CategoryID: &beans.ID, Stock: merch.UnlimitedStock},
		{WebsiteID: site.ID, Name: "V60 Dripper", Price: 9.9, CategoryID: &gear.ID, ImageURL: "https://cdn.example.com/img/v60.jpg", Stock: 0},
		{WebsiteID: site.ID, Name: "Gooseneck Kettle", Price: 49.0, CategoryID: &gear.ID, ImageURL: "https://cdn.example.com/img/kettle.jpg", Stock: 7},
	}
	created := make([]catalog.Product, 0, len(seed))
	for _, p := range seed {
		row, err := cat.CreateProduct(ctx, p)
		if err != nil {
			log.Fatalf("failed to create product %q: %v", p.Name, err)
		}
		created = append(created, row)
	}

	// A few orders so sales counts differ.
	orderLines := [][]orders.CreateLine{
		{{ProductID: created[0].ID, Quantity: 3, UnitPrice: 14.5}},
		{{ProductID: created[0].ID, Quantity: 2, UnitPrice: 14.5}, {ProductID: created[4].ID, Quantity: 1, UnitPrice: 49.0}},
		{{ProductID: created[1].ID, Quantity: 1, UnitPrice: 13.0}},
	}
	for _, lines := range orderLines {
		if _, err := ords.Create(ctx, site.ID, lines); err != nil {
			log.Fatalf("failed to create order: %v", err)
		}
	}

	// Reflect the seeded orders in the remaining stock.
	sold := map[int64]int{}
	for _, lines := range orderLines {
		for _, ln := range lines {
			sold[ln.ProductID] += ln.Quantity
		}
	}
	for id, qty := range sold {
		p, err := cat.GetProduct(ctx, site.ID, id)
		if err != nil {
			log.Fatalf("failed to load product %d: %v", id, err)
		}
		if p.Stock == merch.UnlimitedStock {
			continue
		}
		if err := cat.UpdateStock(ctx, site.ID, id, p.Stock-qty); err != nil {
			log.Fatalf("failed to update stock for %q: %v", p.Name, err)
		}
	}

	log.Printf("✓ seeded website %s (slug %s) with %d products", site.ID, site.Slug, len(created))
}
