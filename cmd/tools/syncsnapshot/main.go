package main

import (
	"context"
	"flag"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/modules/catalog"
	"github.com/swarup081/bizvistar-sub002/internal/modules/orders"
	"github.com/swarup081/bizvistar-sub002/internal/modules/sitesync"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/storage"
)

// One-off snapshot refresh, for operators and local development.
func main() {
	websiteID := flag.String("website", "", "website id to refresh (default: all)")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	svc := sitesync.NewService(
		logger,
		websites.NewRepo(db),
		catalog.NewRepo(db),
		orders.NewRepo(db),
		store.Storage,
	)

	ctx := context.Background()
	if *websiteID != "" {
		err = svc.Sync(ctx, *websiteID)
	} else {
		err = svc.SyncAll(ctx)
	}
	if err != nil {
		log.Fatalf("snapshot refresh failed: %v", err)
	}
	log.Println("snapshot refresh complete")
}
