package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/config"
	apphttp "github.com/swarup081/bizvistar-sub002/internal/http"
	"github.com/swarup081/bizvistar-sub002/internal/modules/catalog"
	"github.com/swarup081/bizvistar-sub002/internal/modules/orders"
	"github.com/swarup081/bizvistar-sub002/internal/modules/sitesync"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	syncSvc := sitesync.NewService(
		logger,
		websites.NewRepo(db),
		catalog.NewRepo(db),
		orders.NewRepo(db),
		store.Storage,
	)

	// Periodic snapshot refresh; storefronts read the last written snapshot.
	cr := cron.New()
	if _, err := cr.AddFunc(cfg.SyncSchedule, func() {
		if err := syncSvc.SyncAll(context.Background()); err != nil {
			logger.Error("scheduled snapshot refresh failed", "err", err)
		}
	}); err != nil {
		log.Fatalf("invalid SYNC_SCHEDULE: %v", err)
	}
	cr.Start()
	defer cr.Stop()

	r := apphttp.NewRouter(logger, db, cfg, syncSvc)
	_ = r.Run(cfg.HTTPAddr)
}
