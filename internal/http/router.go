package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/config"
	"github.com/swarup081/bizvistar-sub002/internal/http/handlers"
	"github.com/swarup081/bizvistar-sub002/internal/http/middleware"
	"github.com/swarup081/bizvistar-sub002/internal/modules/sitesync"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
)

func NewRouter(l *slog.Logger, db *gorm.DB, cfg config.Config, syncSvc *sitesync.Service) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l),
		middleware.ErrorHandler(l),
	)

	sites := websites.NewRepo(db)
	storefront := handlers.NewStorefrontHandler(sites)
	admin := handlers.NewAdminHandler(sites, syncSvc)

	api := r.Group("/api")
	{
		site := api.Group("/sites/:slug")
		site.GET("/landing", storefront.Landing)
		site.GET("/best-sellers", storefront.BestSellers)
		site.GET("/products", storefront.Shop)
		site.GET("/products/:id/similar", storefront.Similar)

		adm := api.Group("/admin/sites/:slug", middleware.RequireAdmin(cfg.AdminKeyHash))
		adm.PUT("/landing-settings", admin.UpdateLandingSettings)
		adm.POST("/sync", admin.SyncSite)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
