package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swarup081/bizvistar-sub002/internal/http/middleware"
	"github.com/swarup081/bizvistar-sub002/internal/http/validation"
	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
	"github.com/swarup081/bizvistar-sub002/internal/modules/websites"
	"github.com/swarup081/bizvistar-sub002/internal/shared/apperr"
)

// SiteAdmin is the write side of the site store used by the admin API.
type SiteAdmin interface {
	GetBySlug(ctx context.Context, slug string) (websites.Website, error)
	SaveLandingSettings(ctx context.Context, id string, settings merch.LandingSettings) error
}

// Syncer triggers an on-demand snapshot refresh.
type Syncer interface {
	Sync(ctx context.Context, websiteID string) error
}

type AdminHandler struct {
	sites SiteAdmin
	sync  Syncer
}

func NewAdminHandler(sites SiteAdmin, sync Syncer) *AdminHandler {
	return &AdminHandler{sites: sites, sync: sync}
}

type manualItemReq struct {
	Type string `json:"type" binding:"required,oneof=product category"`
	ID   string `json:"id" binding:"required"`
}

type landingSettingsReq struct {
	Mode                string          `json:"mode" binding:"required,oneof=auto manual"`
	ManualItems         []manualItemReq `json:"manualItems" binding:"omitempty,dive"`
	PrioritizedProducts []string        `json:"prioritizedProducts"`
}

// UpdateLandingSettings replaces the owner's landing configuration for a
// site. Takes effect on the next storefront request; no snapshot refresh
// needed since settings live beside the snapshot, not inside it.
func (h *AdminHandler) UpdateLandingSettings(c *gin.Context) {
	var req landingSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Landing settings are invalid.", validation.FromBindError(err, &req)))
		return
	}

	w, ok := h.site(c)
	if !ok {
		return
	}

	settings := merch.LandingSettings{
		Mode:                req.Mode,
		ManualItems:         make([]merch.ManualItem, 0, len(req.ManualItems)),
		PrioritizedProducts: req.PrioritizedProducts,
	}
	for _, m := range req.ManualItems {
		settings.ManualItems = append(settings.ManualItems, merch.ManualItem{Type: m.Type, ID: m.ID})
	}

	if err := h.sites.SaveLandingSettings(c.Request.Context(), w.ID, settings); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SyncSite rebuilds the site's catalog snapshot immediately instead of
// waiting for the next scheduled pass.
func (h *AdminHandler) SyncSite(c *gin.Context) {
	w, ok := h.site(c)
	if !ok {
		return
	}

	if err := h.sync.Sync(c.Request.Context(), w.ID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "synced"})
}

func (h *AdminHandler) site(c *gin.Context) (websites.Website, bool) {
	w, err := h.sites.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Store not found."))
		} else {
			middleware.Fail(c, apperr.Wrap(err))
		}
		return websites.Website{}, false
	}
	return w, true
}
