package websites

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/swarup081/bizvistar-sub002/internal/modules/merch"
)

// Website is one storefront. SiteData holds the denormalized JSON document
// the storefront templates read: the catalog snapshot plus owner settings
// (and whatever else the editor stores there).
type Website struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Slug      string `gorm:"uniqueIndex"`
	SiteData  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SiteData is the part of the site document this service reads and writes.
// Unknown keys (theme, editor layout, ...) are preserved on update, never
// interpreted.
type SiteData struct {
	AllProducts     []merch.Product       `json:"allProducts"`
	Categories      []merch.Category      `json:"categories"`
	LandingSettings merch.LandingSettings `json:"landing_settings"`
}

// Data decodes the site document. An empty or missing document yields the
// zero value, not an error.
func (w Website) Data() (SiteData, error) {
	var d SiteData
	if len(w.SiteData) == 0 {
		return d, nil
	}
	if err := json.Unmarshal(w.SiteData, &d); err != nil {
		return SiteData{}, err
	}
	return d, nil
}

// Snapshot builds the resolver input. Absent settings default to auto mode
// with nothing pinned.
func (d SiteData) Snapshot() merch.Snapshot {
	settings := d.LandingSettings
	if settings.Mode == "" {
		settings.Mode = merch.ModeAuto
	}
	return merch.Snapshot{
		Products:   d.AllProducts,
		Categories: d.Categories,
		Settings:   settings,
	}
}

// mergeSiteData replaces the given top-level keys in the raw document and
// leaves every other key as it was. A corrupt document is replaced rather
// than propagated.
func mergeSiteData(raw datatypes.JSON, set map[string]any) (datatypes.JSON, error) {
	doc := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			doc = map[string]json.RawMessage{}
		}
	}
	for k, v := range set {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		doc[k] = b
	}
	return json.Marshal(doc)
}
