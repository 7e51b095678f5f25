package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// About is the institution introduction block.
type About struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Description string            `json:"description"`
	Image       *media.Descriptor `json:"image"`
	VideoURL    string            `json:"videoUrl,omitempty"`
}

// NormalizeAbout resolves the about section or nil when the record cannot
// be resolved.
func NormalizeAbout(raw any) *About {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &About{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Subtitle:    strapi.StringAttr(record.Attrs, "subtitle"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Image:       media.Normalize(record.Attrs["image"]),
		VideoURL:    strapi.StringAttr(record.Attrs, "videoUrl"),
	}
}
