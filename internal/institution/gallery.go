package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// GalleryColumn is one ordered gallery column holding exactly two images.
// Columns that do not resolve to exactly two images are dropped.
type GalleryColumn struct {
	ID     int                 `json:"id"`
	Order  *int                `json:"order,omitempty"`
	Images []*media.Descriptor `json:"images"`
}

// CampusGallery is the campus image wall. A gallery with zero valid columns
// normalizes to nil so the section renders nothing.
type CampusGallery struct {
	ID      int             `json:"id"`
	Title   string          `json:"title"`
	Columns []GalleryColumn `json:"columns"`
}

// NormalizeCampusGallery resolves the gallery section. Column normalization
// is an explicit map-then-filter pass so each column stays independently
// testable.
func NormalizeCampusGallery(raw any) *CampusGallery {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	mapped := make([]*GalleryColumn, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["columns"]) {
		mapped = append(mapped, normalizeGalleryColumn(element))
	}

	columns := make([]GalleryColumn, 0, len(mapped))
	for _, column := range mapped {
		if column != nil {
			columns = append(columns, *column)
		}
	}
	if len(columns) == 0 {
		return nil
	}

	sortOrdered(columns,
		func(c GalleryColumn) *int { return c.Order },
		func(c GalleryColumn) string { return "" },
	)

	return &CampusGallery{
		ID:      record.ID,
		Title:   strapi.StringAttr(record.Attrs, "title"),
		Columns: columns,
	}
}

func normalizeGalleryColumn(raw any) *GalleryColumn {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	images := make([]*media.Descriptor, 0, 2)
	for _, element := range strapi.ExtractCollection(record.Attrs["images"]) {
		if descriptor := media.Normalize(element); descriptor != nil {
			images = append(images, descriptor)
		}
	}
	if len(images) != 2 {
		return nil
	}

	return &GalleryColumn{
		ID:     record.ID,
		Order:  orderAttr(record.Attrs),
		Images: images,
	}
}
