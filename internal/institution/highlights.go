package institution

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// KeyHighlight is one ordered highlight bullet.
type KeyHighlight struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Icon        *IconBadge `json:"icon"`
}

// KeyHighlights is the highlights strip with its ordered items.
type KeyHighlights struct {
	ID    int            `json:"id"`
	Title string         `json:"title"`
	Items []KeyHighlight `json:"items"`
}

// NormalizeKeyHighlights resolves the key-highlights section.
func NormalizeKeyHighlights(raw any) *KeyHighlights {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	items := make([]KeyHighlight, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["highlights"]) {
		if item := normalizeKeyHighlight(element); item != nil {
			items = append(items, *item)
		}
	}
	sortOrdered(items,
		func(i KeyHighlight) *int { return i.Order },
		func(i KeyHighlight) string { return i.Title },
	)

	return &KeyHighlights{
		ID:    record.ID,
		Title: strapi.StringAttr(record.Attrs, "title"),
		Items: items,
	}
}

func normalizeKeyHighlight(raw any) *KeyHighlight {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &KeyHighlight{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Order:       orderAttr(record.Attrs),
		Icon:        NormalizeIconBadge(record.Attrs["icon"]),
	}
}
