package institution

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// ValuePropositionItem is one ordered proposition card.
type ValuePropositionItem struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Icon        *IconBadge `json:"icon"`
}

// ValueProposition is the "why us" section with its ordered items.
type ValueProposition struct {
	ID       int                    `json:"id"`
	Title    string                 `json:"title"`
	Subtitle string                 `json:"subtitle,omitempty"`
	Items    []ValuePropositionItem `json:"items"`
}

// NormalizeValueProposition resolves the value-proposition section.
func NormalizeValueProposition(raw any) *ValueProposition {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	items := make([]ValuePropositionItem, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["propositions"]) {
		if item := normalizeValuePropositionItem(element); item != nil {
			items = append(items, *item)
		}
	}
	sortOrdered(items,
		func(i ValuePropositionItem) *int { return i.Order },
		func(i ValuePropositionItem) string { return i.Title },
	)

	return &ValueProposition{
		ID:       record.ID,
		Title:    strapi.StringAttr(record.Attrs, "title"),
		Subtitle: strapi.StringAttr(record.Attrs, "subtitle"),
		Items:    items,
	}
}

func normalizeValuePropositionItem(raw any) *ValuePropositionItem {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &ValuePropositionItem{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Order:       orderAttr(record.Attrs),
		Icon:        NormalizeIconBadge(record.Attrs["icon"]),
	}
}
