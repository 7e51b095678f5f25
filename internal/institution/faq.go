package institution

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// FAQItem is one ordered question/answer pair.
type FAQItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order,omitempty"`
}

// FAQ is the question list. A section with zero valid items normalizes to
// nil so the accordion renders nothing.
type FAQ struct {
	ID    int       `json:"id"`
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

// NormalizeFAQ resolves the FAQ section with items sorted by order and
// tie-broken on the question text.
func NormalizeFAQ(raw any) *FAQ {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	items := make([]FAQItem, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["items"]) {
		if item := normalizeFAQItem(element); item != nil {
			items = append(items, *item)
		}
	}
	if len(items) == 0 {
		return nil
	}
	sortOrdered(items,
		func(i FAQItem) *int { return i.Order },
		func(i FAQItem) string { return i.Question },
	)

	return &FAQ{
		ID:    record.ID,
		Title: strapi.StringAttr(record.Attrs, "title"),
		Items: items,
	}
}

func normalizeFAQItem(raw any) *FAQItem {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	question := strapi.StringAttr(record.Attrs, "question")
	if question == "" {
		return nil
	}
	return &FAQItem{
		ID:       record.ID,
		Question: question,
		Answer:   strapi.StringAttr(record.Attrs, "answer"),
		Order:    orderAttr(record.Attrs),
	}
}
