package content

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// normalizeBody accepts the two body shapes the CMS emits: a markdown
// string or a rich-text block array. Anything else is nil.
func normalizeBody(raw any) *Body {
	switch value := raw.(type) {
	case string:
		if value == "" {
			return nil
		}
		return &Body{Markdown: value}
	case []any:
		if len(value) == 0 {
			return nil
		}
		return &Body{Blocks: value}
	default:
		return nil
	}
}

// NormalizeCategories maps a raw relation collection to flat categories,
// discarding elements without a resolvable record.
func NormalizeCategories(raw any) []Category {
	elements := strapi.ExtractCollection(raw)
	categories := make([]Category, 0, len(elements))
	for _, element := range elements {
		record, ok := strapi.ResolveRecord(element)
		if !ok {
			continue
		}
		order, _ := strapi.IntAttr(record.Attrs, "order")
		categories = append(categories, Category{
			ID:          record.ID,
			Name:        strapi.StringAttr(record.Attrs, "name"),
			Slug:        strapi.StringAttr(record.Attrs, "slug"),
			Color:       NormalizeColor(record.Attrs["color"]),
			Description: strapi.StringAttr(record.Attrs, "description"),
			Order:       order,
		})
	}
	return categories
}

// NormalizeTags maps a raw relation collection to flat tags.
func NormalizeTags(raw any) []Tag {
	elements := strapi.ExtractCollection(raw)
	tags := make([]Tag, 0, len(elements))
	for _, element := range elements {
		record, ok := strapi.ResolveRecord(element)
		if !ok {
			continue
		}
		tags = append(tags, Tag{
			ID:   record.ID,
			Name: strapi.StringAttr(record.Attrs, "name"),
			Slug: strapi.StringAttr(record.Attrs, "slug"),
		})
	}
	return tags
}
