package content

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// EventNormalizer converts raw event payloads into canonical records.
type EventNormalizer struct {
	Config NormalizerConfig
}

// NewEventNormalizer returns a normalizer with the SCALE brand default.
func NewEventNormalizer() EventNormalizer {
	return EventNormalizer{Config: NormalizerConfig{DefaultAuthorName: DefaultEventAuthor}}
}

// Normalize converts one raw event record. Event authors may arrive as free
// text; the resolver chain accepts that shape directly. Related events are
// normalized as leaves, bounding the relation depth at one.
func (n EventNormalizer) Normalize(raw any) *Event {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	event := &Event{
		EventLeaf:     n.leaf(record),
		RelatedEvents: []EventLeaf{},
	}
	for _, element := range strapi.ExtractCollection(record.Attrs["relatedEvents"]) {
		related, ok := strapi.ResolveRecord(element)
		if !ok {
			continue
		}
		event.RelatedEvents = append(event.RelatedEvents, n.leaf(related))
	}
	return event
}

func (n EventNormalizer) leaf(record strapi.Record) EventLeaf {
	attrs := record.Attrs
	viewCount, _ := strapi.IntAttr(attrs, "viewCount")

	return EventLeaf{
		ID:                 record.ID,
		DocumentID:         strapi.StringAttr(attrs, "documentId"),
		Title:              strapi.StringAttr(attrs, "title"),
		Slug:               strapi.StringAttr(attrs, "slug"),
		Excerpt:            strapi.StringAttr(attrs, "excerpt"),
		Content:            normalizeBody(attrs["content"]),
		Author:             n.Config.ResolveAuthor(attrs["author"], attrs),
		Featured:           strapi.BoolAttr(attrs, "featured"),
		ViewCount:          viewCount,
		ShowComments:       strapi.BoolAttr(attrs, "showComments"),
		MetaTitle:          strapi.StringAttr(attrs, "metaTitle"),
		MetaDescription:    strapi.StringAttr(attrs, "metaDescription"),
		EventType:          strapi.StringAttr(attrs, "eventType"),
		EventDate:          strapi.StringAttr(attrs, "eventDate"),
		EventTime:          strapi.StringAttr(attrs, "eventTime"),
		EventLocation:      strapi.StringAttr(attrs, "eventLocation"),
		RegistrationStatus: strapi.StringAttr(attrs, "registrationStatus"),
		FeaturedImage:      media.Normalize(attrs["featuredImage"]),
		ThumbnailImage:     media.Normalize(attrs["thumbnailImage"]),
		Categories:         NormalizeCategories(attrs["categories"]),
		Tags:               NormalizeTags(attrs["tags"]),
	}
}
