package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// Testimonial is one student or partner quote.
type Testimonial struct {
	ID     int               `json:"id"`
	Name   string            `json:"name"`
	Role   string            `json:"role,omitempty"`
	Quote  string            `json:"quote"`
	Rating int               `json:"rating,omitempty"`
	Image  *media.Descriptor `json:"image"`
}

// Testimonials is the quote carousel.
type Testimonials struct {
	ID    int           `json:"id"`
	Title string        `json:"title"`
	Items []Testimonial `json:"items"`
}

// NormalizeTestimonials resolves the testimonial section. Items keep their
// upstream order; the carousel is not order-field driven.
func NormalizeTestimonials(raw any) *Testimonials {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	items := make([]Testimonial, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["testimonials"]) {
		if item := normalizeTestimonial(element); item != nil {
			items = append(items, *item)
		}
	}

	return &Testimonials{
		ID:    record.ID,
		Title: strapi.StringAttr(record.Attrs, "title"),
		Items: items,
	}
}

func normalizeTestimonial(raw any) *Testimonial {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	rating, _ := strapi.IntAttr(record.Attrs, "rating")
	return &Testimonial{
		ID:     record.ID,
		Name:   strapi.StringAttr(record.Attrs, "name"),
		Role:   strapi.StringAttr(record.Attrs, "role"),
		Quote:  strapi.StringAttr(record.Attrs, "quote"),
		Rating: rating,
		Image:  media.Normalize(record.Attrs["image"]),
	}
}
