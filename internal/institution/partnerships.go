package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// Partnership is one partner company entry. A resolvable company logo is
// required; entries without one are dropped from the list entirely.
type Partnership struct {
	ID          int               `json:"id"`
	CompanyName string            `json:"companyName"`
	Logo        *media.Descriptor `json:"logo"`
	WebsiteURL  string            `json:"websiteUrl,omitempty"`
	IsExternal  bool              `json:"isExternal"`
}

// Partnerships is the partner wall. The section requires a resolved
// background image; without one the whole section normalizes to nil.
type Partnerships struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	BackgroundImage *media.Descriptor `json:"backgroundImage"`
	Items           []Partnership     `json:"items"`
}

// NormalizePartnerships resolves the partnerships section, applying both
// drop rules as an explicit map-then-filter pass.
func NormalizePartnerships(raw any) *Partnerships {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	background := media.Normalize(record.Attrs["backgroundImage"])
	if background == nil {
		return nil
	}

	mapped := make([]*Partnership, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["partnerships"]) {
		mapped = append(mapped, normalizePartnership(element))
	}

	items := make([]Partnership, 0, len(mapped))
	for _, item := range mapped {
		if item != nil {
			items = append(items, *item)
		}
	}

	return &Partnerships{
		ID:              record.ID,
		Title:           strapi.StringAttr(record.Attrs, "title"),
		Description:     strapi.StringAttr(record.Attrs, "description"),
		BackgroundImage: background,
		Items:           items,
	}
}

func normalizePartnership(raw any) *Partnership {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	logo := media.Normalize(record.Attrs["companyLogo"])
	if logo == nil {
		return nil
	}
	return &Partnership{
		ID:          record.ID,
		CompanyName: strapi.StringAttr(record.Attrs, "companyName"),
		Logo:        logo,
		WebsiteURL:  strapi.StringAttr(record.Attrs, "websiteUrl"),
		IsExternal:  strapi.BoolAttr(record.Attrs, "isExternal"),
	}
}
