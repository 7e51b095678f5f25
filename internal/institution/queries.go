package institution

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// sectionQuery builds the shared shape of every sub-section query: filter by
// the owning institution slug, populate the section's own relations with
// explicit minimal fields.
func sectionQuery(slug string, populate ...strapi.Populate) string {
	filters := &strapi.Filters{}
	filters.Eq(slug, "institution", "slug")
	return strapi.Query{
		Populate: populate,
		Filters:  filters,
	}.Encode()
}

var iconFields = []string{"iconName", "displayName", "iconColor", "backgroundColor"}

func populateIcon(relation string) strapi.Populate {
	return strapi.Populate{Relation: relation, Fields: iconFields}
}

// AboutQuery builds the about-section query for one institution.
func AboutQuery(slug string) string {
	return sectionQuery(slug, strapi.PopulateMedia("image"))
}

// ProgramQuery builds the program query with its ordered sections.
func ProgramQuery(slug string) string {
	return sectionQuery(slug,
		strapi.PopulateMedia("image"),
		strapi.Populate{
			Relation: "sections",
			Fields:   []string{"title", "description", "order"},
			Nested:   []strapi.Populate{populateIcon("icon")},
		},
	)
}

// ValuePropositionQuery builds the value-proposition query.
func ValuePropositionQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "propositions",
			Fields:   []string{"title", "description", "order"},
			Nested:   []strapi.Populate{populateIcon("icon")},
		},
	)
}

// AchievementsQuery builds the achievements query with both card decks.
func AchievementsQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "cards",
			Fields:   []string{"title", "value", "description", "order"},
			Nested:   []strapi.Populate{populateIcon("icon")},
		},
		strapi.Populate{
			Relation: "recognitions",
			Fields:   []string{"title", "description", "order"},
			Nested: []strapi.Populate{
				strapi.PopulateMedia("image"),
				populateIcon("icon"),
			},
		},
	)
}

// KeyHighlightsQuery builds the key-highlights query.
func KeyHighlightsQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "highlights",
			Fields:   []string{"title", "description", "order"},
			Nested:   []strapi.Populate{populateIcon("icon")},
		},
	)
}

// CampusGalleryQuery builds the gallery query with column images.
func CampusGalleryQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "columns",
			Fields:   []string{"order"},
			Nested:   []strapi.Populate{strapi.PopulateMedia("images")},
		},
	)
}

// FAQQuery builds the FAQ query.
func FAQQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "items",
			Fields:   []string{"question", "answer", "order"},
		},
	)
}

// TestimonialsQuery builds the testimonials query.
func TestimonialsQuery(slug string) string {
	return sectionQuery(slug,
		strapi.Populate{
			Relation: "testimonials",
			Fields:   []string{"name", "role", "quote", "rating"},
			Nested:   []strapi.Populate{strapi.PopulateMedia("image")},
		},
	)
}

// PartnershipsQuery builds the partnerships query with its required media.
func PartnershipsQuery(slug string) string {
	return sectionQuery(slug,
		strapi.PopulateMedia("backgroundImage"),
		strapi.Populate{
			Relation: "partnerships",
			Fields:   []string{"companyName", "websiteUrl", "isExternal"},
			Nested:   []strapi.Populate{strapi.PopulateMedia("companyLogo")},
		},
	)
}
