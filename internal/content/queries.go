package content

import (
	"github.com/sonascale/go-content/internal/strapi"
)

// Listing defaults per content type. Case studies render a denser grid.
const (
	DefaultListPageSize      = 9
	DefaultCaseStudyPageSize = 10
)

// ListParams are the typed inputs of every listing query builder. Zero
// values mean "absent" and contribute nothing to the emitted query.
type ListParams struct {
	Page         int
	PageSize     int
	CategorySlug string
	TagSlug      string
	Search       string
	ExcludeID    int
}

func (p ListParams) page() int {
	if p.Page > 0 {
		return p.Page
	}
	return 1
}

func (p ListParams) pageSize(fallback int) int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return fallback
}

var (
	categoryFields = []string{"name", "slug", "color"}
	tagFields      = []string{"name", "slug"}
	authorFields   = []string{"name", "role"}
	relatedFields  = []string{"title", "slug", "excerpt", "publishedDate", "readTime"}
)

func populateAuthor() strapi.Populate {
	return strapi.Populate{
		Relation: "author",
		Fields:   authorFields,
		Nested:   []strapi.Populate{strapi.PopulateMedia("image")},
	}
}

// BlogListQuery builds the blog listing query: card fields only, shallow
// media population, date sort with a publish-timestamp tie-break so equal
// dates paginate deterministically.
func BlogListQuery(params ListParams) string {
	return strapi.Query{
		Fields: []string{"title", "slug", "excerpt", "publishedDate", "readTime", "featured", "viewCount"},
		Populate: []strapi.Populate{
			strapi.PopulateMedia("bannerImage"),
			strapi.PopulateMedia("thumbnail"),
			populateAuthor(),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
		},
		Filters: strapi.ContentFilters{
			CategorySlug: params.CategorySlug,
			TagSlug:      params.TagSlug,
			ExcludeID:    params.ExcludeID,
			Search:       params.Search,
		}.Build(),
		Sort:     []string{"publishedDate:desc", "publishedAt:desc"},
		Page:     params.page(),
		PageSize: params.pageSize(DefaultListPageSize),
	}.Encode()
}

// BlogDetailQuery builds the single-blog query, populating related entries
// one level deep with the minimal fields their cards render.
func BlogDetailQuery(slug string) string {
	return strapi.Query{
		Populate: []strapi.Populate{
			strapi.PopulateMedia("bannerImage"),
			strapi.PopulateMedia("thumbnail"),
			populateAuthor(),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
			{Relation: "relatedBlogs", Fields: relatedFields, Nested: []strapi.Populate{
				strapi.PopulateMedia("thumbnail"),
			}},
		},
		Filters: strapi.ContentFilters{Slug: slug}.Build(),
	}.Encode()
}

// EventListQuery builds the event listing query sorted by event date.
func EventListQuery(params ListParams) string {
	return strapi.Query{
		Fields: []string{"title", "slug", "excerpt", "eventType", "eventDate", "eventTime", "eventLocation", "registrationStatus", "featured"},
		Populate: []strapi.Populate{
			strapi.PopulateMedia("featuredImage"),
			strapi.PopulateMedia("thumbnailImage"),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
		},
		Filters: strapi.ContentFilters{
			CategorySlug: params.CategorySlug,
			TagSlug:      params.TagSlug,
			ExcludeID:    params.ExcludeID,
			Search:       params.Search,
		}.Build(),
		Sort:     []string{"eventDate:desc", "publishedAt:desc"},
		Page:     params.page(),
		PageSize: params.pageSize(DefaultListPageSize),
	}.Encode()
}

// EventDetailQuery builds the single-event query.
func EventDetailQuery(slug string) string {
	return strapi.Query{
		Populate: []strapi.Populate{
			strapi.PopulateMedia("featuredImage"),
			strapi.PopulateMedia("thumbnailImage"),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
			{Relation: "relatedEvents", Fields: []string{"title", "slug", "excerpt", "eventDate", "eventLocation"}, Nested: []strapi.Populate{
				strapi.PopulateMedia("thumbnailImage"),
			}},
		},
		Filters: strapi.ContentFilters{Slug: slug}.Build(),
	}.Encode()
}

// CaseStudyListQuery builds the case-study listing query. Search covers the
// full body in addition to title and excerpt.
func CaseStudyListQuery(params ListParams) string {
	return strapi.Query{
		Fields: []string{"title", "slug", "excerpt", "publishedDate", "projectDate", "readTime", "featured"},
		Populate: []strapi.Populate{
			strapi.PopulateMedia("bannerImage"),
			strapi.PopulateMedia("thumbnail"),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
		},
		Filters: strapi.ContentFilters{
			CategorySlug: params.CategorySlug,
			TagSlug:      params.TagSlug,
			ExcludeID:    params.ExcludeID,
			Search:       params.Search,
			SearchFields: []string{"title", "excerpt", "content"},
		}.Build(),
		Sort:     []string{"publishedDate:desc", "publishedAt:desc"},
		Page:     params.page(),
		PageSize: params.pageSize(DefaultCaseStudyPageSize),
	}.Encode()
}

// CaseStudyDetailQuery builds the single case-study query.
func CaseStudyDetailQuery(slug string) string {
	return strapi.Query{
		Populate: []strapi.Populate{
			strapi.PopulateMedia("bannerImage"),
			strapi.PopulateMedia("thumbnail"),
			populateAuthor(),
			{Relation: "categories", Fields: categoryFields},
			{Relation: "tags", Fields: tagFields},
			{Relation: "relatedCaseStudies", Fields: relatedFields, Nested: []strapi.Populate{
				strapi.PopulateMedia("thumbnail"),
			}},
		},
		Filters: strapi.ContentFilters{Slug: slug}.Build(),
	}.Encode()
}

// CategoryListQuery lists taxonomy categories for filter chips.
func CategoryListQuery() string {
	return strapi.Query{
		Fields:   []string{"name", "slug", "color", "description", "order"},
		Sort:     []string{"order:asc", "name:asc"},
		Page:     1,
		PageSize: 100,
	}.Encode()
}

// TagListQuery lists taxonomy tags.
func TagListQuery() string {
	return strapi.Query{
		Fields:   []string{"name", "slug"},
		Sort:     []string{"name:asc"},
		Page:     1,
		PageSize: 100,
	}.Encode()
}
