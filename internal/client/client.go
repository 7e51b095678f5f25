package client

import (
	"context"

	"github.com/sonascale/go-content/internal/content"
	"github.com/sonascale/go-content/internal/institution"
	"github.com/sonascale/go-content/internal/logging"
	"github.com/sonascale/go-content/internal/strapi"
	"github.com/sonascale/go-content/pkg/interfaces"
)

// envelope is the standard CMS response body: a data payload plus optional
// pagination metadata. Data decodes as loose JSON so the normalizers see the
// exact shapes the CMS emitted.
type envelope struct {
	Data any  `json:"data"`
	Meta meta `json:"meta"`
}

type meta struct {
	Pagination Pagination `json:"pagination"`
}

// Pagination mirrors the CMS paging metadata.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Page couples a normalized item list with its pagination metadata.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Client is the typed read/write surface over the CMS: every read builds a
// query through the core builders, fetches, and normalizes before returning.
type Client struct {
	fetch       interfaces.Fetcher
	blogs       content.BlogNormalizer
	events      content.EventNormalizer
	caseStudies content.CaseStudyNormalizer
	log         interfaces.Logger
}

// Option mutates client construction.
type Option func(*Client)

// WithNormalizers overrides the per-type normalizer configuration, letting
// hosts rebrand the fallback author literals.
func WithNormalizers(blogs content.BlogNormalizer, events content.EventNormalizer, caseStudies content.CaseStudyNormalizer) Option {
	return func(c *Client) {
		c.blogs = blogs
		c.events = events
		c.caseStudies = caseStudies
	}
}

// WithClientLogger attaches a logger; the default is a no-op.
func WithClientLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// New builds a client over the given fetcher.
func New(fetch interfaces.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetch:       fetch,
		blogs:       content.NewBlogNormalizer(),
		events:      content.NewEventNormalizer(),
		caseStudies: content.NewCaseStudyNormalizer(),
		log:         logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBlogs returns one page of normalized blogs.
func (c *Client) ListBlogs(ctx context.Context, params content.ListParams) (*Page[content.Blog], error) {
	var env envelope
	if err := c.fetch.Get(ctx, "blogs", content.BlogListQuery(params), &env); err != nil {
		return nil, err
	}
	page := &Page[content.Blog]{Items: []content.Blog{}, Pagination: env.Meta.Pagination}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if blog := c.blogs.Normalize(element); blog != nil {
			page.Items = append(page.Items, *blog)
		}
	}
	return page, nil
}

// GetBlogBySlug returns one fully populated blog or a not-found error.
func (c *Client) GetBlogBySlug(ctx context.Context, slug string) (*content.Blog, error) {
	var env envelope
	if err := c.fetch.Get(ctx, "blogs", content.BlogDetailQuery(slug), &env); err != nil {
		return nil, err
	}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if blog := c.blogs.Normalize(element); blog != nil {
			return blog, nil
		}
	}
	return nil, ErrNotFound
}

// ListEvents returns one page of normalized events.
func (c *Client) ListEvents(ctx context.Context, params content.ListParams) (*Page[content.Event], error) {
	var env envelope
	if err := c.fetch.Get(ctx, "events", content.EventListQuery(params), &env); err != nil {
		return nil, err
	}
	page := &Page[content.Event]{Items: []content.Event{}, Pagination: env.Meta.Pagination}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if event := c.events.Normalize(element); event != nil {
			page.Items = append(page.Items, *event)
		}
	}
	return page, nil
}

// GetEventBySlug returns one fully populated event or a not-found error.
func (c *Client) GetEventBySlug(ctx context.Context, slug string) (*content.Event, error) {
	var env envelope
	if err := c.fetch.Get(ctx, "events", content.EventDetailQuery(slug), &env); err != nil {
		return nil, err
	}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if event := c.events.Normalize(element); event != nil {
			return event, nil
		}
	}
	return nil, ErrNotFound
}

// ListCaseStudies returns one page of normalized case studies.
func (c *Client) ListCaseStudies(ctx context.Context, params content.ListParams) (*Page[content.CaseStudy], error) {
	var env envelope
	if err := c.fetch.Get(ctx, "case-studies", content.CaseStudyListQuery(params), &env); err != nil {
		return nil, err
	}
	page := &Page[content.CaseStudy]{Items: []content.CaseStudy{}, Pagination: env.Meta.Pagination}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if study := c.caseStudies.Normalize(element); study != nil {
			page.Items = append(page.Items, *study)
		}
	}
	return page, nil
}

// GetCaseStudyBySlug returns one fully populated case study or a not-found
// error.
func (c *Client) GetCaseStudyBySlug(ctx context.Context, slug string) (*content.CaseStudy, error) {
	var env envelope
	if err := c.fetch.Get(ctx, "case-studies", content.CaseStudyDetailQuery(slug), &env); err != nil {
		return nil, err
	}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if study := c.caseStudies.Normalize(element); study != nil {
			return study, nil
		}
	}
	return nil, ErrNotFound
}

// ListCategories returns the category taxonomy.
func (c *Client) ListCategories(ctx context.Context) ([]content.Category, error) {
	var env envelope
	if err := c.fetch.Get(ctx, "categories", content.CategoryListQuery(), &env); err != nil {
		return nil, err
	}
	return content.NormalizeCategories(env.Data), nil
}

// ListTags returns the tag taxonomy.
func (c *Client) ListTags(ctx context.Context) ([]content.Tag, error) {
	var env envelope
	if err := c.fetch.Get(ctx, "tags", content.TagListQuery(), &env); err != nil {
		return nil, err
	}
	return content.NormalizeTags(env.Data), nil
}

// section fetches one institution sub-section record and hands the raw
// element to normalize. An empty upstream collection yields nil without an
// error: a missing supplementary section is not a failure.
func section[T any](ctx context.Context, c *Client, path, query string, normalize func(any) *T) (*T, error) {
	var env envelope
	if err := c.fetch.Get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	for _, element := range strapi.ExtractCollection(env.Data) {
		if normalized := normalize(element); normalized != nil {
			return normalized, nil
		}
	}
	return nil, nil
}

// About fetches the institution about section.
func (c *Client) About(ctx context.Context, slug string) (*institution.About, error) {
	return section(ctx, c, "abouts", institution.AboutQuery(slug), institution.NormalizeAbout)
}

// Program fetches the institution program section.
func (c *Client) Program(ctx context.Context, slug string) (*institution.Program, error) {
	return section(ctx, c, "programs", institution.ProgramQuery(slug), institution.NormalizeProgram)
}

// ValueProposition fetches the institution value-proposition section.
func (c *Client) ValueProposition(ctx context.Context, slug string) (*institution.ValueProposition, error) {
	return section(ctx, c, "value-propositions", institution.ValuePropositionQuery(slug), institution.NormalizeValueProposition)
}

// Achievements fetches the institution achievements section.
func (c *Client) Achievements(ctx context.Context, slug string) (*institution.Achievements, error) {
	return section(ctx, c, "achievements", institution.AchievementsQuery(slug), institution.NormalizeAchievements)
}

// KeyHighlights fetches the institution key-highlights section.
func (c *Client) KeyHighlights(ctx context.Context, slug string) (*institution.KeyHighlights, error) {
	return section(ctx, c, "key-highlights", institution.KeyHighlightsQuery(slug), institution.NormalizeKeyHighlights)
}

// CampusGallery fetches the institution campus gallery.
func (c *Client) CampusGallery(ctx context.Context, slug string) (*institution.CampusGallery, error) {
	return section(ctx, c, "campus-galleries", institution.CampusGalleryQuery(slug), institution.NormalizeCampusGallery)
}

// FAQ fetches the institution FAQ section.
func (c *Client) FAQ(ctx context.Context, slug string) (*institution.FAQ, error) {
	return section(ctx, c, "faqs", institution.FAQQuery(slug), institution.NormalizeFAQ)
}

// Testimonials fetches the institution testimonials section.
func (c *Client) Testimonials(ctx context.Context, slug string) (*institution.Testimonials, error) {
	return section(ctx, c, "testimonials", institution.TestimonialsQuery(slug), institution.NormalizeTestimonials)
}

// Partnerships fetches the institution partnerships section.
func (c *Client) Partnerships(ctx context.Context, slug string) (*institution.Partnerships, error) {
	return section(ctx, c, "partnerships", institution.PartnershipsQuery(slug), institution.NormalizePartnerships)
}
