package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/sonascale/go-content/internal/client"
	"github.com/sonascale/go-content/internal/content"
	"github.com/sonascale/go-content/internal/media"
)

// listParams reads the shared listing query parameters. Slug-valued filters
// are normalized before they reach a query builder so malformed input never
// becomes a CMS filter clause.
func listParams(c *gin.Context) content.ListParams {
	params := content.ListParams{
		CategorySlug: sanitizeSlug(c.Query("category")),
		TagSlug:      sanitizeSlug(c.Query("tag")),
		Search:       strings.TrimSpace(c.Query("q")),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		params.Page = page
	}
	if size, err := strconv.Atoi(c.Query("pageSize")); err == nil && size > 0 {
		params.PageSize = size
	}
	if exclude, err := strconv.Atoi(c.Query("exclude")); err == nil && exclude > 0 {
		params.ExcludeID = exclude
	}
	return params
}

func sanitizeSlug(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if slug.IsValid(raw) {
		return raw
	}
	normalized, err := slug.Normalize(raw)
	if err != nil {
		return ""
	}
	return normalized
}

// pathSlug reads and validates the slug path parameter; ok=false means the
// handler should answer 404 without touching the CMS.
func pathSlug(c *gin.Context) (string, bool) {
	value := sanitizeSlug(c.Param("slug"))
	return value, value != ""
}

func (s *Server) fail(c *gin.Context, err error) {
	if client.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if errs, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": errs})
		return
	}
	s.log.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream failure"})
}

type blogItem struct {
	content.Blog
	Href         string `json:"href"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ContentHTML  string `json:"contentHtml,omitempty"`
}

type eventItem struct {
	content.Event
	Href         string `json:"href"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ContentHTML  string `json:"contentHtml,omitempty"`
}

type caseStudyItem struct {
	content.CaseStudy
	Href         string `json:"href"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ContentHTML  string `json:"contentHtml,omitempty"`
}

// cardImage picks the smallest rendition from the first resolvable
// descriptor and absolutizes relative upload paths against the CMS origin.
func (s *Server) cardImage(descriptors ...*media.Descriptor) string {
	for _, descriptor := range descriptors {
		if url := descriptor.Thumbnail(); url != "" {
			return media.AbsoluteURL(s.mediaBase, url)
		}
	}
	return ""
}

// renderBody renders the markdown body for detail payloads. A render failure
// degrades to an empty string so the frontend can fall back to raw markdown.
func (s *Server) renderBody(slugValue string, body *content.Body) string {
	rendered, err := content.RenderHTML(body)
	if err != nil {
		s.log.Warn("render body failed", "slug", slugValue, "error", err)
		return ""
	}
	return rendered
}

func (s *Server) listBlogs(c *gin.Context) {
	page, err := s.cms.ListBlogs(c.Request.Context(), listParams(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	items := make([]blogItem, 0, len(page.Items))
	for _, blog := range page.Items {
		href, _ := s.routes.BlogURL(blog.Slug)
		items = append(items, blogItem{
			Blog:         blog,
			Href:         href,
			ThumbnailURL: s.cardImage(blog.Thumbnail, blog.BannerImage),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "pagination": page.Pagination})
}

func (s *Server) getBlog(c *gin.Context) {
	value, ok := pathSlug(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	blog, err := s.cms.GetBlogBySlug(c.Request.Context(), value)
	if err != nil {
		s.fail(c, err)
		return
	}
	href, _ := s.routes.BlogURL(blog.Slug)
	c.JSON(http.StatusOK, blogItem{
		Blog:         *blog,
		Href:         href,
		ThumbnailURL: s.cardImage(blog.Thumbnail, blog.BannerImage),
		ContentHTML:  s.renderBody(blog.Slug, blog.Content),
	})
}

func (s *Server) incrementBlogView(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.cms.IncrementViewCount(c.Request.Context(), "blogs", id)
	c.Status(http.StatusAccepted)
}

func (s *Server) listEvents(c *gin.Context) {
	page, err := s.cms.ListEvents(c.Request.Context(), listParams(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	items := make([]eventItem, 0, len(page.Items))
	for _, event := range page.Items {
		href, _ := s.routes.EventURL(event.Slug)
		items = append(items, eventItem{
			Event:        event,
			Href:         href,
			ThumbnailURL: s.cardImage(event.ThumbnailImage, event.FeaturedImage),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "pagination": page.Pagination})
}

func (s *Server) getEvent(c *gin.Context) {
	value, ok := pathSlug(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	event, err := s.cms.GetEventBySlug(c.Request.Context(), value)
	if err != nil {
		s.fail(c, err)
		return
	}
	href, _ := s.routes.EventURL(event.Slug)
	c.JSON(http.StatusOK, eventItem{
		Event:        *event,
		Href:         href,
		ThumbnailURL: s.cardImage(event.ThumbnailImage, event.FeaturedImage),
		ContentHTML:  s.renderBody(event.Slug, event.Content),
	})
}

func (s *Server) listCaseStudies(c *gin.Context) {
	page, err := s.cms.ListCaseStudies(c.Request.Context(), listParams(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	items := make([]caseStudyItem, 0, len(page.Items))
	for _, study := range page.Items {
		href, _ := s.routes.CaseStudyURL(study.Slug)
		items = append(items, caseStudyItem{
			CaseStudy:    study,
			Href:         href,
			ThumbnailURL: s.cardImage(study.Thumbnail, study.BannerImage),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "pagination": page.Pagination})
}

func (s *Server) getCaseStudy(c *gin.Context) {
	value, ok := pathSlug(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	study, err := s.cms.GetCaseStudyBySlug(c.Request.Context(), value)
	if err != nil {
		s.fail(c, err)
		return
	}
	href, _ := s.routes.CaseStudyURL(study.Slug)
	c.JSON(http.StatusOK, caseStudyItem{
		CaseStudy:    *study,
		Href:         href,
		ThumbnailURL: s.cardImage(study.Thumbnail, study.BannerImage),
		ContentHTML:  s.renderBody(study.Slug, study.Content),
	})
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.cms.ListCategories(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": categories})
}

func (s *Server) listTags(c *gin.Context) {
	tags, err := s.cms.ListTags(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": tags})
}

// institutionSections fans out to every sub-section concurrently. Each
// section is supplementary: a failed fetch degrades that section to null
// with a warning instead of failing the page.
func (s *Server) institutionSections(c *gin.Context) {
	value, ok := pathSlug(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	ctx := c.Request.Context()
	payload := make(map[string]any, len(sectionNames))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, name := range sectionNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			result, err := s.fetchSection(ctx, name, value)
			if err != nil {
				s.instLog.Warn("institution section degraded", "institution", value, "section", name, "error", err)
				result = nil
			}
			mu.Lock()
			payload[name] = result
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	c.JSON(http.StatusOK, payload)
}

var sectionNames = []string{
	"about",
	"program",
	"valueProposition",
	"achievements",
	"keyHighlights",
	"campusGallery",
	"faq",
	"testimonials",
	"partnerships",
}

func (s *Server) institutionSection(c *gin.Context) {
	value, ok := pathSlug(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	name := c.Param("section")
	known := false
	for _, candidate := range sectionNames {
		if candidate == name {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	result, err := s.fetchSection(c.Request.Context(), name, value)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// fetchSection returns the section as any so null sections serialize to
// JSON null, which is what tells the frontend to skip rendering.
func (s *Server) fetchSection(ctx context.Context, name, institutionSlug string) (any, error) {
	switch name {
	case "about":
		return nilable(s.cms.About(ctx, institutionSlug))
	case "program":
		return nilable(s.cms.Program(ctx, institutionSlug))
	case "valueProposition":
		return nilable(s.cms.ValueProposition(ctx, institutionSlug))
	case "achievements":
		return nilable(s.cms.Achievements(ctx, institutionSlug))
	case "keyHighlights":
		return nilable(s.cms.KeyHighlights(ctx, institutionSlug))
	case "campusGallery":
		return nilable(s.cms.CampusGallery(ctx, institutionSlug))
	case "faq":
		return nilable(s.cms.FAQ(ctx, institutionSlug))
	case "testimonials":
		return nilable(s.cms.Testimonials(ctx, institutionSlug))
	case "partnerships":
		return nilable(s.cms.Partnerships(ctx, institutionSlug))
	default:
		return nil, nil
	}
}

// nilable strips the concrete pointer type so a nil section marshals as
// JSON null instead of a typed nil.
func nilable[T any](value *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return value, nil
}

func (s *Server) submitComment(c *gin.Context) {
	var input client.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := s.cms.SubmitComment(c.Request.Context(), input); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) submitLead(c *gin.Context) {
	var input client.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := s.cms.SubmitLead(c.Request.Context(), input); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) submitCollaboration(c *gin.Context) {
	var input client.CollaborationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := s.cms.SubmitCollaboration(c.Request.Context(), input); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
