package content

import "testing"

func rawBlog(t *testing.T) map[string]any {
	t.Helper()
	return map[string]any{
		"id":            float64(21),
		"documentId":    "doc-21",
		"title":         "AI in the Classroom",
		"slug":          "ai-in-the-classroom",
		"excerpt":       "How adaptive tooling changes teaching.",
		"content":       "# Heading\n\nBody copy.",
		"author":        map[string]any{"id": float64(2), "name": "Arjun Nair", "role": "Faculty"},
		"featured":      true,
		"viewCount":     float64(120),
		"showComments":  true,
		"publishedDate": "2026-05-10",
		"readTime":      "6 min",
		"bannerImage":   map[string]any{"id": float64(7), "url": "/uploads/banner.jpg"},
		"thumbnail":     map[string]any{"id": float64(8), "url": "/uploads/thumb.jpg"},
		"categories": map[string]any{"data": []any{
			map[string]any{"id": float64(1), "attributes": map[string]any{"name": "Teaching", "slug": "teaching", "color": " text-blue-600 "}},
		}},
		"tags": []any{
			map[string]any{"id": float64(4), "name": "AI", "slug": "ai"},
		},
		"relatedBlogs": map[string]any{"data": []any{
			map[string]any{
				"id": float64(22),
				"attributes": map[string]any{
					"title": "Robotics Lab Tour",
					"slug":  "robotics-lab-tour",
					// The CMS should never send nested related collections,
					// but when it does they must not survive normalization.
					"relatedBlogs": []any{map[string]any{"id": float64(23), "title": "Deep"}},
				},
			},
		}},
	}
}

func TestBlogNormalize(t *testing.T) {
	blog := NewBlogNormalizer().Normalize(rawBlog(t))
	if blog == nil {
		t.Fatal("expected normalized blog")
	}
	if blog.ID != 21 || blog.Slug != "ai-in-the-classroom" {
		t.Fatalf("unexpected identity %d %q", blog.ID, blog.Slug)
	}
	if blog.Content == nil || blog.Content.Markdown == "" {
		t.Fatalf("expected markdown body, got %+v", blog.Content)
	}
	if blog.Author == nil || blog.Author.Name != "Arjun Nair" {
		t.Fatalf("expected object author, got %+v", blog.Author)
	}
	if !blog.Featured || blog.ViewCount != 120 {
		t.Fatalf("unexpected flags %v %d", blog.Featured, blog.ViewCount)
	}
	if len(blog.Categories) != 1 || blog.Categories[0].Color != "text-blue-600" {
		t.Fatalf("expected trimmed category color, got %+v", blog.Categories)
	}
	if len(blog.Tags) != 1 || blog.Tags[0].Slug != "ai" {
		t.Fatalf("unexpected tags %+v", blog.Tags)
	}
}

func TestBlogNormalizeRelatedDepthBound(t *testing.T) {
	blog := NewBlogNormalizer().Normalize(rawBlog(t))
	if blog == nil {
		t.Fatal("expected normalized blog")
	}
	if len(blog.RelatedBlogs) != 1 {
		t.Fatalf("expected one related entry, got %d", len(blog.RelatedBlogs))
	}
	related := blog.RelatedBlogs[0]
	if related.Title != "Robotics Lab Tour" {
		t.Fatalf("unexpected related entry %+v", related)
	}
	// BlogLeaf has no related collection at all; depth one is structural.
}

func TestBlogNormalizeTotality(t *testing.T) {
	normalizer := NewBlogNormalizer()

	if got := normalizer.Normalize(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %+v", got)
	}
	if got := normalizer.Normalize("scalar"); got != nil {
		t.Fatalf("expected nil for scalar input, got %+v", got)
	}
	if got := normalizer.Normalize(map[string]any{"title": "no id"}); got != nil {
		t.Fatalf("expected nil without numeric id, got %+v", got)
	}

	// Malformed optional fields default rather than fail.
	blog := normalizer.Normalize(map[string]any{
		"id":          float64(9),
		"title":       "Minimal",
		"content":     float64(5),
		"author":      float64(1),
		"bannerImage": "nope",
		"categories":  "nope",
		"viewCount":   "many",
	})
	if blog == nil {
		t.Fatal("expected record with id to normalize")
	}
	if blog.Content != nil {
		t.Fatalf("expected malformed body to be nil, got %+v", blog.Content)
	}
	if blog.Author == nil || blog.Author.Name != DefaultBlogAuthor {
		t.Fatalf("expected fallback author, got %+v", blog.Author)
	}
	if blog.BannerImage != nil {
		t.Fatalf("expected malformed media to be nil, got %+v", blog.BannerImage)
	}
	if len(blog.Categories) != 0 || blog.ViewCount != 0 {
		t.Fatalf("expected malformed relations to default, got %+v", blog)
	}
	if blog.RelatedBlogs == nil {
		t.Fatal("expected related collection to be empty, not nil")
	}
	if blog.MetaTitle != "" || blog.Thumbnail != nil {
		t.Fatalf("blogs carry no meta or thumbnail fallbacks, got %+v", blog)
	}
}

func TestEventNormalizeStringAuthor(t *testing.T) {
	event := NewEventNormalizer().Normalize(map[string]any{
		"id":            float64(5),
		"title":         "Tech Symposium",
		"slug":          "tech-symposium",
		"author":        "Guest Curator",
		"eventDate":     "2026-09-20",
		"eventLocation": "Main Auditorium",
	})
	if event == nil {
		t.Fatal("expected normalized event")
	}
	if event.Author == nil || event.Author.Name != "Guest Curator" {
		t.Fatalf("expected free-text author, got %+v", event.Author)
	}
	if event.EventDate != "2026-09-20" || event.EventLocation != "Main Auditorium" {
		t.Fatalf("unexpected event fields %+v", event)
	}
}

func TestEventNormalizeDefaultAuthor(t *testing.T) {
	event := NewEventNormalizer().Normalize(map[string]any{
		"id":    float64(6),
		"title": "Open House",
	})
	if event == nil {
		t.Fatal("expected normalized event")
	}
	if event.Author == nil || event.Author.Name != DefaultEventAuthor {
		t.Fatalf("expected SCALE fallback author, got %+v", event.Author)
	}
	if event.RelatedEvents == nil || len(event.RelatedEvents) != 0 {
		t.Fatalf("expected empty related slice, got %+v", event.RelatedEvents)
	}
}

func TestCaseStudyFallbacks(t *testing.T) {
	study := NewCaseStudyNormalizer().Normalize(map[string]any{
		"id":          float64(31),
		"title":       "Smart Campus Rollout",
		"excerpt":     "A year-long IoT deployment.",
		"bannerImage": map[string]any{"id": float64(2), "url": "/uploads/rollout.jpg"},
	})
	if study == nil {
		t.Fatal("expected normalized case study")
	}
	if study.MetaTitle != "Smart Campus Rollout" {
		t.Fatalf("expected meta title to derive from title, got %q", study.MetaTitle)
	}
	if study.MetaDescription != "A year-long IoT deployment." {
		t.Fatalf("expected meta description to derive from excerpt, got %q", study.MetaDescription)
	}
	if study.Thumbnail == nil || study.Thumbnail.URL != "/uploads/rollout.jpg" {
		t.Fatalf("expected thumbnail to fall back to banner, got %+v", study.Thumbnail)
	}
}

func TestCaseStudyRelatedDepthBound(t *testing.T) {
	study := NewCaseStudyNormalizer().Normalize(map[string]any{
		"id":    float64(40),
		"title": "Parent",
		"relatedCaseStudies": []any{
			map[string]any{
				"id":    float64(41),
				"title": "Child",
				"relatedCaseStudies": []any{
					map[string]any{"id": float64(42), "title": "Grandchild"},
				},
			},
		},
	})
	if study == nil {
		t.Fatal("expected normalized case study")
	}
	if len(study.RelatedCaseStudies) != 1 {
		t.Fatalf("expected one related entry, got %d", len(study.RelatedCaseStudies))
	}
	// Leaves carry no related collection, so the grandchild cannot appear.
	if study.RelatedCaseStudies[0].Title != "Child" {
		t.Fatalf("unexpected related entry %+v", study.RelatedCaseStudies[0])
	}
}

func TestCaseStudyExplicitMetaWins(t *testing.T) {
	study := NewCaseStudyNormalizer().Normalize(map[string]any{
		"id":              float64(32),
		"title":           "Fintech Incubator",
		"metaTitle":       "Fintech Incubator Case Study",
		"metaDescription": "Outcomes of the incubator cohort.",
		"thumbnail":       map[string]any{"id": float64(3), "url": "/uploads/thumb.jpg"},
		"bannerImage":     map[string]any{"id": float64(4), "url": "/uploads/banner.jpg"},
	})
	if study == nil {
		t.Fatal("expected normalized case study")
	}
	if study.MetaTitle != "Fintech Incubator Case Study" {
		t.Fatalf("expected explicit meta title, got %q", study.MetaTitle)
	}
	if study.Thumbnail.URL != "/uploads/thumb.jpg" {
		t.Fatalf("expected explicit thumbnail, got %q", study.Thumbnail.URL)
	}
}
