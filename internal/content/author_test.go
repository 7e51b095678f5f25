package content

import "testing"

func TestResolveAuthorFromString(t *testing.T) {
	cfg := NormalizerConfig{DefaultAuthorName: DefaultEventAuthor}

	author := cfg.ResolveAuthor("  Dr. Meena Iyer  ", nil)
	if author == nil {
		t.Fatal("expected author from display-name string")
	}
	if author.Name != "Dr. Meena Iyer" {
		t.Fatalf("expected trimmed name, got %q", author.Name)
	}
}

func TestResolveAuthorFromObject(t *testing.T) {
	cfg := NormalizerConfig{DefaultAuthorName: DefaultBlogAuthor}

	raw := map[string]any{
		"data": map[string]any{
			"id": float64(3),
			"attributes": map[string]any{
				"name":     "Arjun Nair",
				"role":     "Program Director",
				"linkedin": "https://linkedin.com/in/arjun-nair",
				"image":    map[string]any{"id": float64(9), "url": "/uploads/arjun.jpg"},
			},
		},
	}

	author := cfg.ResolveAuthor(raw, nil)
	if author == nil {
		t.Fatal("expected author from enveloped object")
	}
	if author.Name != "Arjun Nair" || author.Role != "Program Director" {
		t.Fatalf("unexpected author %+v", author)
	}
	if author.Image == nil || author.Image.URL != "/uploads/arjun.jpg" {
		t.Fatalf("expected normalized image, got %+v", author.Image)
	}
}

func TestResolveAuthorFromFlattenedParent(t *testing.T) {
	cfg := NormalizerConfig{DefaultAuthorName: DefaultBlogAuthor}

	parent := map[string]any{
		"id":          float64(44),
		"title":       "Placement Season Recap",
		"authorName":  "Kavya Menon",
		"authorRole":  "Editor",
		"authorImage": map[string]any{"id": float64(5), "url": "/uploads/kavya.jpg"},
	}

	author := cfg.ResolveAuthor(nil, parent)
	if author == nil {
		t.Fatal("expected author from flattened parent fields")
	}
	if author.Name != "Kavya Menon" {
		t.Fatalf("expected flattened name, got %q", author.Name)
	}
	if author.Role != "Editor" {
		t.Fatalf("expected flattened role, got %q", author.Role)
	}
	if author.Image == nil || author.Image.URL != "/uploads/kavya.jpg" {
		t.Fatalf("expected flattened image, got %+v", author.Image)
	}
}

func TestResolveAuthorPrecedence(t *testing.T) {
	cfg := NormalizerConfig{DefaultAuthorName: DefaultBlogAuthor}

	parent := map[string]any{"authorName": "Parent Author"}
	author := cfg.ResolveAuthor("Direct Author", parent)
	if author == nil || author.Name != "Direct Author" {
		t.Fatalf("expected string source to win, got %+v", author)
	}

	object := map[string]any{"id": float64(1), "name": "Object Author"}
	author = cfg.ResolveAuthor(object, parent)
	if author == nil || author.Name != "Object Author" {
		t.Fatalf("expected object source to win over parent, got %+v", author)
	}
}

func TestResolveAuthorDefaultLiteral(t *testing.T) {
	cfg := NormalizerConfig{DefaultAuthorName: DefaultEventAuthor}

	author := cfg.ResolveAuthor(nil, map[string]any{"title": "no author fields"})
	if author == nil {
		t.Fatal("expected fallback author")
	}
	if author.Name != DefaultEventAuthor {
		t.Fatalf("expected fallback literal, got %q", author.Name)
	}

	// A blank string or nameless object must not short-circuit the fallback.
	author = cfg.ResolveAuthor("   ", nil)
	if author == nil || author.Name != DefaultEventAuthor {
		t.Fatalf("expected fallback after blank string, got %+v", author)
	}
	author = cfg.ResolveAuthor(map[string]any{"id": float64(2), "role": "Ghost"}, nil)
	if author == nil || author.Name != DefaultEventAuthor {
		t.Fatalf("expected fallback after nameless object, got %+v", author)
	}
}

func TestResolveAuthorWithoutDefault(t *testing.T) {
	cfg := NormalizerConfig{}
	if author := cfg.ResolveAuthor(nil, nil); author != nil {
		t.Fatalf("expected nil without sources or fallback, got %+v", author)
	}
}
