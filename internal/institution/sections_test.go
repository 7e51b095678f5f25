package institution

import (
	"strings"
	"testing"
)

func TestNormalizeAbout(t *testing.T) {
	about := NormalizeAbout(map[string]any{
		"id":          float64(1),
		"title":       "About SCALE",
		"subtitle":    "A decade of applied learning",
		"description": "Founded to bridge industry and academia.",
		"image":       map[string]any{"id": float64(5), "url": "/uploads/about.jpg"},
		"videoUrl":    "https://video.example.com/tour",
	})
	if about == nil {
		t.Fatal("expected about section")
	}
	if about.Title != "About SCALE" || about.VideoURL == "" {
		t.Fatalf("unexpected about %+v", about)
	}
	if about.Image == nil || about.Image.URL != "/uploads/about.jpg" {
		t.Fatalf("expected normalized image, got %+v", about.Image)
	}

	if got := NormalizeAbout("scalar"); got != nil {
		t.Fatalf("expected nil for unresolvable input, got %+v", got)
	}
}

func TestNormalizeProgramSortsSections(t *testing.T) {
	program := NormalizeProgram(map[string]any{
		"id":    float64(2),
		"title": "PGDM Program",
		"sections": []any{
			map[string]any{"id": float64(1), "title": "Electives", "order": float64(3)},
			map[string]any{"id": float64(2), "title": "Core Courses", "order": float64(1)},
			map[string]any{"id": float64(3), "title": "Capstone"},
		},
	})
	if program == nil {
		t.Fatal("expected program section")
	}
	titles := make([]string, 0, len(program.Sections))
	for _, section := range program.Sections {
		titles = append(titles, section.Title)
	}
	if got := strings.Join(titles, ","); got != "Core Courses,Electives,Capstone" {
		t.Fatalf("unexpected section order %s", got)
	}
}

func TestNormalizeValueProposition(t *testing.T) {
	section := NormalizeValueProposition(map[string]any{
		"id":    float64(3),
		"title": "Why SCALE",
		"propositions": []any{
			map[string]any{
				"id":    float64(1),
				"title": "Industry Mentors",
				"icon": map[string]any{
					"id":        float64(9),
					"iconName":  "users",
					"iconColor": " text-sky-500 ",
				},
			},
		},
	})
	if section == nil {
		t.Fatal("expected value proposition")
	}
	if len(section.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(section.Items))
	}
	icon := section.Items[0].Icon
	if icon == nil || icon.IconName != "users" {
		t.Fatalf("expected icon badge, got %+v", icon)
	}
	if icon.IconColor != "text-sky-500" {
		t.Fatalf("expected trimmed icon color, got %q", icon.IconColor)
	}
}

func TestNormalizeIconBadgeRequiresName(t *testing.T) {
	if badge := NormalizeIconBadge(map[string]any{"id": float64(1), "displayName": "Ghost"}); badge != nil {
		t.Fatalf("expected nil badge without icon name, got %+v", badge)
	}
	if badge := NormalizeIconBadge(nil); badge != nil {
		t.Fatalf("expected nil badge for nil input, got %+v", badge)
	}
}

func TestNormalizeAchievements(t *testing.T) {
	section := NormalizeAchievements(map[string]any{
		"id":    float64(4),
		"title": "Milestones",
		"cards": []any{
			map[string]any{"id": float64(1), "title": "Placements", "value": "96%", "order": float64(2)},
			map[string]any{"id": float64(2), "title": "Alumni", "value": "12k", "order": float64(1)},
		},
		"recognitions": []any{
			map[string]any{"id": float64(3), "title": "NAAC A+", "image": map[string]any{"id": float64(7), "url": "/uploads/naac.png"}},
		},
	})
	if section == nil {
		t.Fatal("expected achievements section")
	}
	if section.Cards[0].Title != "Alumni" {
		t.Fatalf("expected cards sorted by order, got %+v", section.Cards)
	}
	if len(section.Recognitions) != 1 || section.Recognitions[0].Image == nil {
		t.Fatalf("unexpected recognitions %+v", section.Recognitions)
	}
}

func TestNormalizeKeyHighlights(t *testing.T) {
	section := NormalizeKeyHighlights(map[string]any{
		"id": float64(5),
		"highlights": []any{
			map[string]any{"id": float64(1), "title": "Global Immersion"},
			"not a record",
		},
	})
	if section == nil {
		t.Fatal("expected highlights section")
	}
	if len(section.Items) != 1 {
		t.Fatalf("expected unresolvable item dropped, got %d", len(section.Items))
	}
}

func TestNormalizeTestimonialsKeepUpstreamOrder(t *testing.T) {
	section := NormalizeTestimonials(map[string]any{
		"id":    float64(6),
		"title": "What Students Say",
		"testimonials": []any{
			map[string]any{"id": float64(2), "name": "Zara", "quote": "Transformative.", "rating": float64(5)},
			map[string]any{"id": float64(1), "name": "Aman", "quote": "Hands-on from day one."},
		},
	})
	if section == nil {
		t.Fatal("expected testimonials section")
	}
	if len(section.Items) != 2 || section.Items[0].Name != "Zara" {
		t.Fatalf("expected upstream order preserved, got %+v", section.Items)
	}
	if section.Items[0].Rating != 5 {
		t.Fatalf("expected rating read, got %+v", section.Items[0])
	}
}

func TestSectionQueriesFilterByInstitution(t *testing.T) {
	for name, query := range map[string]string{
		"about":        AboutQuery("scale-chennai"),
		"program":      ProgramQuery("scale-chennai"),
		"valueProp":    ValuePropositionQuery("scale-chennai"),
		"achievements": AchievementsQuery("scale-chennai"),
		"highlights":   KeyHighlightsQuery("scale-chennai"),
		"gallery":      CampusGalleryQuery("scale-chennai"),
		"faq":          FAQQuery("scale-chennai"),
		"testimonials": TestimonialsQuery("scale-chennai"),
		"partnerships": PartnershipsQuery("scale-chennai"),
	} {
		if !strings.Contains(query, "filters[institution][slug][$eq]=scale-chennai") {
			t.Fatalf("%s: expected institution filter in %s", name, query)
		}
	}

	gallery := CampusGalleryQuery("scale-chennai")
	if !strings.Contains(gallery, "populate[columns][populate][images][fields][0]=url") {
		t.Fatalf("expected nested image population, got %s", gallery)
	}

	program := ProgramQuery("scale-chennai")
	if !strings.Contains(program, "populate[sections][populate][icon][fields][0]=iconName") {
		t.Fatalf("expected icon population, got %s", program)
	}
}
