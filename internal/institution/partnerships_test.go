package institution

import "testing"

func TestNormalizePartnerships(t *testing.T) {
	raw := map[string]any{
		"id":              float64(7),
		"title":           "Industry Partners",
		"backgroundImage": map[string]any{"id": float64(1), "url": "/uploads/wall.jpg"},
		"partnerships": []any{
			map[string]any{
				"id":          float64(11),
				"companyName": "Nexlify",
				"companyLogo": map[string]any{"id": float64(2), "url": "/uploads/nexlify.svg"},
				"websiteUrl":  "https://nexlify.example.com",
				"isExternal":  true,
			},
			map[string]any{
				"id":          float64(12),
				"companyName": "LogolessCo",
			},
		},
	}

	section := NormalizePartnerships(raw)
	if section == nil {
		t.Fatal("expected partnerships section")
	}
	if section.BackgroundImage == nil {
		t.Fatal("expected background image")
	}
	if len(section.Items) != 1 {
		t.Fatalf("expected logoless partner dropped, got %d items", len(section.Items))
	}
	item := section.Items[0]
	if item.CompanyName != "Nexlify" || !item.IsExternal {
		t.Fatalf("unexpected partner %+v", item)
	}
}

func TestPartnershipsRequireBackgroundImage(t *testing.T) {
	raw := map[string]any{
		"id": float64(7),
		"partnerships": []any{
			map[string]any{
				"id":          float64(11),
				"companyName": "Nexlify",
				"companyLogo": map[string]any{"id": float64(2), "url": "/uploads/nexlify.svg"},
			},
		},
	}
	if section := NormalizePartnerships(raw); section != nil {
		t.Fatalf("expected nil section without background image, got %+v", section)
	}
}

func TestPartnershipsWithEmptyListSurvive(t *testing.T) {
	raw := map[string]any{
		"id":              float64(7),
		"title":           "Industry Partners",
		"backgroundImage": map[string]any{"id": float64(1), "url": "/uploads/wall.jpg"},
	}
	section := NormalizePartnerships(raw)
	if section == nil {
		t.Fatal("expected section with background but no partners")
	}
	if len(section.Items) != 0 {
		t.Fatalf("expected empty items, got %+v", section.Items)
	}
}
