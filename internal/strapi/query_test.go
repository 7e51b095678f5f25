package strapi

import (
	"strings"
	"testing"
)

func TestQueryEncodeOrdering(t *testing.T) {
	query := Query{
		Fields:   []string{"title", "slug"},
		Populate: []Populate{PopulateMedia("thumbnail")},
		Filters:  (&Filters{}).Eq("ai-in-education", "slug"),
		Sort:     []string{"publishedDate:desc", "publishedAt:desc"},
		Page:     2,
		PageSize: 9,
	}

	got := query.Encode()
	want := "populate[thumbnail][fields][0]=url" +
		"&populate[thumbnail][fields][1]=alternativeText" +
		"&populate[thumbnail][fields][2]=width" +
		"&populate[thumbnail][fields][3]=height" +
		"&populate[thumbnail][fields][4]=mime" +
		"&fields[0]=title" +
		"&fields[1]=slug" +
		"&filters[slug][$eq]=ai-in-education" +
		"&sort[0]=publishedDate%3Adesc" +
		"&sort[1]=publishedAt%3Adesc" +
		"&pagination[page]=2" +
		"&pagination[pageSize]=9"
	if got != want {
		t.Fatalf("encode mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestQueryEncodeDeterministic(t *testing.T) {
	build := func() Query {
		return Query{
			Fields:   []string{"title"},
			Populate: []Populate{PopulateMedia("bannerImage"), {Relation: "categories", Fields: []string{"name", "slug"}}},
			Filters:  ContentFilters{CategorySlug: "research", Search: "robotics"}.Build(),
			Sort:     []string{"eventDate:desc"},
			Page:     1,
			PageSize: 10,
		}
	}

	first := build().Encode()
	for i := 0; i < 50; i++ {
		if again := build().Encode(); again != first {
			t.Fatalf("expected identical encodings, run %d diverged:\n%s\n%s", i, first, again)
		}
	}
}

func TestQueryEncodeEscapesValuesOnly(t *testing.T) {
	query := Query{
		Filters: (&Filters{}).ContainsI("AI & robotics", "title"),
	}
	got := query.Encode()
	if !strings.Contains(got, "filters[title][$containsi]=AI+%26+robotics") {
		t.Fatalf("expected escaped value with literal bracket key, got %s", got)
	}
	if strings.Contains(got, "%5B") {
		t.Fatalf("expected keys to keep literal brackets, got %s", got)
	}
}

func TestQueryEncodeOmitsAbsentComponents(t *testing.T) {
	if got := (Query{}).Encode(); got != "" {
		t.Fatalf("expected empty query to encode empty, got %q", got)
	}

	query := Query{Sort: []string{"name:asc"}}
	if got := query.Encode(); got != "sort[0]=name%3Aasc" {
		t.Fatalf("expected lone sort component, got %q", got)
	}
}

func TestPopulateNestedRelations(t *testing.T) {
	query := Query{
		Populate: []Populate{
			{
				Relation: "columns",
				Nested:   []Populate{PopulateMedia("images")},
			},
		},
	}
	got := query.Encode()
	if !strings.Contains(got, "populate[columns][populate][images][fields][0]=url") {
		t.Fatalf("expected nested populate path, got %s", got)
	}
}

func TestPopulateWithoutFieldsIsBoolean(t *testing.T) {
	query := Query{Populate: []Populate{{Relation: "tags"}}}
	if got := query.Encode(); got != "populate[tags]=true" {
		t.Fatalf("expected boolean populate, got %q", got)
	}
}
