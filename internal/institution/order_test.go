package institution

import "testing"

func TestSortOrderedMissingLast(t *testing.T) {
	one, two := 1, 2
	items := []KeyHighlight{
		{Title: "Zebra", Order: &two},
		{Title: "Apple"},
		{Title: "Mango", Order: &one},
		{Title: "Banana"},
	}

	sortOrdered(items,
		func(i KeyHighlight) *int { return i.Order },
		func(i KeyHighlight) string { return i.Title },
	)

	want := []string{"Mango", "Zebra", "Apple", "Banana"}
	for i, title := range want {
		if items[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, items[i].Title)
		}
	}
}

func TestSortOrderedTieBreaksOnLabel(t *testing.T) {
	one := 1
	items := []FAQItem{
		{Question: "Where is the campus?", Order: &one},
		{Question: "How do I apply?", Order: &one},
	}

	sortOrdered(items,
		func(i FAQItem) *int { return i.Order },
		func(i FAQItem) string { return i.Question },
	)

	if items[0].Question != "How do I apply?" {
		t.Fatalf("expected label tie-break, got %q first", items[0].Question)
	}
}

func TestSortOrderedCaseSensitiveTieBreak(t *testing.T) {
	items := []KeyHighlight{
		{Title: "alpha"},
		{Title: "Beta"},
	}
	sortOrdered(items,
		func(i KeyHighlight) *int { return i.Order },
		func(i KeyHighlight) string { return i.Title },
	)
	// Byte comparison puts uppercase first.
	if items[0].Title != "Beta" {
		t.Fatalf("expected case-sensitive comparison, got %q first", items[0].Title)
	}
}

func TestOrderAttr(t *testing.T) {
	if got := orderAttr(map[string]any{"order": float64(4)}); got == nil || *got != 4 {
		t.Fatalf("expected order 4, got %v", got)
	}
	if got := orderAttr(map[string]any{}); got != nil {
		t.Fatalf("expected nil for absent order, got %v", got)
	}
	if got := orderAttr(map[string]any{"order": "third"}); got != nil {
		t.Fatalf("expected nil for non-numeric order, got %v", got)
	}
}
