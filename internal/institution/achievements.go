package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// AchievementCard is one ordered achievement stat card.
type AchievementCard struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Value       string     `json:"value,omitempty"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Icon        *IconBadge `json:"icon"`
}

// RecognitionCard is one ordered award or accreditation card.
type RecognitionCard struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Image       *media.Descriptor `json:"image"`
	Icon        *IconBadge        `json:"icon"`
}

// Achievements groups the achievement and recognition cards.
type Achievements struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Cards        []AchievementCard `json:"cards"`
	Recognitions []RecognitionCard `json:"recognitions"`
}

// NormalizeAchievements resolves the achievements section with both card
// collections normalized and sorted.
func NormalizeAchievements(raw any) *Achievements {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	cards := make([]AchievementCard, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["cards"]) {
		if card := normalizeAchievementCard(element); card != nil {
			cards = append(cards, *card)
		}
	}
	sortOrdered(cards,
		func(c AchievementCard) *int { return c.Order },
		func(c AchievementCard) string { return c.Title },
	)

	recognitions := make([]RecognitionCard, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["recognitions"]) {
		if card := normalizeRecognitionCard(element); card != nil {
			recognitions = append(recognitions, *card)
		}
	}
	sortOrdered(recognitions,
		func(c RecognitionCard) *int { return c.Order },
		func(c RecognitionCard) string { return c.Title },
	)

	return &Achievements{
		ID:           record.ID,
		Title:        strapi.StringAttr(record.Attrs, "title"),
		Subtitle:     strapi.StringAttr(record.Attrs, "subtitle"),
		Cards:        cards,
		Recognitions: recognitions,
	}
}

func normalizeAchievementCard(raw any) *AchievementCard {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &AchievementCard{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Value:       strapi.StringAttr(record.Attrs, "value"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Order:       orderAttr(record.Attrs),
		Icon:        NormalizeIconBadge(record.Attrs["icon"]),
	}
}

func normalizeRecognitionCard(raw any) *RecognitionCard {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &RecognitionCard{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Order:       orderAttr(record.Attrs),
		Image:       media.Normalize(record.Attrs["image"]),
		Icon:        NormalizeIconBadge(record.Attrs["icon"]),
	}
}
