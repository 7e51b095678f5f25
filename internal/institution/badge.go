package institution

import (
	"github.com/sonascale/go-content/internal/content"
	"github.com/sonascale/go-content/internal/strapi"
)

// IconBadge is the shared icon component referenced by bullets, value
// propositions, highlights, and recognitions. A badge without a resolvable
// icon name normalizes to nil; a badge never carries an empty IconName.
type IconBadge struct {
	ID              int    `json:"id"`
	IconName        string `json:"iconName"`
	DisplayName     string `json:"displayName,omitempty"`
	IconColor       string `json:"iconColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// NormalizeIconBadge resolves a raw icon relation into a badge or nil.
func NormalizeIconBadge(raw any) *IconBadge {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	iconName := strapi.StringAttr(record.Attrs, "iconName")
	if iconName == "" {
		return nil
	}
	return &IconBadge{
		ID:              record.ID,
		IconName:        iconName,
		DisplayName:     strapi.StringAttr(record.Attrs, "displayName"),
		IconColor:       content.NormalizeColor(record.Attrs["iconColor"]),
		BackgroundColor: content.NormalizeColor(record.Attrs["backgroundColor"]),
	}
}
