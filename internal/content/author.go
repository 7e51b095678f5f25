package content

import (
	"strings"

	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// Default author literals applied when no source resolves a name. Events use
// the SCALE brand; editorial content uses Sona.
const (
	DefaultBlogAuthor  = "Sona Author"
	DefaultEventAuthor = "SCALE Author"
)

// NormalizerConfig carries the per-entity knobs of the shared normalizer
// core. Keeping the fallback literal here lets the same resolver serve every
// entity type without code edits.
type NormalizerConfig struct {
	DefaultAuthorName string
}

// ResolveAuthor collapses the polymorphic author field into a single Author.
// Candidate sources are tried in order and the first that yields a name
// wins: a bare display-name string, a nested author object, then author
// fields flattened onto the parent record. When no source resolves a name
// the configured literal applies; without one the result is nil. The
// resolver never returns an Author whose name is blank.
func (c NormalizerConfig) ResolveAuthor(raw any, parent map[string]any) *Author {
	resolvers := []func() *Author{
		func() *Author { return authorFromString(raw) },
		func() *Author { return authorFromObject(raw) },
		func() *Author { return authorFromRecord(parent) },
	}
	for _, resolve := range resolvers {
		if author := resolve(); author != nil {
			return author
		}
	}
	if name := strings.TrimSpace(c.DefaultAuthorName); name != "" {
		return &Author{Name: name}
	}
	return nil
}

// authorFromString treats the raw value as a free-text display name, a shape
// events legitimately use.
func authorFromString(raw any) *Author {
	value, ok := raw.(string)
	if !ok {
		return nil
	}
	name := strings.TrimSpace(value)
	if name == "" {
		return nil
	}
	return &Author{Name: name}
}

// authorFromObject resolves a structured author relation, unwrapping any
// data/attributes envelope first.
func authorFromObject(raw any) *Author {
	attrs, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if record, resolved := strapi.ResolveRecord(raw); resolved {
		attrs = record.Attrs
	}
	return authorFromRecord(attrs)
}

// authorFromRecord performs the dual-key field lookup against an attribute
// map. It covers both a bare author object and CMS schemas that flatten the
// author fields onto the content record itself.
func authorFromRecord(attrs map[string]any) *Author {
	if attrs == nil {
		return nil
	}
	name := strings.TrimSpace(strapi.StringAttr(attrs, "name", "authorName"))
	if name == "" {
		return nil
	}
	var image *media.Descriptor
	if raw, ok := attrs["image"]; ok {
		image = media.Normalize(raw)
	}
	if image == nil {
		if raw, ok := attrs["authorImage"]; ok {
			image = media.Normalize(raw)
		}
	}
	return &Author{
		Name:     name,
		Role:     strapi.StringAttr(attrs, "role", "authorRole"),
		Bio:      strapi.StringAttr(attrs, "bio", "authorBio"),
		Image:    image,
		LinkedIn: strapi.StringAttr(attrs, "linkedin", "authorLinkedin"),
		Twitter:  strapi.StringAttr(attrs, "twitter", "authorTwitter"),
		Email:    strapi.StringAttr(attrs, "email", "authorEmail"),
	}
}
