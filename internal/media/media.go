package media

import (
	"strings"

	"github.com/sonascale/go-content/internal/strapi"
)

// Format is one alternate rendition of an uploaded file. The CMS emits a bag
// of these (thumbnail/small/medium/large); only URL and dimensions are read.
type Format struct {
	URL    string  `json:"url"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

// Descriptor is the canonical representation of an uploaded file reference.
// A descriptor is always fully resolved; unresolvable media normalizes to
// nil, never to a partially populated value.
type Descriptor struct {
	ID              int               `json:"id"`
	URL             string            `json:"url"`
	Name            string            `json:"name"`
	Mime            string            `json:"mime"`
	Size            float64           `json:"size"`
	AlternativeText string            `json:"alternativeText,omitempty"`
	Caption         string            `json:"caption,omitempty"`
	Width           int               `json:"width,omitempty"`
	Height          int               `json:"height,omitempty"`
	Formats         map[string]Format `json:"formats,omitempty"`
}

// Normalize resolves a raw CMS media reference into a Descriptor. Already
// canonical descriptors pass through unchanged, raw maps are unwrapped one
// level of data/attributes nesting, and anything without a url or id
// normalizes to nil. Pure; no network access.
func Normalize(raw any) *Descriptor {
	switch value := raw.(type) {
	case nil:
		return nil
	case *Descriptor:
		return value
	case Descriptor:
		return &value
	case map[string]any:
		return fromMap(value)
	default:
		return nil
	}
}

func fromMap(raw map[string]any) *Descriptor {
	attrs := raw
	id, _ := strapi.IntAttr(attrs, "id")

	// Not canonical yet: unwrap the data/attributes envelope.
	if strapi.StringAttr(attrs, "url") == "" {
		record, ok := strapi.ResolveRecord(raw)
		if !ok {
			return nil
		}
		attrs = record.Attrs
		id = record.ID
	}

	url := strapi.StringAttr(attrs, "url")
	if url == "" && id == 0 {
		return nil
	}

	size, _ := strapi.FloatAttr(attrs, "size")
	width, _ := strapi.IntAttr(attrs, "width")
	height, _ := strapi.IntAttr(attrs, "height")

	return &Descriptor{
		ID:              id,
		URL:             url,
		Name:            strapi.StringAttr(attrs, "name"),
		Mime:            strapi.StringAttr(attrs, "mime"),
		Size:            size,
		AlternativeText: strapi.StringAttr(attrs, "alternativeText"),
		Caption:         strapi.StringAttr(attrs, "caption"),
		Width:           width,
		Height:          height,
		Formats:         normalizeFormats(attrs["formats"]),
	}
}

func normalizeFormats(raw any) map[string]Format {
	entries, ok := raw.(map[string]any)
	if !ok || len(entries) == 0 {
		return nil
	}
	formats := make(map[string]Format, len(entries))
	for name, entry := range entries {
		attrs, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		url := strapi.StringAttr(attrs, "url")
		if url == "" {
			continue
		}
		width, _ := strapi.IntAttr(attrs, "width")
		height, _ := strapi.IntAttr(attrs, "height")
		size, _ := strapi.FloatAttr(attrs, "size")
		formats[name] = Format{URL: url, Width: width, Height: height, Size: size}
	}
	if len(formats) == 0 {
		return nil
	}
	return formats
}

// Thumbnail returns the smallest rendition suitable for cards: the small
// format when present, then medium, then the original URL.
func (d *Descriptor) Thumbnail() string {
	if d == nil {
		return ""
	}
	for _, name := range []string{"small", "medium"} {
		if format, ok := d.Formats[name]; ok && format.URL != "" {
			return format.URL
		}
	}
	return d.URL
}

// AbsoluteURL prefixes a relative upload path with the CMS base URL.
// Absolute URLs pass through untouched.
func AbsoluteURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
