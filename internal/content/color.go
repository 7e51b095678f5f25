package content

import "strings"

// NormalizeColor trims a raw color value. The result is either a CSS color
// or a design-system class token (text-* prefix); no semantic validation is
// applied beyond trimming, and non-string input yields the empty string.
func NormalizeColor(raw any) string {
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
