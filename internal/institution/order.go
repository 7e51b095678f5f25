package institution

import (
	"sort"

	"github.com/sonascale/go-content/internal/strapi"
)

const orderLast = int(^uint(0) >> 1)

// sortOrdered applies the uniform sub-section ordering policy: explicit
// order ascending with missing order sorted last, tie-broken by a
// case-sensitive comparison of the item's primary label. The sort is stable.
func sortOrdered[T any](items []T, order func(T) *int, label func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := orderValue(order(items[i])), orderValue(order(items[j]))
		if left != right {
			return left < right
		}
		return label(items[i]) < label(items[j])
	})
}

func orderValue(value *int) int {
	if value == nil {
		return orderLast
	}
	return *value
}

// orderAttr reads an optional order attribute; absence stays nil so the
// comparator can push the item last.
func orderAttr(attrs map[string]any) *int {
	if value, ok := strapi.IntAttr(attrs, "order"); ok {
		return &value
	}
	return nil
}
