package option

import "github.com/samber/lo"

// First returns the first item matching pred.
func First[T any](items []T, pred func(T) bool) (T, bool) {
	return lo.Find(items, pred)
}

// Filter keeps the items matching pred.
func Filter[T any](items []T, pred func(T) bool) []T {
	return lo.Filter(items, func(item T, _ int) bool { return pred(item) })
}

// Distinct drops items whose key was already seen, keeping the first.
func Distinct[T any, K comparable](items []T, key func(T) K) []T {
	return lo.UniqBy(items, key)
}

// GroupBy buckets items by key.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	return lo.GroupBy(items, key)
}

// Section is a labelled run of options, as rendered by an option group.
type Section[T any] struct {
	Label string
	Items []T
}

// Sections groups items by label, keeping first-seen label order.
func Sections[T any](items []T, label func(T) string) []Section[T] {
	groups := lo.GroupBy(items, label)
	order := lo.Uniq(lo.Map(items, func(item T, _ int) string { return label(item) }))
	return lo.Map(order, func(l string, _ int) Section[T] {
		return Section[T]{Label: l, Items: groups[l]}
	})
}

// IDs maps items to their ids.
func IDs[T any, K any](items []T, id func(T) K) []K {
	return lo.Map(items, func(item T, _ int) K { return id(item) })
}

// SymmetricDifference returns the keys present in exactly one of a and b.
func SymmetricDifference[K comparable](a, b []K) []K {
	left, right := lo.Difference(a, b)
	return append(left, right...)
}
