package catalog

import (
	"sort"
	"strings"
)

// Filter holds up to four optional criteria. Zero-value fields are not
// tested against items.
type Filter struct {
	Rarity   string
	Category string
	Subtype  string
	Tags     []string
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.Rarity == "" && f.Category == "" && f.Subtype == "" && len(f.Tags) == 0
}

// Key is a canonical cache key for the filter. Tag order does not affect
// matching, so tags are sorted into a stable form.
func (f Filter) Key() string {
	tags := make([]string, len(f.Tags))
	for i, tag := range f.Tags {
		tags[i] = normalize(tag)
	}
	sort.Strings(tags)
	return strings.Join([]string{
		normalize(f.Rarity),
		normalize(f.Category),
		normalize(f.Subtype),
		strings.Join(tags, ","),
	}, "\x1f")
}

// SearchItems narrows items through each supplied criterion in turn: rarity,
// category, subtype, then tags. All criteria are conjunctive, so the pass
// order never changes the result set. Rarity and category match exactly
// after normalization, subtype by substring, and tags require every supplied
// token to be in the item's tag set. The input is not mutated; relative item
// order is preserved.
func SearchItems(items []Item, f Filter) []Item {
	filtered := make([]Item, len(items))
	copy(filtered, items)

	if f.Rarity != "" {
		want := normalize(f.Rarity)
		filtered = narrow(filtered, func(it Item) bool { return it.RarityNorm() == want })
	}
	if f.Category != "" {
		want := normalize(f.Category)
		filtered = narrow(filtered, func(it Item) bool { return it.CategoryNorm() == want })
	}
	if f.Subtype != "" {
		want := normalize(f.Subtype)
		filtered = narrow(filtered, func(it Item) bool { return strings.Contains(it.SubtypeNorm(), want) })
	}
	if len(f.Tags) > 0 {
		filtered = narrow(filtered, func(it Item) bool {
			for _, tag := range f.Tags {
				if !it.HasTag(tag) {
					return false
				}
			}
			return true
		})
	}
	return filtered
}

func narrow(items []Item, keep func(Item) bool) []Item {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
