package catalog

import "strings"

// Item is one queryable loot entry, joined from a base table row and a loot
// table row sharing the same item id. Immutable once built.
type Item struct {
	ID       string
	Name     string
	Category string
	Subtype  string
	Rarity   string
	Tags     []string
}

// Normalized views used for comparisons; computed on demand.

func (i Item) CategoryNorm() string { return normalize(i.Category) }

func (i Item) RarityNorm() string { return normalize(i.Rarity) }

func (i Item) SubtypeNorm() string { return normalize(i.Subtype) }

// HasTag reports whether tag is a member of the item's tag set. Tags are
// normalized at parse time, so this is exact string equality.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseTags splits a comma separated tag cell into lowercase trimmed tokens.
// Empty tokens are dropped; duplicates are kept in cell order.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, strings.ToLower(part))
	}
	return tags
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
