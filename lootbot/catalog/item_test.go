package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "cursed", want: []string{"cursed"}},
		{name: "lowercased and trimmed", raw: " Cursed , RARE ", want: []string{"cursed", "rare"}},
		{name: "empty tokens dropped", raw: "cursed,,  ,rare", want: []string{"cursed", "rare"}},
		{name: "duplicates kept in order", raw: "rare,cursed,rare", want: []string{"rare", "cursed", "rare"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseTags(tt.raw))
		})
	}
}

func TestItemNormalizedViews(t *testing.T) {
	item := catalog.Item{
		Category: " Wondrous Item ",
		Subtype:  "Long Sword",
		Rarity:   " Very Rare",
	}

	assert.Equal(t, "wondrous item", item.CategoryNorm())
	assert.Equal(t, "long sword", item.SubtypeNorm())
	assert.Equal(t, "very rare", item.RarityNorm())
}

func TestItemHasTag(t *testing.T) {
	item := catalog.Item{Tags: []string{"cursed", "rare"}}

	assert.True(t, item.HasTag("cursed"))
	assert.False(t, item.HasTag("curse"))
	assert.False(t, catalog.Item{}.HasTag("cursed"))
}
