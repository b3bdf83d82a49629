package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
)

func TestFormatItemLine(t *testing.T) {
	item := catalog.Item{Name: "Cloak", Category: "Armor", Subtype: "Cloak", Rarity: "Rare"}
	assert.Equal(t, "• **Cloak** (Armor — Cloak) — Rare", FormatItemLine(item))
}

func TestFormatItemLineNoSubtype(t *testing.T) {
	item := catalog.Item{Name: "Ring", Category: "Wondrous Item", Rarity: "Legendary"}
	assert.Equal(t, "• **Ring** (Wondrous Item) — Legendary", FormatItemLine(item))
}

func TestBuildFilterDescription(t *testing.T) {
	assert.Empty(t, BuildFilterDescription(catalog.Filter{}))

	desc := BuildFilterDescription(catalog.Filter{Rarity: "Rare", Tags: []string{"cursed", "rare"}})
	assert.Contains(t, desc, "Rarity: Rare")
	assert.Contains(t, desc, "Tags: cursed, rare")
}
