package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
)

func tableWith(cols []string, cells ...[]string) *catalog.Table {
	t := &catalog.Table{Columns: cols}
	for _, record := range cells {
		row := make(catalog.Row, len(cols))
		for i, col := range cols {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestValidateColumns(t *testing.T) {
	table := tableWith(
		[]string{"item_id", "name", "category", "subtype"},
		[]string{"1", "Cloak", "Armor", "Cloak"},
	)

	assert.NoError(t, catalog.ValidateColumns("base.csv", table, catalog.RequiredBaseColumns))
}

func TestValidateColumnsEmptyTable(t *testing.T) {
	table := tableWith([]string{"item_id", "rarity"})

	err := catalog.ValidateColumns("loot.csv", table, catalog.RequiredLootColumns)

	var empty *catalog.EmptyTableError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "loot.csv", empty.Source)
}

func TestValidateColumnsMissingSorted(t *testing.T) {
	table := tableWith(
		[]string{"item_id"},
		[]string{"1"},
	)

	err := catalog.ValidateColumns("base.csv", table, catalog.RequiredBaseColumns)

	var missing *catalog.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"name", "category", "subtype"}, missing.Columns)
	// Message enumerates every missing column in sorted order, in one report.
	assert.Contains(t, missing.Error(), "category, name, subtype")
}
