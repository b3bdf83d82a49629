package catalog

// Required columns per table. The base table supplies identity attributes,
// the loot table drop attributes; both share the item id join key.
var (
	RequiredBaseColumns = []string{"item_id", "name", "category", "subtype"}
	RequiredLootColumns = []string{"item_id", "rarity"}
)

// ValidateColumns confirms t carries every column in required. Presence is
// checked against the first row only; the schema is uniform across rows of
// one table. A table with no data rows fails outright since no columns can
// be inferred from it.
func ValidateColumns(source string, t *Table, required []string) error {
	if len(t.Rows) == 0 {
		return &EmptyTableError{Source: source}
	}
	first := t.Rows[0]
	var missing []string
	for _, col := range required {
		if _, ok := first[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Source: source, Columns: missing}
	}
	return nil
}
