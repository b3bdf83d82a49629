package catalog

// idColumn is the join key shared by both tables.
const idColumn = "item_id"

// tagColumnCandidates is checked in order against the union of both tables'
// columns; the first name found wins for the whole load.
var tagColumnCandidates = []string{"tags", "tag", "item_tags"}

// BuildItems joins the base and loot tables on item_id and returns the
// catalog in loot-row order, plus whether a tag column was resolved. Both
// tables must already be validated.
//
// The build is all-or-nothing: a loot id with no base row fails the whole
// catalog. Missing ids are collected across all rows before the error is
// raised so one report covers every bad reference. Base rows with no loot
// entry are irrelevant to lookup and skipped without error; duplicate base
// ids keep the last row seen.
func BuildItems(base, loot *Table) ([]Item, bool, error) {
	baseByID := make(map[string]Row, len(base.Rows))
	for _, row := range base.Rows {
		baseByID[row[idColumn]] = row
	}

	tagColumn := resolveTagColumn(base, loot)

	items := make([]Item, 0, len(loot.Rows))
	var missing []string
	for _, row := range loot.Rows {
		id := row[idColumn]
		baseRow, ok := baseByID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}

		// Tags read from the base row when the column lives there,
		// falling back to the loot row.
		var rawTags string
		if tagColumn != "" {
			if cell, ok := baseRow[tagColumn]; ok {
				rawTags = cell
			} else {
				rawTags = row[tagColumn]
			}
		}

		items = append(items, Item{
			ID:       id,
			Name:     baseRow["name"],
			Category: baseRow["category"],
			Subtype:  baseRow["subtype"],
			Rarity:   row["rarity"],
			Tags:     ParseTags(rawTags),
		})
	}

	if len(missing) > 0 {
		return nil, false, &UnresolvedReferencesError{IDs: missing}
	}
	return items, tagColumn != "", nil
}

func resolveTagColumn(base, loot *Table) string {
	available := make(map[string]struct{})
	for col := range base.Rows[0] {
		available[col] = struct{}{}
	}
	for col := range loot.Rows[0] {
		available[col] = struct{}{}
	}
	for _, candidate := range tagColumnCandidates {
		if _, ok := available[candidate]; ok {
			return candidate
		}
	}
	return ""
}
