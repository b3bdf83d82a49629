package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// missingIDPreview caps how many unresolved ids appear in an error message.
const missingIDPreview = 5

// DataUnavailableError reports a source table that could not be located,
// opened, or parsed into a header row.
type DataUnavailableError struct {
	Source string
	Reason string
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("table %s is unavailable: %s", e.Source, e.Reason)
}

// EmptyTableError reports a table that parsed but contains no data rows.
type EmptyTableError struct {
	Source string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("table %s is empty", e.Source)
}

// MissingColumnsError reports every required column absent from a table in
// one message, sorted.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	cols := make([]string, len(e.Columns))
	copy(cols, e.Columns)
	sort.Strings(cols)
	return fmt.Sprintf("table %s is missing required columns: %s", e.Source, strings.Join(cols, ", "))
}

// UnresolvedReferencesError reports loot table ids that have no matching base
// table entry. IDs holds every missing id in encounter order; the message
// previews the first few.
type UnresolvedReferencesError struct {
	IDs []string
}

func (e *UnresolvedReferencesError) Error() string {
	preview := e.IDs
	suffix := ""
	if len(preview) > missingIDPreview {
		preview = preview[:missingIDPreview]
		suffix = "..."
	}
	return fmt.Sprintf("loot table contains item ids that do not appear in the base table: %s%s",
		strings.Join(preview, ", "), suffix)
}
