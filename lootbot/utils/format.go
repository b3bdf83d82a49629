package utils

import (
	"fmt"
	"strings"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
)

// FormatItemLine renders one catalog item as a listing row.
func FormatItemLine(item catalog.Item) string {
	subtype := ""
	if item.Subtype != "" {
		subtype = fmt.Sprintf(" — %s", item.Subtype)
	}
	return fmt.Sprintf("• **%s** (%s%s) — %s", item.Name, item.Category, subtype, item.Rarity)
}

// FormatItems renders items one per line.
func FormatItems(items []catalog.Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(FormatItemLine(item))
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildFilterDescription creates a formatted summary of active filters for
// an embed, or an empty string when none are set.
func BuildFilterDescription(f catalog.Filter) string {
	if f.IsZero() {
		return ""
	}

	var filterLines []string
	if f.Rarity != "" {
		filterLines = append(filterLines, formatFilterLine("💎 Rarity", f.Rarity))
	}
	if f.Category != "" {
		filterLines = append(filterLines, formatFilterLine("📦 Category", f.Category))
	}
	if f.Subtype != "" {
		filterLines = append(filterLines, formatFilterLine("🗡️ Subtype", f.Subtype))
	}
	if len(f.Tags) > 0 {
		filterLines = append(filterLines, formatFilterLine("🏷️ Tags", strings.Join(f.Tags, ", ")))
	}

	return "```md\n# Active Filters\n* " + strings.Join(filterLines, "\n* ") + "\n```"
}

func formatFilterLine(label string, value any) string {
	return fmt.Sprintf("%s: %v", label, value)
}
