package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/wyrmforge/lootbot/lootbot"
	"github.com/wyrmforge/lootbot/lootbot/catalog"
	"github.com/wyrmforge/lootbot/lootbot/utils"
)

const (
	defaultLimit = 10
	maxLimit     = 50

	embedColor = 0x2B2D31
)

// RarityChoices is the fixed set of rarity values offered on the rarity
// option.
var RarityChoices = []string{
	"Common",
	"Uncommon",
	"Rare",
	"Very Rare",
	"Legendary",
}

var Loot = discord.SlashCommandCreate{
	Name:        "loot",
	Description: "🎲 Find loot items with optional filters",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "rarity",
			Description: "Common, Uncommon, Rare, Very Rare, Legendary",
			Required:    false,
			Choices:     rarityChoices(),
		},
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "Armor, Weapon, Wondrous Item, etc.",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "subtype",
			Description: "Partial subtype match",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "tag",
			Description: "Comma-separated tags",
			Required:    false,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "limit",
			Description: "Maximum results to return (default 10)",
			Required:    false,
		},
	},
}

func rarityChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(RarityChoices))
	for _, choice := range RarityChoices {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  choice,
			Value: choice,
		})
	}
	return choices
}

func LootHandler(b *lootbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := b.Catalog.LoadErr(); err != nil {
			return respondEphemeral(e, fmt.Sprintf("Loot data is unavailable: %s", err))
		}
		if !b.Catalog.Ready() {
			return respondEphemeral(e, "Loot data is not loaded yet.")
		}

		data := e.SlashCommandInteractionData()

		limit, ok := data.OptInt("limit")
		limit, err := ResolveLimit(limit, ok)
		if err != nil {
			return respondEphemeral(e, err.Error())
		}

		filter, userErr := buildFilter(b.Catalog, data)
		if userErr != nil {
			return respondEphemeral(e, userErr.Error())
		}

		results := b.Catalog.Search(filter)
		if len(results) == 0 {
			return respondEphemeral(e, "No items matched your filters.")
		}

		total := len(results)
		preview := results
		if len(preview) > limit {
			preview = preview[:limit]
		}

		description := utils.BuildFilterDescription(filter) + utils.FormatItems(preview)
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{
				{
					Title:       "🎲 Loot Results",
					Description: description,
					Color:       embedColor,
					Footer: &discord.EmbedFooter{
						Text: fmt.Sprintf("Found %d item(s) • Showing %d", total, len(preview)),
					},
				},
			},
		})
	}
}

// ResolveLimit applies the default and cap policy to a user supplied result
// limit. ok reports whether the user supplied one at all.
func ResolveLimit(limit int, ok bool) (int, error) {
	if !ok {
		return defaultLimit, nil
	}
	if limit <= 0 {
		return 0, errors.New("Limit must be a positive number.")
	}
	if limit > maxLimit {
		return maxLimit, nil
	}
	return limit, nil
}

// buildFilter reads the filter options shared by /loot and /lootbrowse. The
// tag option is honored only when the store resolved a tag column; the
// returned error is a user-facing message.
func buildFilter(store *catalog.Store, data discord.SlashCommandInteractionData) (catalog.Filter, error) {
	filter := catalog.Filter{
		Rarity:   data.String("rarity"),
		Category: data.String("category"),
		Subtype:  data.String("subtype"),
	}

	tags, err := ResolveTagFilter(data.String("tag"), store.HasTags())
	if err != nil {
		return catalog.Filter{}, err
	}
	filter.Tags = tags
	return filter, nil
}

// ResolveTagFilter parses the tag option into filter tokens. The option is
// honored only when the catalog resolved a tag column; the returned error is
// a user-facing message.
func ResolveTagFilter(raw string, hasTags bool) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	if !hasTags {
		return nil, errors.New("Tag filtering is not available because the data has no tags column.")
	}
	tags := catalog.ParseTags(raw)
	if len(tags) == 0 {
		return nil, errors.New("Tag filter must include at least one tag.")
	}
	return tags, nil
}

func respondEphemeral(e *handler.CommandEvent, content string) error {
	return e.CreateMessage(discord.MessageCreate{
		Content: content,
		Flags:   discord.MessageFlagEphemeral,
	})
}
