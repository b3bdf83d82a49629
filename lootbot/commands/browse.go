package commands

import (
	"fmt"
	"math"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/wyrmforge/lootbot/lootbot"
	"github.com/wyrmforge/lootbot/lootbot/utils"
)

const itemsPerPage = 10

var LootBrowse = discord.SlashCommandCreate{
	Name:        "lootbrowse",
	Description: "📖 Page through every loot item matching the filters",
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
	},
}

func LootBrowseHandler(b *lootbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := b.Catalog.LoadErr(); err != nil {
			return respondEphemeral(e, fmt.Sprintf("Loot data is unavailable: %s", err))
		}
		if !b.Catalog.Ready() {
			return respondEphemeral(e, "Loot data is not loaded yet.")
		}

		filter, userErr := buildFilter(b.Catalog, e.SlashCommandInteractionData())
		if userErr != nil {
			return respondEphemeral(e, userErr.Error())
		}

		results := b.Catalog.Search(filter)
		if len(results) == 0 {
			return respondEphemeral(e, "No items matched your filters.")
		}

		totalPages := int(math.Ceil(float64(len(results)) / float64(itemsPerPage)))
		filterDesc := utils.BuildFilterDescription(filter)

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * itemsPerPage
				end := min(start+itemsPerPage, len(results))

				embed.
					SetTitle("📖 Loot Catalog").
					SetDescription(filterDesc + utils.FormatItems(results[start:end])).
					SetColor(embedColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d item(s)", page+1, totalPages, len(results)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
