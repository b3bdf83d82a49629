package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/wyrmforge/lootbot/lootbot"
)

var LootReload = discord.SlashCommandCreate{
	Name:        "lootreload",
	Description: "🔄 Reload loot data from the source tables",
}

func LootReloadHandler(b *lootbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := b.Catalog.Reload(ctx); err != nil {
			return respondEphemeral(e, fmt.Sprintf("Reload failed: %s", err))
		}
		return respondEphemeral(e, fmt.Sprintf("Reloaded %d items.", b.Catalog.Len()))
	}
}
