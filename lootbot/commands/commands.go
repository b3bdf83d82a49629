package commands

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Loot,
	LootBrowse,
	LootReload,
	Version,
}
