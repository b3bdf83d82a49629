package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/joho/godotenv"

	"github.com/wyrmforge/lootbot/lootbot"
	"github.com/wyrmforge/lootbot/lootbot/catalog"
	"github.com/wyrmforge/lootbot/lootbot/commands"
	"github.com/wyrmforge/lootbot/lootbot/datasource"
	"github.com/wyrmforge/lootbot/lootbot/handlers"
	"github.com/wyrmforge/lootbot/lootbot/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting loot bot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := lootbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	if token := os.Getenv("LOOTBOT_TOKEN"); token != "" {
		cfg.Bot.Token = token
	}
	slog.Info("Configuration loaded successfully")

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("Failed to set up table sources", slog.Any("error", err))
		os.Exit(-1)
	}

	// A failed initial load keeps the bot running; queries surface the
	// stored error until a reload succeeds.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Reload(ctx); err == nil {
		slog.Info("Loaded loot items", slog.Int("count", store.Len()))
	}
	cancel()

	b := lootbot.New(*cfg, version, commit)
	b.Catalog = store

	h := handler.New()
	h.Command("/loot", handlers.WrapWithLogging("loot", commands.LootHandler(b)))
	h.Command("/lootbrowse", handlers.WrapWithLogging("lootbrowse", commands.LootBrowseHandler(b)))
	h.Command("/lootreload", handlers.WrapWithLogging("lootreload", commands.LootReloadHandler(b)))
	h.Command("/version", commands.VersionHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}

func newStore(cfg *lootbot.Config) (*catalog.Store, error) {
	if cfg.Data.Spaces.Enabled {
		sp := cfg.Data.Spaces
		baseSrc, err := datasource.NewSpaces(sp.Key, sp.Secret, sp.Region, sp.Bucket, sp.BaseKey)
		if err != nil {
			return nil, err
		}
		lootSrc, err := datasource.NewSpaces(sp.Key, sp.Secret, sp.Region, sp.Bucket, sp.LootKey)
		if err != nil {
			return nil, err
		}
		return catalog.NewStore(baseSrc, lootSrc), nil
	}
	return catalog.NewStore(
		datasource.File{Path: cfg.Data.BasePath},
		datasource.File{Path: cfg.Data.LootPath},
	), nil
}
