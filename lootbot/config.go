package lootbot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultBasePath = "data/Items_base.csv"
	defaultLootPath = "data/Items_loot.csv"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if cfg.Data.BasePath == "" {
		cfg.Data.BasePath = defaultBasePath
	}
	if cfg.Data.LootPath == "" {
		cfg.Data.LootPath = defaultLootPath
	}
	return &cfg, nil
}

type Config struct {
	Log  LogConfig  `toml:"log"`
	Bot  BotConfig  `toml:"bot"`
	Data DataConfig `toml:"data"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// DataConfig locates the two source tables. When the spaces section is
// enabled, both tables are fetched from the bucket instead of the local
// paths.
type DataConfig struct {
	BasePath string       `toml:"base_path"`
	LootPath string       `toml:"loot_path"`
	Spaces   SpacesConfig `toml:"spaces"`
}

type SpacesConfig struct {
	Enabled bool   `toml:"enabled"`
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	Region  string `toml:"region"`
	Bucket  string `toml:"bucket"`
	BaseKey string `toml:"base_key"`
	LootKey string `toml:"loot_key"`
}
