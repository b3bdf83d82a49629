// lootcheck validates and queries the loot tables offline, without a
// Discord connection. Useful when editing the CSVs before a deploy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
	"github.com/wyrmforge/lootbot/lootbot/datasource"
)

var (
	basePath string
	lootPath string
)

var rootCmd = &cobra.Command{
	Use:          "lootcheck",
	Short:        "inspect the loot catalog tables from the terminal",
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load both tables and report catalog health",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		if err := store.Reload(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("ok: %d items", store.Len())
		if store.HasTags() {
			fmt.Printf(", tag column resolved")
		}
		fmt.Println()
		return nil
	},
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "run a filter query against the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		if err := store.Reload(cmd.Context()); err != nil {
			return err
		}

		filter := catalog.Filter{
			Rarity:   queryRarity,
			Category: queryCategory,
			Subtype:  querySubtype,
		}
		if queryTags != "" {
			if !store.HasTags() {
				return fmt.Errorf("tag filtering is not available: no tag column in either table")
			}
			filter.Tags = catalog.ParseTags(queryTags)
			if len(filter.Tags) == 0 {
				return fmt.Errorf("tag filter must include at least one tag")
			}
		}

		results := store.Search(filter)
		for _, item := range results {
			fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Category, item.Subtype, item.Rarity)
		}
		fmt.Printf("%d item(s)\n", len(results))
		return nil
	},
}

var (
	queryRarity   string
	queryCategory string
	querySubtype  string
	queryTags     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&basePath, "base", "data/Items_base.csv", "path to the base table")
	rootCmd.PersistentFlags().StringVar(&lootPath, "loot", "data/Items_loot.csv", "path to the loot table")

	queryCmd.Flags().StringVar(&queryRarity, "rarity", "", "exact rarity match")
	queryCmd.Flags().StringVar(&queryCategory, "category", "", "exact category match")
	queryCmd.Flags().StringVar(&querySubtype, "subtype", "", "partial subtype match")
	queryCmd.Flags().StringVar(&queryTags, "tags", "", "comma-separated tags, all required")

	rootCmd.AddCommand(validateCmd, queryCmd)
}

func newStore() *catalog.Store {
	return catalog.NewStore(
		datasource.File{Path: basePath},
		datasource.File{Path: lootPath},
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
