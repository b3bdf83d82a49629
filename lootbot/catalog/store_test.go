package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmforge/lootbot/lootbot/catalog"
	"github.com/wyrmforge/lootbot/lootbot/datasource"
)

const (
	baseCSV = "item_id,name,category,subtype,tags\n" +
		"1,Cloak,Armor,Cloak,cursed\n" +
		"2,Ring,Wondrous Item,Ring,\"cursed,rare\"\n"
	lootCSV = "item_id,rarity\n1,Rare\n2,Legendary\n"
)

func storeFixture(t *testing.T, base, loot string) (*catalog.Store, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.csv"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loot.csv"), []byte(loot), 0o644))
	store := catalog.NewStore(
		datasource.File{Path: filepath.Join(dir, "base.csv")},
		datasource.File{Path: filepath.Join(dir, "loot.csv")},
	)
	return store, dir
}

func TestStoreUnloaded(t *testing.T) {
	store, _ := storeFixture(t, baseCSV, lootCSV)

	assert.False(t, store.Ready())
	assert.NoError(t, store.LoadErr())
	assert.Empty(t, store.Items())
}

func TestStoreReload(t *testing.T) {
	store, _ := storeFixture(t, baseCSV, lootCSV)

	require.NoError(t, store.Reload(context.Background()))

	assert.True(t, store.Ready())
	assert.True(t, store.HasTags())
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Cloak", store.Items()[0].Name)
}

func TestStoreReloadIdempotent(t *testing.T) {
	store, _ := storeFixture(t, baseCSV, lootCSV)

	require.NoError(t, store.Reload(context.Background()))
	first := store.Items()
	require.NoError(t, store.Reload(context.Background()))

	assert.Equal(t, first, store.Items())
}

func TestStoreReloadFailureDiscardsItems(t *testing.T) {
	store, dir := storeFixture(t, baseCSV, lootCSV)
	require.NoError(t, store.Reload(context.Background()))
	require.Equal(t, 2, store.Len())

	// A loot id with no base entry fails the whole load; the previous
	// catalog is not kept around.
	badLoot := lootCSV + "3,Common\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loot.csv"), []byte(badLoot), 0o644))

	err := store.Reload(context.Background())
	var unresolved *catalog.UnresolvedReferencesError
	require.ErrorAs(t, err, &unresolved)

	assert.False(t, store.Ready())
	assert.Error(t, store.LoadErr())
	assert.Contains(t, store.LoadErr().Error(), "3")
	assert.Empty(t, store.Items())
	assert.False(t, store.HasTags())
}

func TestStoreRecoversAfterFailure(t *testing.T) {
	store, dir := storeFixture(t, baseCSV, lootCSV)

	require.NoError(t, os.Remove(filepath.Join(dir, "loot.csv")))
	require.Error(t, store.Reload(context.Background()))
	assert.False(t, store.Ready())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "loot.csv"), []byte(lootCSV), 0o644))
	require.NoError(t, store.Reload(context.Background()))

	assert.True(t, store.Ready())
	assert.NoError(t, store.LoadErr())
	assert.Equal(t, 2, store.Len())
}

func TestStoreMissingColumns(t *testing.T) {
	store, _ := storeFixture(t, "item_id,name\n1,Cloak\n", lootCSV)

	err := store.Reload(context.Background())

	var missing *catalog.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"category", "subtype"}, missing.Columns)
}

func TestStoreEmptyTable(t *testing.T) {
	store, _ := storeFixture(t, baseCSV, "item_id,rarity\n")

	err := store.Reload(context.Background())

	var empty *catalog.EmptyTableError
	require.ErrorAs(t, err, &empty)
}

func TestStoreSearchCacheResetOnReload(t *testing.T) {
	store, dir := storeFixture(t, baseCSV, lootCSV)
	require.NoError(t, store.Reload(context.Background()))

	filter := catalog.Filter{Rarity: "Rare"}
	require.Len(t, store.Search(filter), 1)
	// Second call is served from the cache.
	require.Len(t, store.Search(filter), 1)

	newLoot := "item_id,rarity\n1,Rare\n2,Rare\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loot.csv"), []byte(newLoot), 0o644))
	require.NoError(t, store.Reload(context.Background()))

	assert.Len(t, store.Search(filter), 2)
}

func TestStoreWithoutTagColumn(t *testing.T) {
	plainBase := "item_id,name,category,subtype\n1,Cloak,Armor,Cloak\n"
	store, _ := storeFixture(t, plainBase, "item_id,rarity\n1,Rare\n")

	require.NoError(t, store.Reload(context.Background()))
	assert.False(t, store.HasTags())
	assert.Empty(t, store.Items()[0].Tags)
}
