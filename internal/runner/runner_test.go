package runner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-labs/vesselfake/internal/config"
	"github.com/vessel-labs/vesselfake/internal/record"
)

func fileConfig(t *testing.T, output, name string) *config.Config {
	t.Helper()
	return &config.Config{
		Output:       output,
		File:         filepath.Join(t.TempDir(), name),
		StorageUnits: 5,
		Seed:         7,
		Workspace:    "ws-test",
	}
}

func TestSQLFileWithZeroCounts(t *testing.T) {
	cfg := fileConfig(t, config.OutputSQL, "out.sql")
	// All counts zero: only vocabularies and terms carry rows.
	require.NoError(t, New(cfg).Run(context.Background()))

	raw, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "-- VESSEL CATALOG - FAKE DATA")
	assert.Contains(t, content, "SET NAMES utf8mb4;")
	assert.Contains(t, content, "SET FOREIGN_KEY_CHECKS = 0;")
	assert.Contains(t, content, "SET FOREIGN_KEY_CHECKS = 1;")
	assert.Contains(t, content, "-- END OF DATA")

	assert.Contains(t, content, "INSERT INTO `taxonomy_vocabularies`")
	assert.Contains(t, content, "INSERT INTO `catalog_terms`")

	// Section labels survive even when their inputs are empty.
	for _, label := range []string{"-- LOCATIONS", "-- ITEMS", "-- ITEM IDENTIFIERS", "-- ITEM TERMS (M:M)", "-- STOCK ITEMS"} {
		assert.Contains(t, content, label)
	}
	for _, table := range []string{"locations_locations", "catalog_items", "catalog_item_identifiers", "catalog_item_terms", "stock_items", "stock_movements"} {
		assert.NotContains(t, content, "INSERT INTO `"+table+"`")
	}
}

func TestSQLFileFullDataset(t *testing.T) {
	cfg := fileConfig(t, config.OutputSQL, "out.sql")
	cfg.Items = 20
	cfg.Locations = 40
	cfg.Stock = 30
	cfg.Movements = 15

	require.NoError(t, New(cfg).Run(context.Background()))

	raw, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	content := string(raw)

	for _, table := range []string{
		"taxonomy_vocabularies", "catalog_terms", "locations_locations",
		"catalog_items", "catalog_item_identifiers", "catalog_item_terms",
		"stock_items", "stock_movements",
	} {
		assert.Contains(t, content, "INSERT INTO `"+table+"`")
	}

	// Locations are split: root rows first, child rows in a second
	// statement for the same table.
	assert.Equal(t, 2, strings.Count(content, "INSERT INTO `locations_locations`"))

	// Accented names are written as-is.
	assert.Contains(t, content, "Categorías")
}

func TestJSONFileShape(t *testing.T) {
	cfg := fileConfig(t, config.OutputJSON, "out.json")
	cfg.Items = 5
	cfg.Locations = 3
	cfg.Stock = 4
	cfg.Movements = 6

	require.NoError(t, New(cfg).Run(context.Background()))

	raw, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Categorías")

	var doc map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	for _, key := range []string{
		"vocabularies", "terms", "locations", "items",
		"item_identifiers", "item_terms", "stock_items", "stock_movements",
	} {
		_, ok := doc[key]
		assert.True(t, ok, "missing key %s", key)
	}

	assert.Len(t, doc["vocabularies"], 6)
	assert.Len(t, doc["items"], 5)
	assert.Len(t, doc["stock_movements"], 6)
	assert.GreaterOrEqual(t, len(doc["locations"]), 3)

	for _, item := range doc["items"] {
		assert.Equal(t, "ws-test", item["workspace_id"])
	}
}

func TestJSONFileZeroCountsKeepsEmptyArrays(t *testing.T) {
	cfg := fileConfig(t, config.OutputJSON, "out.json")

	require.NoError(t, New(cfg).Run(context.Background()))

	raw, err := os.ReadFile(cfg.File)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"locations", "items", "item_identifiers", "item_terms", "stock_items", "stock_movements"} {
		assert.Equal(t, "[]", strings.TrimSpace(string(doc[key])), "key %s should be an empty array", key)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() string {
		cfg := fileConfig(t, config.OutputJSON, "out.json")
		cfg.Items = 10
		cfg.Locations = 5
		require.NoError(t, New(cfg).Run(context.Background()))
		raw, err := os.ReadFile(cfg.File)
		require.NoError(t, err)

		var doc map[string][]map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &doc))

		// ids are uuids (not seed-driven), names and statuses are.
		names := make([]string, 0, len(doc["items"]))
		for _, item := range doc["items"] {
			names = append(names, item["name"].(string)+"/"+item["status"].(string))
		}
		return strings.Join(names, "|")
	}

	assert.Equal(t, run(), run())
}

func TestSplitLocations(t *testing.T) {
	locations := []*record.Record{
		record.New().Set("id", "a").Set("parent_id", nil),
		record.New().Set("id", "b").Set("parent_id", "a"),
		record.New().Set("id", "c").Set("parent_id", nil),
	}

	root, children := splitLocations(locations)
	require.Len(t, root, 2)
	require.Len(t, children, 1)
	assert.Equal(t, "b", children[0].Value("id"))
}

func TestRunRejectsUnknownMode(t *testing.T) {
	cfg := fileConfig(t, "csv", "out.csv")
	require.Error(t, New(cfg).Run(context.Background()))
}
