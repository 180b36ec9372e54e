package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/vessel-labs/vesselfake/internal/faker"
	"github.com/vessel-labs/vesselfake/internal/record"
	"github.com/vessel-labs/vesselfake/internal/sqlgen"
)

// runSQLFile generates the full entity set and writes one MySQL dump
// with labeled sections in dependency order, bracketed by foreign-key
// check toggles.
func (r *Runner) runSQLFile() error {
	data, err := r.generate()
	if err != nil {
		return err
	}

	path := r.cfg.OutputFile()
	color.Cyan("Writing %s...", path)

	var b strings.Builder
	b.WriteString("-- =====================================================\n")
	b.WriteString("-- VESSEL CATALOG - FAKE DATA\n")
	fmt.Fprintf(&b, "-- Generated: %s\n", faker.Now())
	b.WriteString("-- =====================================================\n\n")
	b.WriteString("SET NAMES utf8mb4;\n")
	b.WriteString("SET FOREIGN_KEY_CHECKS = 0;\n\n")

	b.WriteString("-- VOCABULARIES\n")
	b.WriteString(sqlgen.Insert("taxonomy_vocabularies", data.Vocabularies) + "\n\n")

	b.WriteString("-- TERMS\n")
	b.WriteString(sqlgen.Insert("catalog_terms", data.Terms) + "\n\n")

	b.WriteString("-- LOCATIONS\n")
	root, children := splitLocations(data.Locations)
	b.WriteString(sqlgen.Insert("locations_locations", root) + "\n\n")
	if len(children) > 0 {
		b.WriteString(sqlgen.Insert("locations_locations", children) + "\n\n")
	}

	b.WriteString("-- ITEMS\n")
	b.WriteString(sqlgen.Insert("catalog_items", data.Items) + "\n\n")

	b.WriteString("-- ITEM IDENTIFIERS\n")
	b.WriteString(sqlgen.Insert("catalog_item_identifiers", data.Identifiers) + "\n\n")

	b.WriteString("-- ITEM TERMS (M:M)\n")
	b.WriteString(sqlgen.Insert("catalog_item_terms", data.ItemTerms) + "\n\n")

	b.WriteString("-- STOCK ITEMS\n")
	b.WriteString(sqlgen.Insert("stock_items", data.StockItems) + "\n\n")

	if len(data.Movements) > 0 {
		b.WriteString("-- STOCK MOVEMENTS\n")
		b.WriteString(sqlgen.Insert("stock_movements", data.Movements) + "\n\n")
	}

	b.WriteString("SET FOREIGN_KEY_CHECKS = 1;\n")
	b.WriteString("-- END OF DATA\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write SQL file: %w", err)
	}

	color.Green("✅ Generated: %s", path)
	data.summary()
	return nil
}

// jsonDataset fixes the key order of the JSON document.
type jsonDataset struct {
	Vocabularies    []*record.Record `json:"vocabularies"`
	Terms           []*record.Record `json:"terms"`
	Locations       []*record.Record `json:"locations"`
	Items           []*record.Record `json:"items"`
	ItemIdentifiers []*record.Record `json:"item_identifiers"`
	ItemTerms       []*record.Record `json:"item_terms"`
	StockItems      []*record.Record `json:"stock_items"`
	StockMovements  []*record.Record `json:"stock_movements"`
}

// runJSONFile generates the full entity set and dumps it as one indented
// document, keeping non-ASCII text unescaped.
func (r *Runner) runJSONFile() error {
	data, err := r.generate()
	if err != nil {
		return err
	}

	path := r.cfg.OutputFile()
	color.Cyan("Writing %s...", path)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDataset{
		Vocabularies:    data.Vocabularies,
		Terms:           data.Terms,
		Locations:       data.Locations,
		Items:           data.Items,
		ItemIdentifiers: data.Identifiers,
		ItemTerms:       data.ItemTerms,
		StockItems:      data.StockItems,
		StockMovements:  data.Movements,
	}); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	color.Green("✅ Generated: %s", path)
	data.summary()
	return nil
}
