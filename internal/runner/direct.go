package runner

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"

	"github.com/vessel-labs/vesselfake/internal/database"
	"github.com/vessel-labs/vesselfake/internal/record"
)

// cleanTables is the truncation list in dependency order, children
// first. stock_current and stock_batches belong to the target schema and
// are truncated even though this tool never fills them.
var cleanTables = []string{
	"stock_movements", "stock_items", "stock_current", "stock_batches",
	"catalog_item_terms", "catalog_item_identifiers", "catalog_items",
	"catalog_term_relations", "catalog_terms",
	"locations_locations", "locations_addresses",
	"taxonomy_vocabularies",
}

// runDirect connects first so connection problems halt the run before
// any generation happens, then loads the dataset phase by phase over a
// single connection with one commit per phase.
func (r *Runner) runDirect(ctx context.Context) error {
	cfg := r.cfg
	color.Cyan("🔌 Connecting to %s:%d/%s...", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	db, err := database.Connect(ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		return err
	}
	defer db.Close()

	// Session toggles only stick on a single connection, so the whole
	// load runs on one checked-out conn.
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	for _, stmt := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"SET UNIQUE_CHECKS = 0",
		"SET autocommit = 0",
	} {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare session: %w", err)
		}
	}

	writer := database.NewWriter(conn, database.DefaultBatchSize)

	if cfg.OnlyMovements {
		return r.loadMovementsOnly(ctx, conn, writer)
	}

	if cfg.Clean {
		color.Yellow("🧹 Truncating tables...")
		database.TruncateTables(ctx, conn, cleanTables)
		if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
			return fmt.Errorf("failed to commit truncation: %w", err)
		}
	}

	data, err := r.generate()
	if err != nil {
		return err
	}

	locationsRoot, locationsChildren := splitLocations(data.Locations)
	phases := []struct {
		table   string
		label   string
		records []*record.Record
	}{
		{"taxonomy_vocabularies", "taxonomy_vocabularies", data.Vocabularies},
		{"catalog_terms", "catalog_terms", data.Terms},
		{"locations_locations", "locations_locations root", locationsRoot},
		{"locations_locations", "locations_locations children", locationsChildren},
		{"catalog_items", "catalog_items", data.Items},
		{"catalog_item_identifiers", "catalog_item_identifiers", data.Identifiers},
		{"catalog_item_terms", "catalog_item_terms", data.ItemTerms},
		{"stock_items", "stock_items", data.StockItems},
		{"stock_movements", "stock_movements", data.Movements},
	}

	color.Cyan("\n📥 Inserting into database...")
	for _, phase := range phases {
		if len(phase.records) == 0 {
			continue
		}
		color.Cyan("  → %s (%d)", phase.label, len(phase.records))
		if _, err := writer.BatchInsert(ctx, phase.table, phase.records); err != nil {
			conn.ExecContext(ctx, "ROLLBACK")
			return fmt.Errorf("failed to load %s: %w", phase.label, err)
		}
		if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
			conn.ExecContext(ctx, "ROLLBACK")
			return fmt.Errorf("failed to commit %s: %w", phase.label, err)
		}
	}

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		return fmt.Errorf("failed to restore foreign key checks: %w", err)
	}

	color.Green("\n✅ Data inserted successfully!")
	data.summary()
	return nil
}

// loadMovementsOnly reuses the location ids already present in the
// database instead of generating a fresh tree.
func (r *Runner) loadMovementsOnly(ctx context.Context, conn *sqlx.Conn, writer *database.Writer) error {
	color.Cyan("📍 Loading existing locations from database...")

	var locationIDs []string
	if err := conn.SelectContext(ctx, &locationIDs, "SELECT id FROM locations_locations"); err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	color.Cyan("   Found %d locations", len(locationIDs))

	if len(locationIDs) == 0 {
		return fmt.Errorf("no locations in database; run a full load before --only-movements")
	}
	r.fake.SetLocations(locationIDs)

	color.Cyan("Generating %d movements...", r.cfg.Movements)
	movements, err := r.fake.GenerateStockMovements(r.cfg.Movements)
	if err != nil {
		return err
	}

	color.Cyan("\n📥 Inserting %d movements...", len(movements))
	if _, err := writer.BatchInsert(ctx, "stock_movements", movements); err != nil {
		conn.ExecContext(ctx, "ROLLBACK")
		return fmt.Errorf("failed to load stock_movements: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		conn.ExecContext(ctx, "ROLLBACK")
		return fmt.Errorf("failed to commit stock_movements: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		return fmt.Errorf("failed to restore foreign key checks: %w", err)
	}

	color.Green("\n✅ Inserted %d movements!", len(movements))
	return nil
}
