// Package runner drives one generation run and dispatches the result to
// the configured output mode.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"github.com/vessel-labs/vesselfake/internal/config"
	"github.com/vessel-labs/vesselfake/internal/faker"
	"github.com/vessel-labs/vesselfake/internal/record"
)

// termsPerVocab caps how many terms each populated vocabulary gets.
const termsPerVocab = 25

type Runner struct {
	cfg  *config.Config
	fake *faker.Faker
}

func New(cfg *config.Config) *Runner {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Runner{
		cfg:  cfg,
		fake: faker.New(cfg.Workspace, rng),
	}
}

// Run executes exactly one of the three output modes.
func (r *Runner) Run(ctx context.Context) error {
	switch r.cfg.Output {
	case config.OutputDirect:
		return r.runDirect(ctx)
	case config.OutputSQL:
		return r.runSQLFile()
	case config.OutputJSON:
		return r.runJSONFile()
	default:
		return fmt.Errorf("unsupported output mode: %s", r.cfg.Output)
	}
}

// dataset is one full generated entity set, in dependency order.
type dataset struct {
	Vocabularies []*record.Record
	Terms        []*record.Record
	Locations    []*record.Record
	Items        []*record.Record
	Identifiers  []*record.Record
	ItemTerms    []*record.Record
	StockItems   []*record.Record
	Movements    []*record.Record
}

// generate builds the complete entity set. Order matters: terms need
// vocabularies, identifiers and item-terms need items, stock needs items
// and locations, movements need locations.
func (r *Runner) generate() (*dataset, error) {
	cfg := r.cfg
	data := &dataset{}

	color.Cyan("Generating vocabularies...")
	data.Vocabularies = r.fake.GenerateVocabularies()

	color.Cyan("Generating terms...")
	data.Terms = r.fake.GenerateTerms(termsPerVocab)

	color.Cyan("Generating %d locations...", cfg.Locations)
	data.Locations = r.fake.GenerateLocations(cfg.Locations, cfg.StorageUnits)

	color.Cyan("Generating %d items...", cfg.Items)
	data.Items = r.fake.GenerateItems(cfg.Items)

	color.Cyan("Generating identifiers...")
	data.Identifiers = r.fake.GenerateItemIdentifiers(data.Items)

	color.Cyan("Generating item-terms...")
	data.ItemTerms = r.fake.GenerateItemTerms(data.Items)

	color.Cyan("Generating %d stock items...", cfg.Stock)
	stock, err := r.fake.GenerateStockItems(cfg.Stock)
	if err != nil {
		return nil, err
	}
	data.StockItems = stock

	data.Movements = []*record.Record{}
	if cfg.Movements > 0 {
		color.Cyan("Generating %d movements...", cfg.Movements)
		movements, err := r.fake.GenerateStockMovements(cfg.Movements)
		if err != nil {
			return nil, err
		}
		data.Movements = movements
	}

	return data, nil
}

// splitLocations separates parentless rows from child rows so parents
// can be inserted first.
func splitLocations(locations []*record.Record) (root, children []*record.Record) {
	root = make([]*record.Record, 0, len(locations))
	children = make([]*record.Record, 0)
	for _, loc := range locations {
		if loc.Value("parent_id") == nil {
			root = append(root, loc)
		} else {
			children = append(children, loc)
		}
	}
	return root, children
}

func (d *dataset) summary() {
	color.Green("   - %d vocabularies", len(d.Vocabularies))
	color.Green("   - %d terms", len(d.Terms))
	color.Green("   - %d locations", len(d.Locations))
	color.Green("   - %d items", len(d.Items))
	color.Green("   - %d identifiers", len(d.Identifiers))
	color.Green("   - %d item-term links", len(d.ItemTerms))
	color.Green("   - %d stock items", len(d.StockItems))
	color.Green("   - %d movements", len(d.Movements))
}
