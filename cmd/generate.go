package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vessel-labs/vesselfake/internal/config"
	"github.com/vessel-labs/vesselfake/internal/runner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fake dataset",
	Long: `Generate the full catalog/inventory entity set and emit it in one
of three mutually exclusive output modes:

  sql     write batched INSERT statements to a file
  json    write one structured JSON document
  direct  insert directly into MySQL in batched writes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := runner.New(cfg).Run(cmd.Context()); err != nil {
			color.Red("❌ %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.Int("items", 1000, "Number of catalog items to generate")
	flags.Int("locations", 50, "Number of top-level locations")
	flags.Int("stock", 3000, "Number of stock items")
	flags.Int("movements", 5000, "Number of stock movements")
	flags.Int("storage-units", 5, "Max storage units per warehouse")
	flags.String("output", config.OutputDirect, "Output mode: sql, json or direct")
	flags.String("file", "", "Output file path for sql/json modes")
	flags.String("workspace", "", "Workspace ID to stamp on every record")
	flags.Int64("seed", 0, "Random seed for reproducible datasets (0 = time-based)")
	flags.Bool("clean", false, "Truncate target tables before inserting")
	flags.Bool("only-movements", false, "Insert only movements, reusing locations already in the database")

	flags.String("host", "localhost", "MySQL host")
	flags.Int("port", 3307, "MySQL port")
	flags.String("user", "root", "MySQL user")
	flags.String("password", "", "MySQL password")
	flags.String("database", "vessel_test", "MySQL database name")

	viper.BindPFlag("items", flags.Lookup("items"))
	viper.BindPFlag("locations", flags.Lookup("locations"))
	viper.BindPFlag("stock", flags.Lookup("stock"))
	viper.BindPFlag("movements", flags.Lookup("movements"))
	viper.BindPFlag("storage_units", flags.Lookup("storage-units"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("file", flags.Lookup("file"))
	viper.BindPFlag("workspace", flags.Lookup("workspace"))
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("clean", flags.Lookup("clean"))
	viper.BindPFlag("only_movements", flags.Lookup("only-movements"))
	viper.BindPFlag("db.host", flags.Lookup("host"))
	viper.BindPFlag("db.port", flags.Lookup("port"))
	viper.BindPFlag("db.user", flags.Lookup("user"))
	viper.BindPFlag("db.password", flags.Lookup("password"))
	viper.BindPFlag("db.database", flags.Lookup("database"))
}
