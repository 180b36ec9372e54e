package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vessel-labs/vesselfake/internal/config"
)

var Version = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "vesselfake",
	Short: "Fake catalog and inventory data generator",
	Long: `vesselfake synthesizes realistic catalog/inventory test data
(vocabularies, taxonomy terms, locations, items, identifiers, stock
levels and stock movements) and emits it as a SQL file, a JSON file or
direct batched inserts into a MySQL database.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	config.SetDefaults()
	viper.AutomaticEnv()
}
