package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vesselfake version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
