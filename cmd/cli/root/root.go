package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Recipe Share CLI",
	Long:  "Command line interface for interacting with the Recipe Share API",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the root command for wiring subcommands.
func GetRoot() *cobra.Command {
	return RootCmd
}
