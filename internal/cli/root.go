package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - shop operator dashboard",
	Long: `Storefront is a shop operator's dashboard for the terminal: browse the
product catalog, build a cart, place orders against locally persisted
state and review order history.

State lives in a local store file by default and survives restarts. The
catalog is fetched read-only from a remote listing.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
