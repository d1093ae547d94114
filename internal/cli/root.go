// Package cli defines the cobra command tree for the visa portal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Alan-Biju/global-visa/internal/client"
)

var (
	flagFormat string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "visa",
		Short:         "Browse visa requirements by country",
		Long:          "A tool to browse visa requirements: list countries, resolve the document dossier for a trip, export it as a PDF, and run the web portal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: from config or http://localhost:8080)")

	root.AddCommand(
		newCountriesCmd(),
		newShowCmd(),
		newResolveCmd(),
		newExportCmd(),
		newQueryCmd(),
		newSeedCmd(),
		newServeCmd(),
		newConfigCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the visa portal API.
func newAPIClient() *client.Client {
	return client.New(serverURL())
}

// serverURL resolves the server URL: flag, env, config file, default.
func serverURL() string {
	if flagServer != "" {
		return flagServer
	}
	return getServerURL()
}

func isJSON() bool {
	return flagFormat == "json"
}
