package cli

import (
	"github.com/spf13/cobra"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List available countries",
		Long:  "List every country in the directory with its visa categories.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountries()
		},
	}
}

func runCountries() error {
	c := newAPIClient()

	list, err := c.ListCountries()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(list)
	}

	return printCountryTable(list)
}
