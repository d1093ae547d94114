package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <country>",
		Short: "Show one country's record",
		Long:  "Show the full record for a country: categories, formalities, and contact details.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	data, err := c.GetCountry(args[0])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(data)
	}

	printCountrySummary(args[0], data)
	return nil
}
