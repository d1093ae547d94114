package cli

import (
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var origin, dest, visaType string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the dossier for a trip",
		Long:  "Resolve the requirement dossier for an origin, destination, and visa type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(origin, dest, visaType)
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "origin country slug")
	cmd.Flags().StringVar(&dest, "dest", "", "destination country slug")
	cmd.Flags().StringVar(&visaType, "type", "", "visa category label")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runResolve(origin, dest, visaType string) error {
	c := newAPIClient()

	view, err := c.Resolve(origin, dest, visaType)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(view)
	}

	printDossier(view)
	return nil
}
