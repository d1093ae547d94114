package cli

import (
	"github.com/spf13/cobra"

	"github.com/Alan-Biju/global-visa/internal/query"
)

func newQueryCmd() *cobra.Command {
	var req query.Request

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Send a contact query to the visa desk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.TravelDate, "travel-date", "", "target travel date")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&req.Destination, "dest", "", "destination country")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func runQuery(cmd *cobra.Command, req query.Request) error {
	c := newAPIClient()

	resp, err := c.SendQuery(req)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(resp)
	}

	cmd.Printf("Reference: %s\n", resp.Reference)
	if resp.Sent {
		cmd.Println("Query sent to the visa desk.")
	} else {
		cmd.Println("Mail delivery is not configured on the server.")
		cmd.Printf("Open this link to send it yourself:\n%s\n", resp.Mailto)
	}
	return nil
}
