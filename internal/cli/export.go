package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alan-Biju/global-visa/internal/export"
)

func newExportCmd() *cobra.Command {
	var origin, dest, visaType, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dossier as PDF",
		Long:  "Resolve the dossier for a trip and write it to a PDF file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, origin, dest, visaType, out)
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "origin country slug")
	cmd.Flags().StringVar(&dest, "dest", "", "destination country slug")
	cmd.Flags().StringVar(&visaType, "type", "", "visa category label")
	cmd.Flags().StringVar(&out, "out", "", "output path (default: the dossier filename)")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runExport(cmd *cobra.Command, origin, dest, visaType, out string) error {
	c := newAPIClient()

	view, err := c.Resolve(origin, dest, visaType)
	if err != nil {
		return err
	}

	exporter := &export.Exporter{}
	data, filename, err := exporter.Export(view, export.ModeDownload)
	if err != nil {
		return err
	}

	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}

	cmd.Printf("Wrote %s (%d bytes)\n", out, len(data))
	return nil
}
