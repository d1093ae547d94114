package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Alan-Biju/global-visa/internal/client"
	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/dossier"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCountryTable prints the country list as a formatted table.
func printCountryTable(list []client.CountrySummary) error {
	if len(list) == 0 {
		fmt.Println("No countries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tCODE\tVISA TYPES"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			c.Slug, c.Name, c.Code, truncate(strings.Join(c.Categories, ", "), 60)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d countries\n", len(list))
	return nil
}

// printCountrySummary prints a single country record in text format.
func printCountrySummary(slug string, data *country.CountryData) {
	fmt.Printf("%s (%s)\n", data.Name, data.Code)
	fmt.Printf("  ID:     %s\n", slug)
	if data.PhoneNumber != "" {
		fmt.Printf("  Phone:  %s\n", data.PhoneNumber)
	}
	if len(data.Visa) > 0 {
		fmt.Println("  Visa Types:")
		for _, label := range data.Categories() {
			details := data.Visa[label]
			fmt.Printf("    %s", label)
			if details.Duration != "" || details.Cost != "" {
				fmt.Printf("  (%s, %s)", orDash(details.Duration), orDash(details.Cost))
			}
			fmt.Println()
		}
	}
	if len(data.Formalities) > 0 {
		fmt.Println("  Formalities:")
		for _, f := range data.Formalities {
			fmt.Printf("    - %s\n", f)
		}
	}
}

// printDossier prints a resolved dossier in text format.
func printDossier(v *dossier.View) {
	fmt.Printf("%s - %s\n", v.DestinationName, v.Category)
	fmt.Printf("For travelers from %s\n\n", v.OriginName)
	if v.Description != "" {
		fmt.Println(v.Description)
		fmt.Println()
	}
	fmt.Printf("Duration:  %s\n", orDash(v.Duration))
	fmt.Printf("Est. Cost: %s\n\n", orDash(v.Cost))

	if v.Instant {
		fmt.Println("Required Documents: instant e-visa category, contact the support desk.")
	} else {
		fmt.Println("Required Documents:")
		if len(v.Requirements) == 0 {
			fmt.Println("  (none listed)")
		}
		for _, item := range v.Requirements {
			fmt.Printf("  %d. %s\n", item.Position, item.Text)
		}
	}

	fmt.Println("\nApplication Process:")
	for _, item := range v.Process {
		fmt.Printf("  %d. %s\n", item.Position, item.Text)
	}

	if len(v.CategoryFormalities) > 0 || len(v.CountryFormalities) > 0 {
		fmt.Println("\nKey Formalities:")
		for _, f := range v.CategoryFormalities {
			fmt.Printf("  - %s (%s)\n", f, v.Category)
		}
		for _, f := range v.CountryFormalities {
			fmt.Printf("  - %s (%s)\n", f, v.DestinationName)
		}
	}

	if len(v.Downloads) > 0 {
		fmt.Println("\nForms and Downloads:")
		for _, d := range v.Downloads {
			fmt.Printf("  - %s: %s\n", d.Label, d.URL)
		}
	}

	fmt.Printf("\nPhoto: %s\n", v.PhotoSpecs)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
