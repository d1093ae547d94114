package cli

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alan-Biju/global-visa/internal/config"
	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/store"
)

func newSeedCmd() *cobra.Command {
	var uri, database string
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upload the built-in dataset to MongoDB",
		Long:  "Upload the built-in country dataset to MongoDB as one batch of upserts. Existing entries with the same slug are overwritten.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, uri, database, yes)
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "MongoDB URI (default: VISA_MONGO_URI)")
	cmd.Flags().StringVar(&database, "database", "", "database name (default: VISA_MONGO_DATABASE)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func runSeed(cmd *cobra.Command, uri, database string, yes bool) error {
	cfg := config.FromEnv()
	if uri == "" {
		uri = cfg.MongoURI
	}
	if database == "" {
		database = cfg.MongoDatabase
	}

	entries := map[string]country.CountryData{}
	for _, e := range country.Static().List() {
		entries[e.Slug] = e.Data
	}

	if !yes {
		cmd.Printf("Seed %d countries into %s/%s? Existing entries will be overwritten. [y/N] ", len(entries), uri, database)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	mongoStore, err := store.ConnectMongo(uri, database)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		_ = mongoStore.Close(context.Background())
	}()

	if err := mongoStore.SeedAll(ctx, entries); err != nil {
		return err
	}

	cmd.Printf("Seeded %d countries.\n", len(entries))
	return nil
}
