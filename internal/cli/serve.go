package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Alan-Biju/global-visa/internal/config"
	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/logging"
	"github.com/Alan-Biju/global-visa/internal/store"
	"github.com/Alan-Biju/global-visa/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string
	var offline bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web portal",
		Long:  "Start the HTTP server for the visa portal: the visitor UI, the admin console, and the JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, offline)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: VISA_ADDR or :8080)")
	cmd.Flags().BoolVar(&offline, "offline", false, "serve the built-in dataset without MongoDB")

	return cmd
}

func runServe(addr string, offline bool) error {
	cfg := config.FromEnv()
	logging.Setup(cfg.DevMode)

	if addr != "" {
		cfg.Addr = addr
	}
	if offline {
		cfg.Offline = true
	}

	var dir country.Directory
	var st store.Store

	if cfg.Offline {
		slog.Info("serving built-in dataset", "countries", country.Static().Len())
		dir = country.Static()
	} else {
		mongoStore, err := store.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			_ = mongoStore.Close(context.Background())
		}()

		remote := store.NewRemote(mongoStore)
		go func() {
			if err := remote.Load(context.Background()); err != nil {
				slog.Error("loading country directory", "error", err)
			}
		}()

		dir = remote
		st = mongoStore
	}

	server, err := web.NewServer(dir, st, cfg)
	if err != nil {
		return err
	}

	slog.Info("starting server", "addr", cfg.Addr, "offline", cfg.Offline)
	return server.ListenAndServe(cfg.Addr)
}
