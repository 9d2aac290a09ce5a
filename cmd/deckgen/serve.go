// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/api"
	"github.com/pdiddy/deckgen/internal/library"
	"github.com/pdiddy/deckgen/internal/secrets"
	"github.com/pdiddy/deckgen/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline and validator over HTTP",
	Long: `Serve starts an HTTP server exposing deck generation and validation:
POST /api/generate, POST /api/validate, and read-only library endpoints
when a deck library is configured. Set api_key in the config file, the
DECKGEN_API_KEY environment variable, or a .secrets/api-key file to
require bearer authentication.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	loaded, err := secrets.Load(".secrets/")
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	cfg := types.ServerConfig{
		Addr:   addr,
		APIKey: loaded.Get(secrets.APIKeyFile, viper.GetString("api_key")),
	}

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		log.Warn("library unavailable, disabling library routes", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	server := api.NewServer(store, log, cfg)

	log.Info("starting server", "addr", cfg.Addr, "auth", cfg.APIKey != "")
	return http.ListenAndServe(cfg.Addr, server)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("decks-dir", "decks", "directory containing deck-spec YAML files")
	serveCmd.Flags().String("library-dir", "library", "base directory for the library index")
	serveCmd.Flags().Int("max-results", 20, "maximum number of search results")

	rootCmd.AddCommand(serveCmd)
}
