// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Turn raw text into structured slide decks",
	Long: `deckgen structures plain text and markdown into slide deck specifications.
It detects the input format, parses it into a document tree, and maps the
tree onto slides under a configurable content density profile. A separate
validator checks finished presentations for spelling, grammar, and
consistency issues.

Each operation is a subcommand: text generates a deck from input text,
validate checks a presentation file, library indexes and searches saved
decks, and serve exposes the pipeline over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	viper.SetEnvPrefix("DECKGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
