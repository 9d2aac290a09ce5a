// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/library"
	"github.com/pdiddy/deckgen/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Index, search, and export saved deck specifications",
	Long: `Library manages a local SQLite index over deck-spec YAML files. Use
--ingest to scan the decks directory and index new or changed files,
--query to run a full-text search over slide content, and --export to
serialize one deck. Without any of these, the deck catalog is listed.`,
	RunE: runLibrary,
}

func runLibrary(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if ingest, _ := cmd.Flags().GetBool("ingest"); ingest {
		summary, err := store.Ingest(ctx, os.Stdout)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d deck(s) failed indexing", summary.Failed)
		}
		return nil
	}

	if deckID, _ := cmd.Flags().GetString("export"); deckID != "" {
		if deckID == "all" {
			return runLibraryExportAll(ctx, cmd, store)
		}
		return runLibraryExport(cmd, store, deckID)
	}

	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	if query != "" {
		return runLibrarySearch(ctx, cmd, store, query)
	}

	return runLibraryList(ctx, cmd, store)
}

func runLibraryExport(cmd *cobra.Command, store *library.Store, deckID string) error {
	formatName, _ := cmd.Flags().GetString("format")
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput && formatName == "" {
		formatName = "json"
	}
	format, err := library.ParseExportFormat(formatName)
	if err != nil {
		return err
	}

	data, err := store.Export(deckID, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runLibraryExportAll(ctx context.Context, cmd *cobra.Command, store *library.Store) error {
	formatName, _ := cmd.Flags().GetString("format")
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput && formatName == "" {
		formatName = "json"
	}
	format, err := library.ParseExportFormat(formatName)
	if err != nil {
		return err
	}

	path, err := store.ExportLibrary(ctx, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported library to %s\n", path)
	return nil
}

func runLibrarySearch(ctx context.Context, cmd *cobra.Command, store *library.Store, query string) error {
	kind, _ := cmd.Flags().GetString("kind")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	results, err := store.Search(ctx, library.SearchOptions{
		Query:      query,
		Kind:       kind,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-6s  %-18s  %-30s  %s\n",
		"Rank", "Deck", "Slide", "Kind", "Heading", "Snippet")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		deck := r.DeckID
		if len(deck) > 20 {
			deck = deck[:17] + "..."
		}
		heading := r.Heading
		if len(heading) > 30 {
			heading = heading[:27] + "..."
		}
		snippet := strings.ReplaceAll(r.Snippet, "\n", " ")
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-6d  %-18s  %-30s  %s\n",
			i+1, deck, r.Index, r.Kind, heading, snippet)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func runLibraryList(ctx context.Context, cmd *cobra.Command, store *library.Store) error {
	decks, err := store.ListDecks(ctx)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(decks)
	}

	if len(decks) == 0 {
		fmt.Println("Library is empty. Run with --ingest after generating decks.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-40s  %-10s  %-8s  %s\n",
		"ID", "Title", "Date", "Density", "Slides")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, d := range decks {
		title := d.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-40s  %-10s  %-8s  %d\n",
			d.ID, title, d.Date, d.Density, d.SlideCount)
	}
	return nil
}

func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	decksDir, _ := cmd.Flags().GetString("decks-dir")
	if decksDir == "" {
		decksDir = "decks"
	}
	libraryDir, _ := cmd.Flags().GetString("library-dir")
	if libraryDir == "" {
		libraryDir = "library"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.LibraryConfig{
		DecksDir:   decksDir,
		LibraryDir: libraryDir,
		MaxResults: maxResults,
	}
}

func init() {
	libraryCmd.Flags().String("decks-dir", "decks", "directory containing deck-spec YAML files")
	libraryCmd.Flags().String("library-dir", "library", "base directory for the library index")
	libraryCmd.Flags().Bool("ingest", false, "index new and changed deck files")
	libraryCmd.Flags().String("query", "", "full-text search query over slide content")
	libraryCmd.Flags().String("kind", "", "filter results by slide kind")
	libraryCmd.Flags().Int("max-results", 20, "maximum number of search results")
	libraryCmd.Flags().String("export", "", "deck ID to export, or \"all\" to dump the whole library")
	libraryCmd.Flags().String("format", "", "export format: yaml or json")
	libraryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(libraryCmd)
}
