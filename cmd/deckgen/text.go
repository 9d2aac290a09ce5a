// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/detect"
	"github.com/pdiddy/deckgen/internal/input"
	"github.com/pdiddy/deckgen/internal/library"
	"github.com/pdiddy/deckgen/internal/mapper"
	"github.com/pdiddy/deckgen/internal/parser"
	"github.com/pdiddy/deckgen/internal/validate"
	"github.com/pdiddy/deckgen/pkg/types"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate a slide deck specification from text input",
	Long: `Text reads input from a file or inline flag, detects its format,
parses it into a document tree, and maps the tree onto slides under the
selected density profile. The resulting deck specification is written as
YAML (or JSON with --json) to stdout or to --output.

CSV files are treated as tabular input: each record becomes one bullet.

With --check, the generated deck is also run through the content
validator and a text report is printed to stderr.`,
	RunE: runText,
}

func runText(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	inlineText, _ := cmd.Flags().GetString("text")

	if (filePath == "") == (inlineText == "") {
		return fmt.Errorf("exactly one of --file or --text is required")
	}

	densityName, _ := cmd.Flags().GetString("density")
	profile, err := types.DensityByName(densityName)
	if err != nil {
		return err
	}

	presenter, _ := cmd.Flags().GetString("presenter")
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	tree, err := buildTree(cmd, filePath, inlineText)
	if err != nil {
		return err
	}

	slides := mapper.Map(tree, profile, presenter, date)

	deck := types.Deck{
		Title:     tree.Title,
		Presenter: presenter,
		Date:      date,
		Density:   profile.Name,
		Slides:    slides,
	}

	if check, _ := cmd.Flags().GetBool("check"); check {
		if err := checkDeck(slides); err != nil {
			return err
		}
	}

	if deckID, _ := cmd.Flags().GetString("save"); deckID != "" {
		store, err := library.NewStore(libraryConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		path, err := store.SaveDeck(deckID, &deck)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved deck to %s\n", path)
		if _, err := store.Ingest(cmd.Context(), os.Stderr); err != nil {
			return err
		}
		return nil
	}

	return writeDeck(cmd, &deck)
}

func buildTree(cmd *cobra.Command, filePath, inlineText string) (*types.DocumentTree, error) {
	if filePath != "" && strings.EqualFold(filepath.Ext(filePath), ".csv") {
		return input.ReadCSV(filePath)
	}

	raw := inlineText
	if filePath != "" {
		var err error
		raw, err = input.ReadText(filePath)
		if err != nil {
			return nil, err
		}
	}

	formatHint, _ := cmd.Flags().GetString("format")
	format, err := detect.Resolve(formatHint, raw, detect.DefaultWindow)
	if err != nil {
		return nil, err
	}

	return parser.Parse(raw, format)
}

func checkDeck(slides []types.SlideSpec) error {
	v, err := validate.New(validate.Options{})
	if err != nil {
		return err
	}

	issues := v.Validate(validate.FromSlideSpecs(slides))
	report, err := validate.Render(issues, validate.ReportText)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, report)
	return nil
}

func writeDeck(cmd *cobra.Command, deck *types.Deck) error {
	var data []byte
	var err error

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err = json.MarshalIndent(deck, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(deck)
	}
	if err != nil {
		return fmt.Errorf("encoding deck: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing deck file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d slides to %s\n", len(deck.Slides), outPath)
	return nil
}

func init() {
	textCmd.Flags().String("file", "", "input file (text, markdown, or CSV)")
	textCmd.Flags().String("text", "", "inline input text")
	textCmd.Flags().String("format", "", "input format: text, markdown, or auto (default auto)")
	textCmd.Flags().String("presenter", "", "presenter name for the title slide")
	textCmd.Flags().String("date", "", "presentation date (default: today)")
	textCmd.Flags().String("density", "", "density profile: low, medium, or high (default medium)")
	textCmd.Flags().String("output", "", "output path for the deck spec (default: stdout)")
	textCmd.Flags().Bool("json", false, "write JSON instead of YAML")
	textCmd.Flags().Bool("check", false, "run the content validator over the generated deck")
	textCmd.Flags().String("save", "", "save the deck into the library under this ID")
	textCmd.Flags().String("decks-dir", "decks", "directory for saved deck-spec files")
	textCmd.Flags().String("library-dir", "library", "base directory for the library index")

	rootCmd.AddCommand(textCmd)
}
