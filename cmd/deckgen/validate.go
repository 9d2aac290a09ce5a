// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/input"
	"github.com/pdiddy/deckgen/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <presentation-file>",
	Short: "Check a presentation for spelling, grammar, and consistency issues",
	Long: `Validate loads a presentation file (JSON or YAML) and runs four
checks over its slides: spelling against a built-in dictionary, basic
grammar patterns, terminology consistency across slides, and heading
capitalization consistency. Issues are rendered as a text, JSON, or HTML
report.

A custom dictionary (--dict, one word per line) extends the built-in
vocabulary with project-specific terms.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	reportName, _ := cmd.Flags().GetString("report")
	format, err := validate.ParseReportFormat(reportName)
	if err != nil {
		return err
	}

	dictPath, _ := cmd.Flags().GetString("dict")
	v, err := validate.New(validate.Options{DictionaryPath: dictPath})
	if err != nil {
		return err
	}

	presentation, err := input.LoadPresentation(args[0])
	if err != nil {
		return err
	}

	issues := v.Validate(*presentation)
	report, err := validate.Render(issues, format)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		fmt.Print(report)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s report (%d issues) to %s\n", format, len(issues), outPath)
	return nil
}

func init() {
	validateCmd.Flags().String("report", "text", "report format: text, json, or html")
	validateCmd.Flags().String("output", "", "output path for the report (default: stdout)")
	validateCmd.Flags().String("dict", "", "custom dictionary file, one word per line")

	rootCmd.AddCommand(validateCmd)
}
