// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := types.LibraryConfig{
		DecksDir:   filepath.Join(tmpDir, "decks"),
		LibraryDir: filepath.Join(tmpDir, "library"),
		MaxResults: 20,
	}
	if err := os.MkdirAll(cfg.DecksDir, 0o755); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func sampleDeck(title string) *types.Deck {
	return &types.Deck{
		Title:     title,
		Presenter: "Ana",
		Date:      "2026-08-28",
		Density:   "medium",
		Slides: []types.SlideSpec{
			{Kind: types.SlideTitle, Heading: title, Presenter: "Ana", Date: "2026-08-28"},
			{Kind: types.SlideSectionTransition, Heading: "Results"},
			{
				Kind:    types.SlideContent,
				Heading: "Results",
				Elements: []types.ContentBlock{
					types.BulletList("revenue grew", "costs fell"),
					types.Paragraph("margins improved across regions"),
				},
			},
		},
	}
}

func writeDeckFile(t *testing.T, store *Store, id string, deck *types.Deck) {
	t.Helper()
	if _, err := store.SaveDeck(id, deck); err != nil {
		t.Fatal(err)
	}
}

func TestSaveDeckWritesYAML(t *testing.T) {
	store, tmpDir := testSetup(t)

	path, err := store.SaveDeck("q2-review", sampleDeck("Q2 Review"))
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(tmpDir, "decks", "q2-review.yaml") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var deck types.Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		t.Fatal(err)
	}
	if deck.Title != "Q2 Review" || len(deck.Slides) != 3 {
		t.Errorf("round trip lost data: %+v", deck)
	}
}

func TestIngestAndSearch(t *testing.T) {
	store, _ := testSetup(t)
	writeDeckFile(t, store, "q2-review", sampleDeck("Q2 Review"))
	writeDeckFile(t, store, "launch", sampleDeck("Launch Plan"))

	var out bytes.Buffer
	summary, err := store.Ingest(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if !strings.Contains(out.String(), "indexed q2-review") {
		t.Errorf("progress output missing:\n%s", out.String())
	}

	results, err := store.Search(context.Background(), SearchOptions{Query: "revenue"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want a hit per deck, got %d: %+v", len(results), results)
	}
	if results[0].Kind != types.SlideContent {
		t.Errorf("matched slide kind = %q", results[0].Kind)
	}

	// Kind filter.
	results, err = store.Search(context.Background(), SearchOptions{Query: "Results", Kind: "section_transition"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Kind != types.SlideSectionTransition {
			t.Errorf("kind filter leaked %q", r.Kind)
		}
	}

	// Empty query is an error.
	if _, err := store.Search(context.Background(), SearchOptions{Query: "  "}); err == nil {
		t.Error("empty query should fail")
	}
}

func TestIngestSkipsUnchanged(t *testing.T) {
	store, _ := testSetup(t)
	writeDeckFile(t, store, "q2-review", sampleDeck("Q2 Review"))

	if _, err := store.Ingest(context.Background(), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Indexed != 0 {
		t.Fatalf("second pass summary = %+v", summary)
	}
}

func TestIngestReindexesChanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeDeckFile(t, store, "q2-review", sampleDeck("Q2 Review"))

	if _, err := store.Ingest(context.Background(), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	deck := sampleDeck("Q2 Review Updated")
	writeDeckFile(t, store, "q2-review", deck)
	path := filepath.Join(tmpDir, "decks", "q2-review.yaml")
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	decks, err := store.ListDecks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(decks) != 1 || decks[0].Title != "Q2 Review Updated" {
		t.Fatalf("decks = %+v", decks)
	}
}

func TestIngestReportsMalformedFiles(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := filepath.Join(tmpDir, "decks", "broken.yaml")
	if err := os.WriteFile(path, []byte("slides: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	summary, err := store.Ingest(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if !strings.Contains(out.String(), "failed  broken") {
		t.Errorf("failure not reported:\n%s", out.String())
	}
}

func TestExport(t *testing.T) {
	store, _ := testSetup(t)
	writeDeckFile(t, store, "q2-review", sampleDeck("Q2 Review"))

	yamlData, err := store.Export("q2-review", ExportYAML)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML types.Deck
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatal(err)
	}

	jsonData, err := store.Export("q2-review", ExportJSON)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON types.Deck
	if err := json.Unmarshal(jsonData, &fromJSON); err != nil {
		t.Fatal(err)
	}

	if fromYAML.Title != fromJSON.Title || len(fromYAML.Slides) != len(fromJSON.Slides) {
		t.Errorf("YAML and JSON exports disagree")
	}

	if _, err := store.Export("missing", ExportYAML); err == nil {
		t.Error("exporting a missing deck should fail")
	}
}

func TestExportLibrary(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeDeckFile(t, store, "q2-review", sampleDeck("Q2 Review"))
	writeDeckFile(t, store, "roadmap", sampleDeck("Roadmap"))
	if _, err := store.Ingest(context.Background(), io.Discard); err != nil {
		t.Fatal(err)
	}

	path, err := store.ExportLibrary(context.Background(), ExportYAML)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(tmpDir, "library", "index", "export.yaml") {
		t.Errorf("unexpected export path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decks []types.Deck
	if err := yaml.Unmarshal(data, &decks); err != nil {
		t.Fatal(err)
	}
	if len(decks) != 2 {
		t.Fatalf("exported %d decks, want 2", len(decks))
	}
	if decks[0].Title != "Q2 Review" || decks[1].Title != "Roadmap" {
		t.Errorf("unexpected deck order: %s, %s", decks[0].Title, decks[1].Title)
	}
}

func TestParseExportFormat(t *testing.T) {
	for _, tt := range []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"", ExportYAML, false},
		{"yaml", ExportYAML, false},
		{"yml", ExportYAML, false},
		{"json", ExportJSON, false},
		{"xml", "", true},
	} {
		got, err := ParseExportFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseExportFormat(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseExportFormat(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
		}
	}
}
