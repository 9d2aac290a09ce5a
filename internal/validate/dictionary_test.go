// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
		{"teh", "the", 1},   // adjacent transposition
		{"form", "from", 1}, // adjacent transposition
		{"cat", "cart", 1},
		{"slide", "slides", 1},
	}

	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"word", "word", true},
		{"  Word  ", "word", true},
		{"don't", "don't", true},
		{"well-known", "well-known", true},
		{"", "", false},
		{"   ", "", false},
		{"# comment", "", false},
		{"two words", "", false},
		{"with3digit", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeEntry(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeEntry(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuiltinDictionary(t *testing.T) {
	d := newBuiltinDictionary()
	if len(d.words) == 0 {
		t.Fatal("built-in dictionary is empty")
	}
	for _, w := range []string{"the", "project", "status", "Project"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if d.Contains("zzxqv") {
		t.Error("Contains nonsense word, want false")
	}
}

func TestLoadCustomDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	content := "kubernetes\n# a comment line\nGoLang\nbad entry with spaces\n\nmicroservice\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d := newBuiltinDictionary()
	if err := d.LoadCustom(path); err != nil {
		t.Fatal(err)
	}

	for _, w := range []string{"kubernetes", "golang", "microservice"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false after custom load", w)
		}
	}
	if d.Contains("bad entry with spaces") {
		t.Error("malformed entry was accepted")
	}

	if err := d.LoadCustom(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadCustom on a missing file should fail")
	}
}

func TestSuggest(t *testing.T) {
	d := newBuiltinDictionary()

	got := d.Suggest("projct", 2, 5)
	found := false
	for _, s := range got {
		if s == "project" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(projct) = %v, want it to include \"project\"", got)
	}
	if len(got) > 5 {
		t.Errorf("Suggest returned %d results, limit is 5", len(got))
	}

	// Deterministic across calls.
	again := d.Suggest("projct", 2, 5)
	if len(got) != len(again) {
		t.Fatalf("Suggest not deterministic: %v vs %v", got, again)
	}
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("Suggest not deterministic: %v vs %v", got, again)
		}
	}
}
