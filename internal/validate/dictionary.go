// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	_ "embed"
)

//go:embed words.txt
var builtinWords string

// Dictionary is an immutable spelling vocabulary: the built-in word list
// optionally augmented by a user-supplied custom dictionary. Once built
// it is read-only and safe to share across validator instances.
type Dictionary struct {
	words  map[string]struct{}
	sorted []string
}

// newBuiltinDictionary parses the embedded word list.
func newBuiltinDictionary() *Dictionary {
	d := &Dictionary{words: make(map[string]struct{})}
	for _, line := range strings.Split(builtinWords, "\n") {
		if w, ok := normalizeEntry(line); ok {
			d.words[w] = struct{}{}
		}
	}
	d.reindex()
	return d
}

// LoadCustom merges a custom dictionary file into the vocabulary: one
// word per line, UTF-8. Malformed lines are skipped, not fatal. The file
// is opened, read, and closed here; an unreadable file is an error.
func (d *Dictionary) LoadCustom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening custom dictionary: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w, ok := normalizeEntry(scanner.Text()); ok {
			d.words[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading custom dictionary: %w", err)
	}
	d.reindex()
	return nil
}

// normalizeEntry lowercases a dictionary line and rejects malformed
// entries: blanks, comments, and lines containing anything but letters,
// hyphens, and apostrophes.
func normalizeEntry(line string) (string, bool) {
	w := strings.TrimSpace(line)
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return "", false
		}
	}
	return strings.ToLower(w), true
}

func (d *Dictionary) reindex() {
	d.sorted = d.sorted[:0]
	for w := range d.words {
		d.sorted = append(d.sorted, w)
	}
	sort.Strings(d.sorted)
}

// Contains reports whether word (case-insensitive) is known.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Suggest returns the closest known words within the given edit
// distance, ordered by distance then alphabetically, capped at limit.
func (d *Dictionary) Suggest(word string, maxDist, limit int) []string {
	w := strings.ToLower(word)

	type candidate struct {
		word string
		dist int
	}
	var found []candidate
	for _, known := range d.sorted {
		diff := len(known) - len(w)
		if diff > maxDist || diff < -maxDist {
			continue
		}
		if dist := editDistance(w, known); dist <= maxDist {
			found = append(found, candidate{known, dist})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})

	var out []string
	for _, c := range found {
		if len(out) >= limit {
			break
		}
		out = append(out, c.word)
	}
	return out
}

// editDistance computes the Damerau-Levenshtein distance between two
// strings (insertions, deletions, substitutions, adjacent swaps).
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := prev2[j-2] + 1; t < cur[j] {
					cur[j] = t
				}
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
