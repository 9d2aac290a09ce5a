// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// DensityProfile fixes how much content one slide may hold. Profiles are
// immutable and supplied by the caller.
type DensityProfile struct {
	// Name is the profile identifier: low, medium, or high.
	Name string `json:"name" yaml:"name"`

	// MaxBullets is the maximum number of list items per slide.
	MaxBullets int `json:"max_bullets" yaml:"max_bullets"`

	// MaxChars is the maximum character count per text block.
	MaxChars int `json:"max_chars" yaml:"max_chars"`
}

// Recognized density profiles.
var (
	DensityLow    = DensityProfile{Name: "low", MaxBullets: 4, MaxChars: 300}
	DensityMedium = DensityProfile{Name: "medium", MaxBullets: 6, MaxChars: 400}
	DensityHigh   = DensityProfile{Name: "high", MaxBullets: 8, MaxChars: 500}
)

// DensityByName resolves a profile name. Unknown names are an error at
// the caller's boundary; the mapper itself never sees one.
func DensityByName(name string) (DensityProfile, error) {
	switch name {
	case "low":
		return DensityLow, nil
	case "medium", "":
		return DensityMedium, nil
	case "high":
		return DensityHigh, nil
	default:
		return DensityProfile{}, fmt.Errorf("unknown density profile %q (want low, medium, or high)", name)
	}
}

// ParserConfig holds settings for format detection and parsing.
type ParserConfig struct {
	// DetectionWindow is the number of leading non-empty lines the
	// format detector inspects (default 10).
	DetectionWindow int `json:"detection_window" yaml:"detection_window"`
}

// MapperConfig holds settings for the density mapper.
type MapperConfig struct {
	// Density selects the default profile name when the caller does not
	// pass one explicitly.
	Density string `json:"density" yaml:"density"`
}

// ValidatorConfig holds settings for the content validator.
type ValidatorConfig struct {
	// DictionaryPath points at an optional custom dictionary file, one
	// word per line.
	DictionaryPath string `json:"dictionary_path,omitempty" yaml:"dictionary_path,omitempty"`
}

// LibraryConfig holds settings for the deck library.
type LibraryConfig struct {
	// DecksDir is the directory scanned for deck-spec YAML files.
	DecksDir string `json:"decks_dir" yaml:"decks_dir"`

	// LibraryDir is the base directory for the index (contains index/).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8085").
	Addr string `json:"addr" yaml:"addr"`

	// APIKey, when set, requires a matching bearer token on /api routes.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Parser    ParserConfig    `json:"parser" yaml:"parser"`
	Mapper    MapperConfig    `json:"mapper" yaml:"mapper"`
	Validator ValidatorConfig `json:"validator" yaml:"validator"`
	Library   LibraryConfig   `json:"library" yaml:"library"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}
