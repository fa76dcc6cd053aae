// Package config provides configuration loading and validation for the
// matching engine. All fields are optional; missing values fall back to
// defaults. Validation happens once at load time, before any matching call.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/types"
)

// weightTolerance is the floating-point slack allowed when checking that
// category weights sum to 1.0.
const weightTolerance = 1e-6

// Config holds the caller-supplied knobs of the matching engine.
type Config struct {
	// Weights maps category names to their share of the composite score.
	// Must sum to 1.0 when supplied.
	Weights map[string]float64 `json:"weights,omitempty"`

	// Skills extends the built-in vocabulary: canonical id -> aliases.
	Skills map[string][]string `json:"skills,omitempty"`

	// Stopwords are removed during normalization in addition to the built-in
	// list.
	Stopwords []string `json:"stopwords,omitempty"`

	// ContextWindow is the token window kept around each skill mention in a
	// resume as its evidence snippet. Zero keeps only the mention itself.
	ContextWindow *int `json:"context_window,omitempty" validate:"omitempty,gte=0,lte=50"`

	// MinTokens is the token count below which a document is classified as
	// underspecified. Zero disables the classification entirely.
	MinTokens *int `json:"min_tokens,omitempty" validate:"omitempty,gte=0,lte=10000"`

	// KeywordCount is the number of top-frequency keywords extracted from a
	// job description. Zero disables keyword extraction.
	KeywordCount *int `json:"keyword_count,omitempty" validate:"omitempty,gte=0,lte=200"`

	// TriggerWindow is the token window searched for priority trigger
	// phrases around each skill mention in a job description.
	TriggerWindow *int `json:"trigger_window,omitempty" validate:"omitempty,gte=0,lte=100"`

	// MaxInputBytes caps each input document; longer text is truncated
	// before extraction to bound cost. Zero removes the cap.
	MaxInputBytes *int `json:"max_input_bytes,omitempty" validate:"omitempty,gte=0"`
}

// The numeric knobs are pointers so an explicit zero in a config file is
// distinguishable from an absent field: nil means "use the default", zero
// means "disable".
func intPtr(v int) *int { return &v }

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Weights: map[string]float64{
			types.CategorySkills:     0.5,
			types.CategoryExperience: 0.25,
			types.CategoryEducation:  0.15,
			types.CategoryKeywords:   0.10,
		},
		ContextWindow: intPtr(5),
		MinTokens:     intPtr(8),
		KeywordCount:  intPtr(20),
		TriggerWindow: intPtr(8),
		MaxInputBytes: intPtr(64 * 1024),
	}
}

// Load reads a JSON config file, fills missing fields from defaults and
// validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, &ConfigurationError{Message: "config path is empty"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Message: "failed to parse config JSON", Cause: err}
	}
	merged := cfg.MergeWithDefaults(*Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. A numeric field set to an explicit zero is kept, not replaced.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if len(result.Weights) == 0 {
		result.Weights = defaults.Weights
	}
	if result.ContextWindow == nil {
		result.ContextWindow = defaults.ContextWindow
	}
	if result.MinTokens == nil {
		result.MinTokens = defaults.MinTokens
	}
	if result.KeywordCount == nil {
		result.KeywordCount = defaults.KeywordCount
	}
	if result.TriggerWindow == nil {
		result.TriggerWindow = defaults.TriggerWindow
	}
	if result.MaxInputBytes == nil {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	return result
}

// Validate checks the configuration. It fails fast so misuse is caught at
// load time rather than surfacing as odd scores later.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigurationError{Message: "invalid field value", Cause: err}
	}

	if len(c.Weights) > 0 {
		known := make(map[string]bool, len(types.Categories))
		for _, name := range types.Categories {
			known[name] = true
		}
		sum := 0.0
		for name, w := range c.Weights {
			if !known[name] {
				return &ConfigurationError{Message: fmt.Sprintf("unknown weight category %q", name)}
			}
			if w < 0 || w > 1 {
				return &ConfigurationError{Message: fmt.Sprintf("weight for %q must be in [0,1], got %v", name, w)}
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return &ConfigurationError{Message: fmt.Sprintf("weights must sum to 1.0, got %v", sum)}
		}
	}

	for canonical, aliases := range c.Skills {
		if canonical == "" {
			return &ConfigurationError{Message: "skill vocabulary entry has empty canonical id"}
		}
		for _, alias := range aliases {
			if alias == "" {
				return &ConfigurationError{Message: fmt.Sprintf("skill %q has an empty alias", canonical)}
			}
		}
	}
	return nil
}
