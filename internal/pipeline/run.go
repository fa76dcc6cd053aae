// Package pipeline provides the high-level orchestration for one matching
// request: normalize both documents, extract requirements and profile in
// parallel, match categories and assemble the result.
package pipeline

import (
	"context"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Request holds the two input documents for one matching call. Both are
// plain UTF-8 text; decoding file formats is the caller's problem.
type Request struct {
	JobText    string `json:"job_text"`
	ResumeText string `json:"resume_text"`
}

// Engine runs matching requests against one validated configuration. It is
// read-only after construction: concurrent Match calls share no mutable
// state.
type Engine struct {
	cfg          *config.Config
	requirements *parsing.Extractor
	profiles     *resume.Extractor
	weights      ranking.Weights
}

// NewEngine validates the configuration once and builds the extractors.
// A nil config selects defaults.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	} else {
		merged := cfg.MergeWithDefaults(*config.Default())
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		cfg = &merged
	}

	norm := normalize.Default()
	vocab := skills.Default()
	if len(cfg.Stopwords) > 0 {
		norm = normalize.New(cfg.Stopwords)
		rebuilt, err := skills.WithNormalizer(norm)
		if err != nil {
			return nil, &config.ConfigurationError{Message: "failed to rebuild vocabulary", Cause: err}
		}
		vocab = rebuilt
	}
	if len(cfg.Skills) > 0 {
		merged, err := vocab.Merge(cfg.Skills)
		if err != nil {
			return nil, &config.ConfigurationError{Message: "malformed skill vocabulary", Cause: err}
		}
		vocab = merged
	}

	// Merged config always carries non-nil knobs; explicit zeros pass
	// through to the extractors unchanged.
	return &Engine{
		cfg: cfg,
		requirements: parsing.NewExtractor(norm, vocab, parsing.Options{
			MinTokens:     *cfg.MinTokens,
			KeywordCount:  *cfg.KeywordCount,
			TriggerWindow: *cfg.TriggerWindow,
		}),
		profiles: resume.NewExtractor(norm, vocab, resume.Options{
			ContextWindow: *cfg.ContextWindow,
		}),
		weights: ranking.Weights(cfg.Weights),
	}, nil
}

// Match runs one end-to-end matching request. Extraction of the two documents
// is independent, so it runs in parallel. The only error path is context
// cancellation; malformed text degrades to empty results instead of failing.
func (e *Engine) Match(ctx context.Context, req Request) (*types.MatchResult, error) {
	jobText := truncate(req.JobText, *e.cfg.MaxInputBytes)
	resumeText := truncate(req.ResumeText, *e.cfg.MaxInputBytes)

	var (
		requirements *types.RequirementSet
		profile      *types.CandidateProfile
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		requirements = e.requirements.Extract(jobText)
		return ctx.Err()
	})
	g.Go(func() error {
		profile = e.profiles.Extract(resumeText)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categories := ranking.MatchCategories(requirements, profile)
	return ranking.BuildResult(requirements, profile, categories, e.weights), nil
}

// ExtractRequirements parses a job description alone, applying the engine's
// input cap. Used by verbose presentation; Match does its own extraction.
func (e *Engine) ExtractRequirements(text string) *types.RequirementSet {
	return e.requirements.Extract(truncate(text, *e.cfg.MaxInputBytes))
}

// ExtractProfile parses a resume alone, applying the engine's input cap.
func (e *Engine) ExtractProfile(text string) *types.CandidateProfile {
	return e.profiles.Extract(truncate(text, *e.cfg.MaxInputBytes))
}

// Run is a convenience wrapper for one-shot callers: build an engine, match,
// discard.
func Run(ctx context.Context, req Request, cfg *config.Config) (*types.MatchResult, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Match(ctx, req)
}

// truncate caps text at max bytes without splitting a rune.
func truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
