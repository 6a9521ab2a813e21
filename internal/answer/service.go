package answer

import (
	"context"
	"errors"

	"github.com/storycave669-rgb/Project-DEVI/internal/cache"
	"github.com/storycave669-rgb/Project-DEVI/internal/llm"
	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/models"
	"github.com/storycave669-rgb/Project-DEVI/internal/search"
)

// Searcher retrieves web sources for a query. Implementations degrade to an
// empty list on any failure.
type Searcher interface {
	Search(ctx context.Context, query string, opts search.Options) []models.Source
}

// Service orchestrates one question through the pipeline: classify, search,
// prompt, generate, normalize, fall back, assemble.
type Service struct {
	searcher  Searcher
	generator llm.Generator
	cache     *cache.SearchCache
}

func NewService(searcher Searcher, generator llm.Generator, searchCache *cache.SearchCache) *Service {
	return &Service{searcher: searcher, generator: generator, cache: searchCache}
}

// Answer runs the full pipeline for one validated question. It always
// returns a populated response; provider failures resolve to the next
// safety net (empty sources message, then fallback templates).
func (s *Service) Answer(ctx context.Context, question string, mode Mode) models.AskResponse {
	sources := s.cache.Get(ctx, question)
	if sources == nil {
		sources = s.searcher.Search(ctx, question, search.Options{})
		s.cache.Set(ctx, question, sources)
	}

	if len(sources) == 0 {
		logger.Log.WithField("mode", mode).Info("no sources found")
		return NoSourcesResponse(mode)
	}

	titles := SectionTitles(mode)
	sections, ok := s.generateSections(ctx, question, mode, titles, sources)
	if !ok {
		sections = Fallback(mode, sources)
	}

	return Assemble(sections, sources, mode)
}

// generateSections asks the model for structured output and normalizes it.
// Any failure, including an unconfigured provider, reports ok=false.
func (s *Service) generateSections(ctx context.Context, question string, mode Mode, titles []string, sources []models.Source) ([]models.Section, bool) {
	grounding := BuildContext(sources)
	prompt := BuildPrompt(mode, titles, grounding, question, len(sources))

	raw, err := s.generator.Generate(ctx, prompt, true)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			logger.Log.Debug("generation skipped: provider not configured")
		} else {
			logger.Log.WithError(err).Warn("generation failed, using fallback")
		}
		return nil, false
	}

	sections, ok := Normalize(raw, titles, len(sources))
	if !ok {
		logger.Log.Warn("generation output unusable, using fallback")
		return nil, false
	}
	return sections, true
}
