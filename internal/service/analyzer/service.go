// Package analyzer orchestrates the Dutch text analysis pipeline:
// split into sentences, prompt the LLM per sentence, parse each reply.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dutchhelper-backend/internal/domain"
)

// completer is the narrow capability this service needs from the LLM client.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service runs grammatical analysis of Dutch text through an LLM.
// It is stateless; every call is independent.
type Service struct {
	log *slog.Logger
	llm completer
}

// NewService creates an analyzer Service.
func NewService(log *slog.Logger, llm completer) *Service {
	return &Service{
		log: log.With("service", "analyzer"),
		llm: llm,
	}
}

// AnalyzeText splits text into sentences and analyzes each one in source
// order. Blank text returns an empty result without any upstream call.
//
// Sentences are processed strictly sequentially; callers wanting parallelism
// are expected to fan out over AnalyzeSentence themselves. Any upstream
// failure aborts the whole request: no partial results are returned, so the
// sentence count of a successful response always matches the split.
func (s *Service) AnalyzeText(ctx context.Context, text string) (*domain.TextAnalysis, error) {
	result := &domain.TextAnalysis{
		OriginalText: text,
		Sentences:    []domain.SentenceAnalysis{},
	}

	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	sentences := domain.SplitSentences(text)
	s.log.InfoContext(ctx, "text split into sentences", slog.Int("count", len(sentences)))

	for i, sentence := range sentences {
		analysis, err := s.analyzeSentence(ctx, sentence)
		if err != nil {
			return nil, fmt.Errorf("sentence %d/%d: %w", i+1, len(sentences), err)
		}
		result.Sentences = append(result.Sentences, analysis)
	}

	return result, nil
}

// AnalyzeSentence analyzes one sentence. A blank sentence is a validation
// error and never reaches the upstream.
func (s *Service) AnalyzeSentence(ctx context.Context, sentence string) (*domain.SentenceAnalysis, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, domain.NewValidationError("sentence", "cannot be empty")
	}

	analysis, err := s.analyzeSentence(ctx, sentence)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// analyzeSentence runs the single-sentence pipeline: prompt, complete, parse.
// Upstream failures propagate; unparsable replies degrade to an analysis
// with no components.
func (s *Service) analyzeSentence(ctx context.Context, sentence string) (domain.SentenceAnalysis, error) {
	reply, err := s.llm.Complete(ctx, buildPrompt(sentence))
	if err != nil {
		return domain.SentenceAnalysis{}, err
	}

	components, translation := parseReply(reply)
	if components == nil && translation == nil {
		s.log.WarnContext(ctx, "llm reply not parseable, returning empty components",
			slog.String("sentence", sentence),
		)
	}
	s.log.InfoContext(ctx, "sentence analyzed",
		slog.String("sentence", sentence),
		slog.Int("components", len(components)),
	)

	if components == nil {
		components = []domain.SentenceComponent{}
	}
	return domain.SentenceAnalysis{
		Sentence:            sentence,
		SentenceTranslation: translation,
		Components:          components,
	}, nil
}
