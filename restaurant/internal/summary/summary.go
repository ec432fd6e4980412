package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/circuit_breaker"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

const (
	Separator    = "@"
	FallbackText = "Error summarizing reviews."
)

var ErrCacheMiss = errors.New("summary cache miss")

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// BuildPrompt joins the review texts with Separator into the summary prompt.
func BuildPrompt(reviews []model.Rating) string {
	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		texts = append(texts, r.Text)
	}
	return fmt.Sprintf(
		"Based on the following restaurant reviews, where each review is separated by a '%s' character, "+
			"create a one-sentence summary of what people think of the restaurant.\n\nHere are the reviews: %s",
		Separator, strings.Join(texts, Separator),
	)
}

type Summarizer struct {
	gen     Generator
	cache   Cache
	ttl     time.Duration
	timeout time.Duration
	cb      circuit_breaker.CircuitBreaker
	log     *zap.Logger
}

// NewSummarizer accepts a nil generator (no model configured) and a nil cache.
func NewSummarizer(gen Generator, cache Cache, timeout, ttl time.Duration, log *zap.Logger) *Summarizer {
	return &Summarizer{
		gen:     gen,
		cache:   cache,
		ttl:     ttl,
		timeout: timeout,
		cb:      circuit_breaker.New(10, 30*time.Second, 0.5, 2),
		log:     log.Named("summary"),
	}
}

func cacheKey(restaurantID string, reviews []model.Rating) string {
	newest := ""
	if len(reviews) > 0 {
		newest = reviews[0].ID
	}
	return fmt.Sprintf("summary:%s:%d:%s", restaurantID, len(reviews), newest)
}

// Summarize returns a one-sentence summary of the reviews.
func (s *Summarizer) Summarize(ctx context.Context, restaurantID string, reviews []model.Rating) (string, error) {
	if s.gen == nil {
		return "", errors.Wrap(errs.ErrConfigurationMissing, "GEMINI_API_KEY not set")
	}

	key := cacheKey(restaurantID, reviews)
	if s.cache != nil {
		text, err := s.cache.Get(ctx, key)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("cache get", zap.Error(err))
		}
	}

	// the caller's own cancellation says nothing about the model's health
	caller := ctx
	if err := caller.Err(); err != nil {
		return "", err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var text string
	err := s.cb.Call(func() error {
		var err error
		text, err = s.gen.Generate(ctx, BuildPrompt(reviews))
		if err != nil && caller.Err() != nil {
			return circuit_breaker.Skip(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			s.log.Warn("gemini unavailable", zap.Stringer("breaker", s.cb.State()))
			return "", errs.ErrBackendUnavailable
		}
		return "", errors.Wrap(err, "generate summary")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			s.log.Warn("cache set", zap.Error(err))
		}
	}
	return text, nil
}
