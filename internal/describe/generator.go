package describe

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calegrey/relister/internal/metrics"
	domain "github.com/calegrey/relister/pkg/types"
)

const (
	defaultMaxTokens   = 512
	defaultTemperature = 0.4

	systemMsg = "You write factual, compact eBay listing descriptions for secondhand books, magazines and media."
)

// Generator produces listing descriptions from resolved item data. A
// backend failure degrades to an empty description so draft assembly
// never blocks on the LLM.
type Generator struct {
	backend     LLMBackend
	logger      *log.Logger
	maxTokens   int
	temperature float64
}

// GeneratorOption configures the Generator.
type GeneratorOption func(*Generator)

// WithGeneratorLogger sets the logger.
func WithGeneratorLogger(l *log.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithMaxTokens overrides the completion token cap.
func WithMaxTokens(n int) GeneratorOption {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) GeneratorOption {
	return func(g *Generator) {
		g.temperature = t
	}
}

// NewGenerator creates a Generator on the given backend. A nil backend
// is allowed; Generate then always returns an empty description.
func NewGenerator(backend LLMBackend, opts ...GeneratorOption) *Generator {
	g := &Generator{
		backend:     backend,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the prompt and calls the backend. Any failure along
// the way returns ("", nil); the caller keeps its title and price.
func (g *Generator) Generate(
	ctx context.Context,
	meta *domain.ProductMetadata,
	addon *domain.AddonInference,
	condition string,
	price float64,
) (string, error) {
	if g.backend == nil {
		return "", nil
	}

	prompt, err := BuildPrompt(meta, addon, condition, price)
	if err != nil {
		g.warn("building description prompt failed", err)
		return "", nil
	}

	start := time.Now()
	resp, err := g.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	metrics.DescribeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DescribeFailuresTotal.Inc()
		g.warn("description generation failed", err)
		return "", nil
	}

	return strings.TrimSpace(resp.Content), nil
}

func (g *Generator) warn(msg string, err error) {
	if g.logger != nil {
		g.logger.Warn(msg, "backend", g.backend.Name(), "err", err)
	}
}
