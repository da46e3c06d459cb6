// Package extract turns a raw document into a list of practice questions
// by fanning document chunks out to a model provider and normalizing the
// structured output.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/psinha/quizforge/internal/chunk"
	"github.com/psinha/quizforge/internal/llm"
	"github.com/psinha/quizforge/internal/quiz"
)

const (
	// DefaultConcurrency bounds how many chunks are in flight at once.
	DefaultConcurrency = 4

	// DefaultMaxTokens is generous: a 12k-char chunk rarely yields more
	// than a few dozen questions.
	DefaultMaxTokens = 8192

	// DefaultTemperature keeps extraction close to deterministic.
	DefaultTemperature = 0.2
)

// Options tune one extraction run. The zero value selects sane defaults.
type Options struct {
	ChunkBudget int
	Concurrency int
	MaxTokens   int
	Temperature float64
}

func (o Options) withDefaults() Options {
	if o.ChunkBudget <= 0 {
		o.ChunkBudget = chunk.DefaultBudget
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Temperature == 0 {
		o.Temperature = DefaultTemperature
	}
	return o
}

// Extractor runs the extraction pipeline against one provider.
type Extractor struct {
	provider llm.Provider
	opts     Options
}

// New returns an Extractor over the given provider.
func New(provider llm.Provider, opts Options) *Extractor {
	return &Extractor{provider: provider, opts: opts.withDefaults()}
}

// Run extracts questions from the document text. Chunks are processed
// concurrently; a chunk whose call or parse fails is logged and skipped so
// one bad segment cannot sink the run. Questions come back in chunk order
// with fresh IDs assigned. An empty result with a nil error means the
// document yielded nothing usable.
func (e *Extractor) Run(ctx context.Context, text string) ([]quiz.Question, error) {
	chunks := chunk.Split(text, e.opts.ChunkBudget)
	if len(chunks) == 0 {
		return nil, nil
	}

	perChunk := make([][]quiz.Question, len(chunks))
	sem := make(chan struct{}, e.opts.Concurrency)
	var wg sync.WaitGroup

	for i, c := range chunks {
		wg.Add(1)
		go func(pos int, segment string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			qs, err := e.extractChunk(ctx, segment)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: chunk %d/%d failed: %v\n", pos+1, len(chunks), err)
				return
			}
			perChunk[pos] = qs
		}(i, c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []quiz.Question
	stamp := time.Now().UnixMilli()
	for _, qs := range perChunk {
		for _, q := range qs {
			q.ID = fmt.Sprintf("%d-%d", stamp, len(merged))
			merged = append(merged, q)
		}
	}
	return merged, nil
}

// extractChunk runs one model call and normalizes its output. Truncated or
// malformed responses go through RepairJSON before being given up on.
func (e *Extractor) extractChunk(ctx context.Context, segment string) ([]quiz.Question, error) {
	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(segment),
		Schema:      QuestionsSchema,
		MaxTokens:   e.opts.MaxTokens,
		Temperature: e.opts.Temperature,
	})

	var content json.RawMessage
	switch {
	case err == nil:
		content = resp.Content
	default:
		// Truncated and schema-invalid responses still carry content worth
		// repairing; anything else is a hard chunk failure.
		var truncated *llm.ErrMaxTokensExceeded
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &truncated) {
			content = truncated.Content
		} else if errors.As(err, &invalid) {
			content = invalid.Content
		} else {
			return nil, err
		}
	}

	var out chunkOutput
	if jerr := json.Unmarshal(content, &out); jerr != nil {
		repaired := RepairJSON(string(content))
		if jerr = json.Unmarshal([]byte(repaired), &out); jerr != nil {
			if err != nil {
				return nil, err
			}
			return nil, &llm.ErrInvalidResponse{Content: content, Err: jerr}
		}
	}

	var qs []quiz.Question
	for _, raw := range out.Questions {
		if q, ok := normalizeQuestion(raw); ok {
			qs = append(qs, q)
		}
	}
	return qs, nil
}
