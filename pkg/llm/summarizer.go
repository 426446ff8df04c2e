package llm

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
)

// summarySystemPrompt frames the model as a review-savvy marketer.
const summarySystemPrompt = "리뷰를 요약하는 유능한 마케터야."

// SummarizerConfig tunes the summarization call.
type SummarizerConfig struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

// Summarizer turns a rendered review prompt into free text. The call
// is opaque to the pipeline: failures propagate as a terminal error
// for the request and retry policy, if any, lives here, not in the
// core.
type Summarizer struct {
	client Client
	cfg    SummarizerConfig
}

// NewSummarizer builds a Summarizer on the given client.
func NewSummarizer(client Client, cfg SummarizerConfig) *Summarizer {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	return &Summarizer{client: client, cfg: cfg}
}

// Summarize sends the prompt and returns the generated text.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	temp := s.cfg.Temperature
	resp, err := s.client.CreateMessage(ctx, MessageRequest{
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		System:      summarySystemPrompt,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: summarize")
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", eris.Errorf("llm: summarize returned no text content (stop reason %s)", resp.StopReason)
	}

	resp.Usage.Log(s.cfg.Model, "summarize")
	return text, nil
}
