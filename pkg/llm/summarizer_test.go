package llm

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	req  MessageRequest
	resp *MessageResponse
	err  error
}

func (f *fakeClient) CreateMessage(_ context.Context, req MessageRequest) (*MessageResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestSummarize(t *testing.T) {
	client := &fakeClient{
		resp: &MessageResponse{
			Content: []ContentBlock{
				{Type: "text", Text: "#좋아요 "},
				{Type: "text", Text: "#추천"},
			},
			StopReason: "end_turn",
		},
	}
	s := NewSummarizer(client, SummarizerConfig{Model: "claude-haiku-4-5-20251001", Temperature: 0.5})

	text, err := s.Summarize(context.Background(), "1번째고객: 좋아요")
	require.NoError(t, err)
	assert.Equal(t, "#좋아요 #추천", text)

	assert.Equal(t, "claude-haiku-4-5-20251001", client.req.Model)
	assert.Equal(t, summarySystemPrompt, client.req.System)
	require.Len(t, client.req.Messages, 1)
	assert.Equal(t, "user", client.req.Messages[0].Role)
	assert.Equal(t, "1번째고객: 좋아요", client.req.Messages[0].Content)
	require.NotNil(t, client.req.Temperature)
	assert.InDelta(t, 0.5, *client.req.Temperature, 0.001)
}

func TestSummarize_DefaultMaxTokens(t *testing.T) {
	client := &fakeClient{
		resp: &MessageResponse{Content: []ContentBlock{{Type: "text", Text: "ok"}}},
	}
	s := NewSummarizer(client, SummarizerConfig{Model: "m"})

	_, err := s.Summarize(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), client.req.MaxTokens)
}

func TestSummarize_SkipsNonTextBlocks(t *testing.T) {
	client := &fakeClient{
		resp: &MessageResponse{
			Content: []ContentBlock{
				{Type: "tool_use"},
				{Type: "text", Text: "  #요약  "},
			},
		},
	}
	s := NewSummarizer(client, SummarizerConfig{Model: "m"})

	text, err := s.Summarize(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "#요약", text)
}

func TestSummarize_EmptyContent(t *testing.T) {
	client := &fakeClient{
		resp: &MessageResponse{StopReason: "max_tokens"},
	}
	s := NewSummarizer(client, SummarizerConfig{Model: "m"})

	_, err := s.Summarize(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestSummarize_ClientError(t *testing.T) {
	client := &fakeClient{err: eris.New("overloaded_error")}
	s := NewSummarizer(client, SummarizerConfig{Model: "m"})

	_, err := s.Summarize(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm: summarize")
}
