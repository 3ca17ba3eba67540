package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortscope/shortscope/pkg/config"
)

// newTestClassifier returns a classifier pointed at a server answering every
// completion with the given content
func newTestClassifier(t *testing.T, content string, capture *string) *Classifier {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			var req openai.ChatCompletionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 2)
			*capture = req.Messages[1].Content
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	t.Cleanup(server.Close)

	return NewClassifier(config.LLMConfig{
		Endpoint:  server.URL + "/v1",
		APIKey:    "test-key",
		Model:     "gpt-4o-mini",
		MaxTokens: 10,
		Timeout:   5 * time.Second,
	})
}

func TestClassifier_Related(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		related bool
	}{
		{"plain yes", "YES", true},
		{"lowercase yes", "yes", true},
		{"yes with whitespace", "  YES\n", true},
		{"plain no", "NO", false},
		{"chatty answer treated as no", "I think this is about the conflict", false},
		{"empty answer treated as no", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := newTestClassifier(t, tt.answer, nil)
			related, err := classifier.Related(context.Background(), "Ukraine",
				Item{Title: "Frontline report", Channel: "News"})
			require.NoError(t, err)
			assert.Equal(t, tt.related, related)
		})
	}
}

func TestClassifier_RelatedPromptContents(t *testing.T) {
	var prompt string
	classifier := newTestClassifier(t, "NO", &prompt)

	_, err := classifier.Related(context.Background(), "Myanmar",
		Item{Title: "Daily vlog", Channel: "SomeChannel", Transcript: "today we visit the market"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Myanmar")
	assert.Contains(t, prompt, "Title: Daily vlog")
	assert.Contains(t, prompt, "Channel: SomeChannel")
	assert.Contains(t, prompt, "Transcript: today we visit the market")
	assert.Contains(t, prompt, "Answer YES or NO.")
}

func TestClassifier_RelatedOmitsAbsentFields(t *testing.T) {
	var prompt string
	classifier := newTestClassifier(t, "NO", &prompt)

	_, err := classifier.Related(context.Background(), "Mexico", Item{})
	require.NoError(t, err)

	assert.NotContains(t, prompt, "Title:")
	assert.NotContains(t, prompt, "Channel:")
	assert.NotContains(t, prompt, "Transcript:")
	assert.Contains(t, prompt, "No title, channel or transcript")
}

func TestClassifier_Region(t *testing.T) {
	regions := []string{"Palestine", "Myanmar", "Ukraine", "Mexico"}

	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"exact match", "Ukraine", "Ukraine"},
		{"case insensitive", "ukraine", "Ukraine"},
		{"trailing period", "Palestine.", "Palestine"},
		{"quoted", `"Myanmar"`, "Myanmar"},
		{"none", "NONE", ""},
		{"unknown region treated as none", "Atlantis", ""},
		{"chatty answer treated as none", "It is probably about Ukraine", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := newTestClassifier(t, tt.answer, nil)
			region, err := classifier.Region(context.Background(), regions, Item{Title: "clip"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, region)
		})
	}
}

func TestClassifier_RegionPromptListsConflicts(t *testing.T) {
	var prompt string
	classifier := newTestClassifier(t, "NONE", &prompt)

	_, err := classifier.Region(context.Background(), []string{"Palestine", "Ukraine"}, Item{Title: "clip"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Palestine, Ukraine")
	assert.Contains(t, prompt, "or NONE")
}

func TestClassifier_TruncatesLongTranscript(t *testing.T) {
	var prompt string
	classifier := newTestClassifier(t, "NO", &prompt)

	long := strings.Repeat("word ", 1000) // 5000 chars
	_, err := classifier.Related(context.Background(), "Ukraine", Item{Transcript: long})
	require.NoError(t, err)

	assert.Contains(t, prompt, "...")
	assert.Less(t, len(prompt), 3000)
}

func TestClassifier_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	classifier := NewClassifier(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	})

	_, err := classifier.Related(context.Background(), "Ukraine", Item{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}
