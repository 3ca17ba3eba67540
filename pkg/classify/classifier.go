// Package classify wraps an OpenAI-compatible LLM as a conflict-content
// classifier. Classification failures are a normal outcome in this pipeline:
// callers treat an error or an answer that cannot be parsed as "not related"
// or "none" and keep going.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/shortscope/shortscope/pkg/config"
)

// Item carries the text signals extracted for one feed item. Absent fields
// are empty strings and are omitted from the prompt.
type Item struct {
	Title      string
	Channel    string
	Transcript string
}

// Classifier uses an LLM to label feed items by conflict region
type Classifier struct {
	client *openai.Client
	config config.LLMConfig
}

// NewClassifier creates a new LLM classifier
func NewClassifier(cfg config.LLMConfig) *Classifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Classifier{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

const systemPrompt = `You are a research assistant labeling short-form videos for a media study.
Answer with exactly what the task asks for, nothing else.`

// Related reports whether the item is about armed conflict in the given
// region. Used by the training phase. An answer other than YES, in any
// casing, counts as NO.
func (c *Classifier) Related(ctx context.Context, region string, item Item) (bool, error) {
	var sb strings.Builder
	sb.WriteString("Decide if this short-form video is related to the armed conflict in ")
	sb.WriteString(region)
	sb.WriteString(".\n\n")
	writeItem(&sb, item)
	sb.WriteString("\nAnswer YES or NO.")

	answer, err := c.complete(ctx, sb.String())
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "YES"), nil
}

// Region picks which of the given conflict regions the item is about, empty
// string for none. Used by the measurement phase. Unknown or unparseable
// answers normalize to none.
func (c *Classifier) Region(ctx context.Context, regions []string, item Item) (string, error) {
	var sb strings.Builder
	sb.WriteString("Decide which armed conflict, if any, this short-form video is about.\n")
	sb.WriteString("Conflicts under study: ")
	sb.WriteString(strings.Join(regions, ", "))
	sb.WriteString("\n\n")
	writeItem(&sb, item)
	sb.WriteString("\nAnswer with exactly one conflict name from the list, or NONE.")

	answer, err := c.complete(ctx, sb.String())
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(strings.Trim(strings.TrimSpace(answer), `."'`))
	for _, region := range regions {
		if strings.EqualFold(answer, region) {
			return region, nil
		}
	}
	return "", nil
}

func (c *Classifier) complete(ctx context.Context, prompt string) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// writeItem appends the available text signals, skipping absent fields so
// the model never sees empty placeholders
func writeItem(sb *strings.Builder, item Item) {
	if item.Title != "" {
		fmt.Fprintf(sb, "Title: %s\n", item.Title)
	}
	if item.Channel != "" {
		fmt.Fprintf(sb, "Channel: %s\n", item.Channel)
	}
	if item.Transcript != "" {
		transcript := item.Transcript
		if len(transcript) > 2000 {
			transcript = transcript[:2000] + "..."
		}
		fmt.Fprintf(sb, "Transcript: %s\n", transcript)
	}
	if item.Title == "" && item.Channel == "" && item.Transcript == "" {
		sb.WriteString("No title, channel or transcript could be extracted for this video.\n")
	}
}
