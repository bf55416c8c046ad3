package translate

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/babelgateco/babelgate/pkg/provider"
)

// DefaultTimeout bounds the outbound provider call when no timeout is
// configured. The source this was rebuilt from left the deadline to the
// provider SDK; here it is explicit.
const DefaultTimeout = 60 * time.Second

// Translator turns caller text into a fixed-language translation via the
// provider. It holds no per-request state and is safe for concurrent use.
type Translator struct {
	client     provider.Client
	model      string
	sourceLang string
	targetLang string
	timeout    time.Duration
}

// NewTranslator creates a Translator pinned to one model and language pair.
func NewTranslator(client provider.Client, model, sourceLang, targetLang string, timeout time.Duration) *Translator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Translator{
		client:     client,
		model:      model,
		sourceLang: sourceLang,
		targetLang: targetLang,
		timeout:    timeout,
	}
}

// Translate submits the caller's text under the fixed system directive and
// returns the first choice's content verbatim. The raw provider text is
// authoritative: no trimming, no cleanup. Any provider failure comes back
// as an *UpstreamError; nothing is retried.
func (t *Translator) Translate(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: t.systemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: input,
			},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &UpstreamError{Kind: Classify(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{
			Kind: KindUnknown,
			Err:  fmt.Errorf("provider returned no choices"),
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the pinned model identifier.
func (t *Translator) Model() string {
	return t.model
}

// Languages returns the fixed source and target language pair.
func (t *Translator) Languages() (source, target string) {
	return t.sourceLang, t.targetLang
}

func (t *Translator) systemPrompt() string {
	return fmt.Sprintf(
		"You are a translation engine. Translate the user's text from %s to %s. "+
			"Respond with only the translated text. No explanations, no quotes, no commentary.",
		t.sourceLang, t.targetLang,
	)
}
