package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openAIBaseURL = "https://api.openai.com/v1"

// analysisPrompt is the fixed system instruction for dream analysis. The
// user typed the dream half-asleep, so the model corrects typos, rebuilds
// the story from fragments and interprets it, in a fixed three-part shape.
const analysisPrompt = `あなたは夢分析の専門家です。ユーザーは寝起きで入力したため、誤字脱字や断片的な記述が多いです。

以下のタスクを行ってください：
1. 誤字脱字を推測して補正
2. 断片的なキーワードからストーリーを再構成
3. 夢の象徴的な意味を簡潔に解釈
4. 感情的なテーマや内面の洞察を提供

回答は以下の形式で：
【補正後の内容】
（整形したテキスト）

【ストーリー】
（再構成した夢の流れ）

【解釈】
（象徴的意味と洞察）`

// imagePromptInstruction turns arbitrary dream text into a short English
// prompt for the image model.
const imagePromptInstruction = `Rewrite the user's text as a concise English image-generation prompt of fewer than 100 words. Emphasize scenery, lighting, mood and color, in a dreamy, ethereal, surreal style. Return only the prompt text, nothing else.`

const analysisMaxOutputTokens = 1024

// OpenAIClient calls the hosted text and image models over the OpenAI
// REST API. One call per request, no retries.
type OpenAIClient struct {
	APIKey     string
	Model      string
	ImageModel string

	// BaseURL can be overridden in tests.
	BaseURL string
	HTTP    *http.Client
	// Image generation is slower than text; it gets its own client.
	ImageHTTP *http.Client
}

func NewOpenAIClient(apiKey, model, imageModel string) *OpenAIClient {
	return &OpenAIClient{
		APIKey:     apiKey,
		Model:      model,
		ImageModel: imageModel,
		BaseURL:    openAIBaseURL,
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		ImageHTTP:  &http.Client{Timeout: 120 * time.Second},
	}
}

// AnalyzeDream runs the dream-analysis instruction over the raw dream
// text and returns the assistant's analysis.
func (c *OpenAIClient) AnalyzeDream(ctx context.Context, content string) (string, error) {
	out, err := c.respond(ctx, analysisPrompt, content, analysisMaxOutputTokens)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("empty response from model (no output_text items found)")
	}
	return out, nil
}

// ImagePrompt rewrites descriptive text into a visual-generation prompt.
// An empty result is not an error; the caller falls back to the original
// text.
func (c *OpenAIClient) ImagePrompt(ctx context.Context, text string) (string, error) {
	return c.respond(ctx, imagePromptInstruction, text, 256)
}

// respond calls the Responses API with instructions + input and collects
// the assistant output_text items.
func (c *OpenAIClient) respond(ctx context.Context, instructions, input string, maxOutputTokens int) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := map[string]any{
		"model":             c.Model,
		"instructions":      instructions,
		"input":             input,
		"max_output_tokens": maxOutputTokens,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/responses",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Output []struct {
			Type    string `json:"type"`
			Role    string `json:"role"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range parsed.Output {
		if item.Type == "message" && item.Role == "assistant" {
			for _, cpart := range item.Content {
				if cpart.Type == "output_text" && strings.TrimSpace(cpart.Text) != "" {
					if sb.Len() > 0 {
						sb.WriteString("\n")
					}
					sb.WriteString(cpart.Text)
				}
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// GenerateImage calls the Images API with the prompt and returns the
// result as an embeddable data URI.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := map[string]any{
		"model":  c.ImageModel,
		"prompt": prompt,
		"size":   "1024x1024",
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/images/generations",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.ImageHTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai images error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Data) == 0 || parsed.Data[0].B64JSON == "" {
		return "", fmt.Errorf("empty image from model")
	}

	return DataURI(parsed.Data[0].B64JSON), nil
}

// DataURI wraps base64 PNG bytes as a data URI the browser can embed
// directly.
func DataURI(b64 string) string {
	return "data:image/png;base64," + b64
}
