// Package client is the journal-side orchestrator: it fingerprints dream
// text, short-circuits requests the relay would certainly reject, calls
// the relay endpoints and reconciles the results into record updates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"yumicuit/models"
	"yumicuit/tools"
)

const (
	msgAnalysisLimit = "分析回数の上限（3回）に達しました。自分で編集してください。"
	msgSameContent   = "内容が変わっていません。編集してから再分析してください。"
	msgNetworkError  = "ネットワークエラー。接続を確認してください。"
	msgUnknownError  = "エラーが発生しました"
)

const maxAnalyses = 3

// APIError is a failed outcome, tagged with one of the models.Err* kinds.
// network_error means the request never produced a response; every other
// kind was reported by the relay.
type APIError struct {
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return e.Kind + ": " + e.Message
}

// AnalyzeResult is a successful analysis. Image is set only by
// AnalyzeWithImage, and only when image generation also succeeded.
type AnalyzeResult struct {
	Analysis         string
	NewAnalysisCount int
	ContentHash      string
	Image            string
}

// Client talks to the relay.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// precheck mirrors the relay's policy so a request that would certainly
// be rejected never goes on the wire. Same order as the relay: quota
// first, then the duplicate-content guard.
func precheck(analysisCount int, lastContentHash, contentHash string) *APIError {
	if analysisCount >= maxAnalyses {
		return &APIError{Kind: models.ErrAnalysisLimit, Message: msgAnalysisLimit}
	}
	if lastContentHash != "" && contentHash == lastContentHash {
		return &APIError{Kind: models.ErrSameContent, Message: msgSameContent}
	}
	return nil
}

// Analyze runs one analysis of the dream text. On success the caller is
// responsible for persisting the returned count, hash and analysis.
func (c *Client) Analyze(ctx context.Context, dreamID, content string, analysisCount int, lastContentHash string) (*AnalyzeResult, error) {
	contentHash := tools.HashContent(content)
	if err := precheck(analysisCount, lastContentHash, contentHash); err != nil {
		return nil, err
	}
	return c.postAnalyze(ctx, models.AnalyzeRequest{
		DreamID:         dreamID,
		Content:         content,
		ContentHash:     contentHash,
		AnalysisCount:   analysisCount,
		LastContentHash: lastContentHash,
	})
}

// AnalyzeWithImage runs the analysis and an illustrative image generation
// concurrently, as a single quota unit. The join waits for both calls;
// the outcome is decided solely by the analysis. Image failure degrades
// to an analysis-only result.
func (c *Client) AnalyzeWithImage(ctx context.Context, dreamID, content string, analysisCount int, lastContentHash string) (*AnalyzeResult, error) {
	contentHash := tools.HashContent(content)
	if err := precheck(analysisCount, lastContentHash, contentHash); err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		image  string
		imgErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		image, imgErr = c.GenerateImage(ctx, content)
	}()

	res, err := c.postAnalyze(ctx, models.AnalyzeRequest{
		DreamID:         dreamID,
		Content:         content,
		ContentHash:     contentHash,
		AnalysisCount:   analysisCount,
		LastContentHash: lastContentHash,
	})

	wg.Wait()

	if err != nil {
		return nil, err
	}
	if imgErr == nil {
		res.Image = image
	}
	return res, nil
}

func (c *Client) postAnalyze(ctx context.Context, req models.AnalyzeRequest) (*AnalyzeResult, error) {
	var resp models.AnalyzeResponse
	if err := c.post(ctx, "/analyze", req, &resp); err != nil {
		return nil, err
	}
	return &AnalyzeResult{
		Analysis:         resp.Analysis,
		NewAnalysisCount: resp.NewAnalysisCount,
		ContentHash:      resp.ContentHash,
	}, nil
}

// GenerateImage asks the relay for an illustration of the prompt. It does
// not touch the analysis quota.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	var resp models.GenerateImageResponse
	if err := c.post(ctx, "/generate-image", models.GenerateImageRequest{Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	return resp.Image, nil
}

// post sends one JSON request. Transport failures become network_error;
// non-2xx responses become an APIError carrying the relay's error code.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return &APIError{Kind: models.ErrNetwork, Message: msgNetworkError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return &APIError{Kind: models.ErrNetwork, Message: msgNetworkError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &APIError{Kind: models.ErrNetwork, Message: msgNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fail models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil || fail.Error == "" {
			return &APIError{Kind: models.ErrServerError, Message: msgUnknownError}
		}
		return &APIError{Kind: fail.Error, Message: fail.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: models.ErrServerError, Message: msgUnknownError}
	}
	return nil
}
