package models

// AnalyzeRequest is the body of POST /analyze. The hash and count are
// computed client-side; the relay enforces policy on what the client
// asserts (see the trust-boundary note in DESIGN.md).
type AnalyzeRequest struct {
	DreamID         string `json:"dreamId" binding:"required"`
	Content         string `json:"content" binding:"required"`
	ContentHash     string `json:"contentHash" binding:"required"`
	AnalysisCount   int    `json:"analysisCount" binding:"min=0"`
	LastContentHash string `json:"lastContentHash"`
}

// GenerateImageRequest is the body of POST /generate-image.
type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
