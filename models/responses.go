package models

// Machine-readable error codes shared by the relay and the client.
// Clients branch on these, never on the human-readable message.
const (
	ErrAnalysisLimit   = "analysis_limit"
	ErrSameContent     = "same_content"
	ErrServerError     = "server_error"
	ErrImageGeneration = "image_generation_failed"
	ErrNetwork         = "network_error"
)

// AnalyzeResponse is the success body of POST /analyze. The content hash
// is echoed back unchanged so the client can persist it next to the
// incremented count.
type AnalyzeResponse struct {
	Success          bool   `json:"success"`
	Analysis         string `json:"analysis"`
	NewAnalysisCount int    `json:"newAnalysisCount"`
	ContentHash      string `json:"contentHash"`
}

// GenerateImageResponse is the success body of POST /generate-image.
// Image is a data:image/png;base64 URI.
type GenerateImageResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
}

// ErrorResponse is every failure body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
