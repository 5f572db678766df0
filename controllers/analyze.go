package controllers

import (
	"context"
	"net/http"

	"yumicuit/config"
	"yumicuit/models"

	"github.com/gin-gonic/gin"
)

// AIService is the hosted-model surface the relay needs. tools.OpenAIClient
// implements it; tests plug in a stub.
type AIService interface {
	AnalyzeDream(ctx context.Context, content string) (string, error)
	ImagePrompt(ctx context.Context, text string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// DreamController serves the two relay endpoints. The relay is stateless:
// nothing is persisted here, the client owns the record.
type DreamController struct {
	AI AIService
}

func NewDreamController(ai AIService) *DreamController {
	return &DreamController{AI: ai}
}

// maxAnalyses is the per-record analysis quota.
const maxAnalyses = 3

const (
	msgAnalysisLimit = "分析回数の上限（3回）に達しました。自分で編集してください。"
	msgSameContent   = "内容が変わっていません。編集してから再分析してください。"
	msgServerError   = "サーバーエラーが発生しました"
	msgImageFailed   = "画像の生成に失敗しました"
)

// Analyze handles POST /analyze.
//
// Policy order matters: quota first, then the duplicate-content guard,
// and only then the model call. Both checks run on client-supplied
// values; the relay does not recompute the hash or keep per-dream state.
func (dc *DreamController) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFailure(c, http.StatusInternalServerError, models.ErrServerError, msgServerError)
		return
	}

	if req.AnalysisCount >= maxAnalyses {
		RespondFailure(c, http.StatusTooManyRequests, models.ErrAnalysisLimit, msgAnalysisLimit)
		return
	}

	if req.LastContentHash != "" && req.ContentHash == req.LastContentHash {
		RespondFailure(c, http.StatusBadRequest, models.ErrSameContent, msgSameContent)
		return
	}

	analysis, err := dc.AI.AnalyzeDream(c.Request.Context(), req.Content)
	if err != nil {
		config.Logger.Errorw("dream analysis failed", "dreamId", req.DreamID, "error", err)
		RespondFailure(c, http.StatusInternalServerError, models.ErrServerError, msgServerError)
		return
	}

	RespondSuccess(c, models.AnalyzeResponse{
		Success:          true,
		Analysis:         analysis,
		NewAnalysisCount: req.AnalysisCount + 1,
		ContentHash:      req.ContentHash,
	})
}
