package controllers

import (
	"net/http"

	"yumicuit/config"
	"yumicuit/models"

	"github.com/gin-gonic/gin"
)

// GenerateImage handles POST /generate-image.
//
// The dream text is first rewritten into a short English visual prompt by
// the text model; an empty rewrite falls back to the input verbatim. The
// image model then renders it. Any step failing fails the whole request,
// no partial state.
func (dc *DreamController) GenerateImage(c *gin.Context) {
	var req models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFailure(c, http.StatusInternalServerError, models.ErrImageGeneration, msgImageFailed)
		return
	}

	ctx := c.Request.Context()

	prompt, err := dc.AI.ImagePrompt(ctx, req.Prompt)
	if err != nil {
		config.Logger.Errorw("image prompt rewrite failed", "error", err)
		RespondFailure(c, http.StatusInternalServerError, models.ErrImageGeneration, msgImageFailed)
		return
	}
	if prompt == "" {
		prompt = req.Prompt
	}

	image, err := dc.AI.GenerateImage(ctx, prompt)
	if err != nil {
		config.Logger.Errorw("image generation failed", "error", err)
		RespondFailure(c, http.StatusInternalServerError, models.ErrImageGeneration, msgImageFailed)
		return
	}

	RespondSuccess(c, models.GenerateImageResponse{Success: true, Image: image})
}
