package controllers

import (
	"yumicuit/models"

	"github.com/gin-gonic/gin"
)

// RespondFailure writes a policy or server failure body. Code is the
// machine-readable error kind clients branch on; message is for humans.
func RespondFailure(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: code, Message: message})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
