package router

import (
	"net/http"

	"yumicuit/controllers"
	"yumicuit/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires the relay routes. The surface is small: two POST
// endpoints, permissive CORS, 404 everywhere else and 405 for wrong
// methods on known paths.
func Initialize(r *gin.Engine, dc *controllers.DreamController) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.HandleMethodNotAllowed = true

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/analyze", Logger(), dc.Analyze)
	r.POST("/generate-image", Logger(), dc.GenerateImage)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	})
}
