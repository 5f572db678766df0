package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yumicuit/config"
	"yumicuit/controllers"
	"yumicuit/router"
	"yumicuit/tools"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV / .env
// =====================
//
// Server
// - SERVER_PORT          (default 8080)
// - ENVIRONMENT          (production enables gin release mode)
// - LOG_PATH             (default logs/server.log)
//
// OpenAI
// - OPENAI_API_KEY
// - OPENAI_MODEL         (default gpt-4.1-mini)
// - OPENAI_IMAGE_MODEL   (default gpt-image-1)
//
// =====================

func main() {
	conf, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := config.InitLogger(conf.LogPath); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ai := tools.NewOpenAIClient(conf.OpenAIAPIKey, conf.OpenAIModel, conf.OpenAIImageModel)
	dc := controllers.NewDreamController(ai)

	r := gin.New()
	router.Initialize(r, dc)

	srv := &http.Server{
		Addr:              ":" + conf.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infow("yumicuit relay listening", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
