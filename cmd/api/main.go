package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/config"
	"gapscan/resume-gap-analyzer/internal/handlers"
	"gapscan/resume-gap-analyzer/internal/logger"
	"gapscan/resume-gap-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to create logger: %v", err)
	}
	defer zl.Sync()

	zl.Info("✅ Config loaded successfully",
		zap.String("env", cfg.Server.Env),
		zap.String("provider", cfg.LLM.Provider),
		zap.Strings("models", cfg.Models()))

	// Initialize services
	pdfParser := services.NewPDFParserService()

	llmClient, err := services.NewLLMClientFromConfig(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize LLM client", zap.Error(err))
	}
	if err := llmClient.CheckCredential(); err != nil {
		zl.Warn("⚠️  No LLM credential configured, /analyze will fail", zap.Error(err))
	}

	analyzer := services.NewAnalyzerService(llmClient, zl)
	zl.Info("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(pdfParser, analyzer, zl)
	extractHandler := handlers.NewExtractHandler(pdfParser, zl)

	app := handlers.NewApp(cfg, analyzeHandler, extractHandler, zl)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := cfg.ListenAddr()
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
