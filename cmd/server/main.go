package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/storycave669-rgb/Project-DEVI/internal/answer"
	"github.com/storycave669-rgb/Project-DEVI/internal/cache"
	"github.com/storycave669-rgb/Project-DEVI/internal/config"
	"github.com/storycave669-rgb/Project-DEVI/internal/feedback"
	"github.com/storycave669-rgb/Project-DEVI/internal/llm"
	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/search"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.Log
	ctx := context.Background()

	// ── Search cache (optional) ──────────────────────────────
	var searchCache *cache.SearchCache
	if cfg.HasRedis() {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, search cache disabled")
		} else {
			defer rdb.Close()
			searchCache = cache.NewSearchCache(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}
	}

	// ── Search client ────────────────────────────────────────
	searcher := search.NewClient(cfg.TavilyAPIKey)
	if !cfg.HasTavily() {
		log.Warn("TAVILY_API_KEY not set; all questions will report no sources")
	}

	// ── Generation client ────────────────────────────────────
	generator, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	if !cfg.HasGemini() {
		log.Warn("GEMINI_API_KEY not set; answers will use offline templates")
	}

	// ── Feedback webhook ─────────────────────────────────────
	dispatcher := feedback.NewDispatcher(cfg.FeedbackWebhookURL)

	// ── Handlers ─────────────────────────────────────────────
	service := answer.NewService(searcher, generator, searchCache)
	answerHandler := answer.NewHandler(service, dispatcher)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/ask", answerHandler.Ask)
		r.Post("/feedback", answerHandler.Feedback)
	})

	// Presentation shell
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		log.Infof("Devi listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
