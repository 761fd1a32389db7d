package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"

	"github.com/varaeff/wordcheck.api/config"
	"github.com/varaeff/wordcheck.api/exporters"
	"github.com/varaeff/wordcheck.api/handlers"
	"github.com/varaeff/wordcheck.api/language"
	"github.com/varaeff/wordcheck.api/metrics"
)

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	var detector handlers.LanguageDetector
	if config.Config.EnableLanguageDetection {
		detector = language.NewDetector()
	}

	var exporter exporters.Exporter
	if config.Config.EnableClipboard {
		exporter = exporters.NewClipboardExporter(logger)
	}

	m := metrics.New()
	checks := handlers.NewCheckHandler(
		logger,
		detector,
		exporter,
		m,
		config.Config.DefaultMode,
		config.Config.MaxBodyBytes,
	)
	health := handlers.NewHealthHandler()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /check", public(checks.Check))
	mux.HandleFunc("POST /check/word", public(checks.CheckWord))
	mux.HandleFunc("POST /export", public(checks.Export))
	mux.HandleFunc("GET /health", public(health.GetHealth))
	mux.Handle("GET /metrics", m.Handler())

	server := &http.Server{
		Addr:              config.Config.ListenAddr,
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("Starting server", "addr", config.Config.ListenAddr, "env", config.Config.AppEnv)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("failed to start server", "error", errors.Wrap(err, "listen"))
		os.Exit(1)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}
