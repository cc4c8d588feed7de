package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/David-0705/robbery-complaint-bot/internal/complaint"
	"github.com/David-0705/robbery-complaint-bot/internal/genai"
)

func main() {
	_ = godotenv.Load()

	log := newLogger()
	defer log.Sync()

	port := getenv("PORT", "8080")
	sessionTTL := getenvDuration("SESSION_TTL", time.Hour, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Schema ---
	schema := complaint.DefaultSchema()
	if path := os.Getenv("SCHEMA_FILE"); path != "" {
		loaded, err := complaint.LoadSchema(path)
		if err != nil {
			log.Fatal("schema file load failed", zap.String("path", path), zap.Error(err))
		}
		schema = loaded
		log.Info("schema loaded from file", zap.String("path", path), zap.Int("fields", len(schema)))
	}

	// --- Store ---
	store, closeStore, err := newStore(ctx, schema, log)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}
	defer closeStore()

	// --- Generator ---
	gen := newGenerator(log)

	// --- Complaint module wiring ---
	svc, registry := complaint.NewService(schema, store, gen, sessionTTL, time.Now, log)
	handler := complaint.NewHandler(svc, log)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	complaint.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := registry.Janitor(gctx, 10*time.Minute)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// newStore picks the storage backend from the environment: Postgres when
// DATABASE_URL is set, embedded SQLite when SQLITE_PATH is set, a local CSV
// file otherwise.
func newStore(ctx context.Context, schema complaint.Schema, log *zap.Logger) (complaint.Store, func(), error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, err
		}

		store, err := complaint.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("using postgres store")
		return store, func() { db.Close() }, nil
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, err
		}

		store, err := complaint.NewSQLiteStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("using sqlite store", zap.String("path", path))
		return store, func() { db.Close() }, nil
	}

	path := getenv("CSV_PATH", "robbery_complaints.csv")
	store, err := complaint.NewCSVStore(path, schema)
	if err != nil {
		return nil, nil, err
	}
	log.Info("using csv store", zap.String("path", path))
	return store, func() {}, nil
}

// newGenerator picks the generation backend: OpenAI-compatible chat when
// OPENAI_API_KEY is set, local Ollama otherwise.
func newGenerator(log *zap.Logger) genai.Generator {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		log.Info("using openai generator")
		return genai.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"))
	}

	log.Info("using ollama generator")
	return genai.NewOllamaClient(os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_MODEL"))
}

func newLogger() *zap.Logger {
	var log *zap.Logger
	var err error
	if os.Getenv("LOG_MODE") == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration, log *zap.Logger) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn("invalid duration, using default", zap.String("key", key), zap.String("value", v))
		return fallback
	}
	return d
}
