// Command portvetd is the hosted portvet service.
// It serves the assessment API and a health check, backed by Postgres
// for metadata and blob storage for archived reports.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/portvet/portvet/internal/api"
	"github.com/portvet/portvet/internal/assessment"
	"github.com/portvet/portvet/internal/platform"
	"github.com/portvet/portvet/internal/project"
)

type config struct {
	Port             string
	DatabaseURL      string
	APIKey           string
	GCSBucket        string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	LocalStoragePath string
}

func loadConfig() config {
	return config{
		Port:             envOrDefault("PORT", "8080"),
		DatabaseURL:      envOrDefault("DATABASE_URL", "postgres://localhost:5432/portvet?sslmode=disable"),
		APIKey:           os.Getenv("API_KEY"),
		GCSBucket:        os.Getenv("GCS_BUCKET"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3Region:         os.Getenv("S3_REGION"),
		S3Endpoint:       os.Getenv("S3_ENDPOINT"),
		LocalStoragePath: envOrDefault("LOCAL_STORAGE_PATH", "/tmp/portvet-data"),
	}
}

func main() {
	cfg := loadConfig()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	storage, err := selectStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	projectSvc := project.NewService(db)
	assessmentSvc := assessment.NewService(projectSvc, storage)
	apiHandler := api.NewHandler(projectSvc, assessmentSvc, api.NewReportCacheFromEnv())

	apiMux := http.NewServeMux()
	apiHandler.RegisterRoutes(apiMux)

	// Health checks are not gated by the API key.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler(db))
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	go func() {
		log.Printf("starting portvetd on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// selectStorage picks the report storage backend: GCS or S3 when a
// bucket is configured, the local filesystem otherwise.
func selectStorage(ctx context.Context, cfg config) (assessment.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		return assessment.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		return assessment.NewS3Storage(ctx, assessment.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		})
	default:
		return assessment.NewLocalStorage(cfg.LocalStoragePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
