// Command chakrascand is the chakrascan HTTP service.
// It serves the scan endpoint, the inventory read endpoint, and a health
// check.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/internal/api"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
)

type config struct {
	Port      string
	APIKey    string
	ItemsFile string
	LogoFile  string
}

func loadConfig() config {
	return config{
		Port:      envOrDefault("PORT", "8080"),
		APIKey:    os.Getenv("API_KEY"),
		ItemsFile: os.Getenv("ITEMS_FILE"),
		LogoFile:  os.Getenv("LOGO_FILE"),
	}
}

func main() {
	cfg := loadConfig()

	inv := inventory.Default()
	if cfg.ItemsFile != "" {
		loaded, err := inventory.Load(cfg.ItemsFile)
		if err != nil {
			log.Fatalf("load inventory: %v", err)
		}
		inv = loaded
	}

	var logo []byte
	if cfg.LogoFile != "" {
		data, err := os.ReadFile(cfg.LogoFile)
		if err != nil {
			log.Fatalf("read logo: %v", err)
		}
		logo = data
	}

	handler := api.NewHandler(inv, logo)

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	// Health stays outside the API-key gate.
	mux := http.NewServeMux()
	mux.Handle("/v1/", api.APIKeyAuth(cfg.APIKey)(apiMux))
	mux.HandleFunc("GET /healthz", healthHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting chakrascand on :%s", cfg.Port)
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

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
