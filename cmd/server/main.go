// Local development server. Vercel deployments use api/index.go; this
// wraps the same router in a plain listener.
package main

import (
	"fmt"
	"net/http"
	"os"

	handler "campaign-site-backend/api"
	"campaign-site-backend/pkg/config"
	"campaign-site-backend/pkg/database"
)

func main() {
	cfg := config.GetCached()

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	db := database.GetDatabase(database.DatabaseConfig{
		PostgresDSN: cfg.PostgresDSN,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
		Debug:       cfg.Debug,
	})
	defer db.Close()

	router := handler.BuildRouter(cfg, db)

	addr := ":" + cfg.Port
	fmt.Printf("🚀 Campaign site listening on %s (%s)\n", addr, cfg.Environment)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Printf("❌ Server stopped: %v\n", err)
		os.Exit(1)
	}
}
