package handler

import (
	"net/http"
	"time"

	"campaign-site-backend/pkg/config"
	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/handlers"
	customMiddleware "campaign-site-backend/pkg/middleware"
	"campaign-site-backend/pkg/storage"
	"campaign-site-backend/pkg/utils"
	"campaign-site-backend/pkg/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler is the Vercel function entry point. All routes live in one
// Chi router (monolithic routing), so a single function serves the
// whole site and the router decides the rest.
func Handler(w http.ResponseWriter, r *http.Request) {
	cfg := config.GetCached()

	if err := cfg.Validate(); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Configuration error: "+err.Error())
		return
	}

	// Pooled store connection, reused across warm invocations
	db := database.GetDatabase(database.DatabaseConfig{
		PostgresDSN: cfg.PostgresDSN,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
		Debug:       cfg.Debug,
	})

	router := BuildRouter(cfg, db)
	router.ServeHTTP(w, r)
}

// BuildRouter assembles the full site router. The local server entry
// reuses it so routing stays identical between Vercel and a plain
// listener.
func BuildRouter(cfg *config.Config, db database.DatabaseInterface) *chi.Mux {
	router := chi.NewRouter()
	setupMiddleware(router, cfg)
	setupRoutes(router, cfg, db)
	return router
}

// setupMiddleware installs the global middleware stack.
func setupMiddleware(router *chi.Mux, cfg *config.Config) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	// Normalize path and restore scheme/host before logging and routing
	router.Use(customMiddleware.Normalize())
	router.Use(customMiddleware.Logger(cfg))
	router.Use(customMiddleware.Recovery(cfg))

	router.Use(customMiddleware.CORS(cfg))

	// Vercel functions are time-limited; keep a buffer under the cap
	router.Use(middleware.Timeout(25 * time.Second))

	router.Use(middleware.Compress(5))

	if cfg.IsDevelopment() {
		router.Use(middleware.Heartbeat("/ping"))
	}
}

// setupRoutes wires every page and API endpoint.
func setupRoutes(router *chi.Mux, cfg *config.Config, db database.DatabaseInterface) {
	jwtService := utils.NewJWTService(cfg.JWTSecret)
	store := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket)

	authHandler := handlers.NewAuthHandler(db, jwtService)
	contentHandler := handlers.NewContentHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	adminHandler := handlers.NewAdminHandler(db, store)

	// Health check
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			utils.WriteInternalServerErrorResponse(w, "Store unreachable: "+err.Error())
			return
		}
		utils.WriteSuccessResponse(w, map[string]string{"status": "ok"})
	})

	// Connection pool state (debug only)
	if cfg.IsDevelopment() {
		router.Get("/debug/db-pool", func(w http.ResponseWriter, r *http.Request) {
			utils.WriteSuccessResponse(w, database.GetConnectionStats())
		})

		router.Get("/debug/env-check", func(w http.ResponseWriter, r *http.Request) {
			utils.WriteSuccessResponse(w, map[string]interface{}{
				"postgres_dsn":   cfg.PostgresDSN != "",
				"supabase_url":   cfg.SupabaseURL != "",
				"supabase_key":   cfg.SupabaseKey != "",
				"jwt_secret":     cfg.JWTSecret != "",
				"storage_bucket": cfg.StorageBucket,
			})
		})
	}

	router.Route("/api", func(r chi.Router) {
		// Public routes, no auth
		r.Group(func(r chi.Router) {
			r.Get("/events", contentHandler.ListEvents)
			r.Get("/events/featured", contentHandler.ListFeaturedEvents)
			r.Get("/events/{id}", contentHandler.GetEvent)
			r.Get("/positions", contentHandler.ListPositions)
			r.Get("/about", contentHandler.GetAboutPage)
			r.Get("/hero", contentHandler.GetHero)

			r.With(customMiddleware.ContentTypeJSON).Post("/contact", contactHandler.Submit)
		})

		// Admin session routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(customMiddleware.ContentTypeJSON)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Admin routes, JWT-guarded once at the group level
		r.Route("/admin", func(r chi.Router) {
			r.Use(customMiddleware.AdminGuard(cfg))
			r.Use(customMiddleware.MaxBodySize(32 << 20))

			r.Get("/stats", adminHandler.GetStats)
			r.Get("/activity", adminHandler.GetRecentActivity)

			// Entity forms post multipart bodies (image + fields)
			r.Route("/events", func(r chi.Router) {
				r.Post("/", adminHandler.CreateEvent)
				r.Put("/{id}", adminHandler.UpdateEvent)
				r.Delete("/{id}", adminHandler.DeleteEvent)
				r.With(customMiddleware.ContentTypeJSON).Patch("/{id}/featured", adminHandler.SetEventFeatured)
			})

			r.Route("/positions", func(r chi.Router) {
				r.Use(customMiddleware.ContentTypeJSON)
				r.Post("/", adminHandler.CreatePosition)
				r.Put("/{id}", adminHandler.UpdatePosition)
				r.Delete("/{id}", adminHandler.DeletePosition)
				r.Patch("/{id}/current", adminHandler.SetPositionCurrent)
			})

			r.Put("/about", adminHandler.UpdateAboutPage)
			r.Put("/hero", adminHandler.UpdateHero)

			r.Route("/missions", func(r chi.Router) {
				r.Post("/", adminHandler.CreateKeyMission)
				r.Put("/{id}", adminHandler.UpdateKeyMission)
				r.Delete("/{id}", adminHandler.DeleteKeyMission)
			})

			r.Route("/timeline", func(r chi.Router) {
				r.Post("/", adminHandler.CreateTimelineEvent)
				r.Put("/{id}", adminHandler.UpdateTimelineEvent)
				r.Delete("/{id}", adminHandler.DeleteTimelineEvent)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", contactHandler.ListSubmissions)
				r.With(customMiddleware.ContentTypeJSON).Patch("/{id}/status", contactHandler.UpdateStatus)
			})
		})

		// JSON 404/405 inside /api
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteNotFoundResponse(w, "Endpoint not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteErrorResponseWithCode(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", "")
		})
	})

	// Server-rendered public pages
	if pages, err := web.New(db); err == nil {
		router.Group(pages.Routes)
	} else {
		registerPageFallback(router, err)
	}
}

// registerPageFallback installs a root handler when templates fail to
// parse. The JSON API stays up either way.
func registerPageFallback(router *chi.Mux, err error) {
	msg := "Page rendering unavailable: " + err.Error()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, msg, http.StatusInternalServerError)
	})
}
