package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"campuspulse-backend/internal/handlers"
	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	moodHandler *handlers.MoodHandler,
	resourceHandler *handlers.ResourceHandler,
	studyHandler *handlers.StudyHandler,
	dashboardHandler *handlers.DashboardHandler,
	assistantHandler *handlers.AssistantHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Task Routes ────
		r.Route("/tasks", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Post("/batch-complete", taskHandler.BatchComplete)
			r.Post("/batch-delete", taskHandler.BatchDelete)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Put("/{id}/complete", taskHandler.Complete)
			r.Delete("/{id}", taskHandler.Delete)
		})

		// ──── Mood Routes ────
		r.Route("/mood", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", moodHandler.History)
			r.Post("/", moodHandler.Log)
			r.Get("/latest", moodHandler.Latest)
			r.Get("/tips", moodHandler.Tips)
		})

		// ──── Resource Routes ────
		r.Route("/resources", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", resourceHandler.List)
			r.Get("/recommended", resourceHandler.Recommended)
			r.Get("/stats", resourceHandler.Stats)
			r.Post("/suggest", resourceHandler.Suggest)
			r.Post("/{id}/view", resourceHandler.View)
		})

		// ──── Study Session Routes ────
		r.Route("/study", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/start", studyHandler.Start)
			r.Post("/stop", studyHandler.Stop)
			r.Get("/active", studyHandler.Active)
			r.Get("/stats", studyHandler.Stats)
			r.Get("/sessions", studyHandler.Sessions)
			r.Delete("/sessions/{id}", studyHandler.Delete)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", dashboardHandler.Overview)
		})

		// ──── Assistant Routes ────
		r.Route("/assistant", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/chat", assistantHandler.Chat)
			r.Get("/history", assistantHandler.History)
			r.Get("/analysis", assistantHandler.Analysis)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
