package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/thomas/portfolio-cms/internal/config"
	"github.com/thomas/portfolio-cms/internal/content"
	"github.com/thomas/portfolio-cms/internal/server/middleware"
	"github.com/thomas/portfolio-cms/internal/server/ratelimit"
	"github.com/thomas/portfolio-cms/internal/session"
)

// Server represents the HTTP server.
type Server struct {
	httpServer   *http.Server
	guard        *session.Guard
	contentStore *content.Store
	jwtService   *JWTService
	authHandler  *AuthHandler
	validator    *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port    int
	DataDir string
}

// New creates a new server instance, reading auth and token settings from
// the environment.
func New(cfg Config) (*Server, error) {
	authConfig, err := config.NewAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create auth config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	return newServer(cfg, authConfig, jwtConfig)
}

// newServer wires the stores, guard, and routes. Split from New so tests can
// inject configuration directly.
func newServer(cfg Config, authConfig *config.AuthConfig, jwtConfig *config.JWTConfig) (*Server, error) {
	guard, err := session.NewGuard(authConfig, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open session slice: %w", err)
	}

	contentStore, err := content.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open content slice: %w", err)
	}

	s := &Server{
		guard:        guard,
		contentStore: contentStore,
		jwtService:   NewJWTService(jwtConfig),
		validator:    validator.New(),
	}

	// Login attempts are the only credential surface; throttle them per
	// client. Everything else is local state access and stays unthrottled.
	s.authHandler = NewAuthHandler(guard, s.jwtService, ratelimit.NewLimiter(5, 1.0/6.0))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/portfolio", s.handlePublicPortfolio)

	mux.HandleFunc("POST /api/admin/login", s.authHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", s.authHandler.Logout)
	mux.HandleFunc("GET /api/admin/session", s.authHandler.Session)

	// Protected content routes; the guard middleware checks the bearer
	// token and the session, and extends the session on every hit.
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/content", s.handleGetContent)
	admin.HandleFunc("PUT /api/admin/content/hero", s.handleUpdateHero)
	admin.HandleFunc("PUT /api/admin/content/contact", s.handleUpdateContact)

	admin.HandleFunc("PUT /api/admin/content/experience", s.handleReplaceExperience)
	admin.HandleFunc("POST /api/admin/content/experience", s.handleAddExperience)
	admin.HandleFunc("PUT /api/admin/content/experience/{id}", s.handleUpdateExperience)
	admin.HandleFunc("DELETE /api/admin/content/experience/{id}", s.handleDeleteExperience)
	admin.HandleFunc("POST /api/admin/content/experience/reorder", s.handleReorderExperience)

	admin.HandleFunc("PUT /api/admin/content/education", s.handleReplaceEducation)
	admin.HandleFunc("POST /api/admin/content/education", s.handleAddEducation)
	admin.HandleFunc("PUT /api/admin/content/education/{id}", s.handleUpdateEducation)
	admin.HandleFunc("DELETE /api/admin/content/education/{id}", s.handleDeleteEducation)
	admin.HandleFunc("POST /api/admin/content/education/reorder", s.handleReorderEducation)

	admin.HandleFunc("PUT /api/admin/content/projects", s.handleReplaceProjects)
	admin.HandleFunc("POST /api/admin/content/projects", s.handleAddProject)
	admin.HandleFunc("PUT /api/admin/content/projects/{id}", s.handleUpdateProject)
	admin.HandleFunc("DELETE /api/admin/content/projects/{id}", s.handleDeleteProject)
	admin.HandleFunc("POST /api/admin/content/projects/reorder", s.handleReorderProjects)

	admin.HandleFunc("PUT /api/admin/content/skills", s.handleReplaceSkills)
	admin.HandleFunc("POST /api/admin/content/skills/categories", s.handleCreateCategory)
	admin.HandleFunc("DELETE /api/admin/content/skills/categories/{name}", s.handleDeleteCategory)
	admin.HandleFunc("POST /api/admin/content/skills/categories/{name}/skills", s.handleAddSkill)
	admin.HandleFunc("PUT /api/admin/content/skills/categories/{name}/skills/{id}", s.handleUpdateSkill)
	admin.HandleFunc("DELETE /api/admin/content/skills/categories/{name}/skills/{id}", s.handleDeleteSkill)
	admin.HandleFunc("POST /api/admin/content/skills/categories/{name}/skills/reorder", s.handleReorderSkills)

	admin.HandleFunc("GET /api/admin/content/export", s.handleExportContent)
	admin.HandleFunc("POST /api/admin/content/import", s.handleImportContent)
	admin.HandleFunc("POST /api/admin/content/reset", s.handleResetContent)

	protect := middleware.Protect(s.jwtService.AsTokenValidator(), guard)
	mux.Handle("/api/admin/content", protect(admin))
	mux.Handle("/api/admin/content/", protect(admin))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the site frontend.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// extractClientID returns the client IP used for login throttling.
func extractClientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
