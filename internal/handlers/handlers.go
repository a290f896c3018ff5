package handlers

import (
	"embed"
	"io/fs"
	"net/http"

	"TokenKeeper/internal/config"
	"TokenKeeper/internal/middleware"
	"TokenKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed static
var staticFiles embed.FS

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)

	// Auth routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/set-password", userHandler.SetPassword)
		r.Post("/login", userHandler.Login)
		r.Post("/forgot-password", userHandler.ForgotPassword)
		r.Post("/reset-password", userHandler.ResetPassword)
	})

	// User routes
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
	})

	// Pages
	pages, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(pages)))

	return &Handler{Router: r}
}
