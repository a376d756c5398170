package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"duitku/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// bookkeeping API. It applies JSON content-type enforcement and request
// logging, and wraps every transaction and category route in bearer-token
// authentication. Registration and login stay public.
//
// Routes:
//
//	POST /register               → authHandler.Register
//	POST /login                  → authHandler.Login
//	GET/POST /transactions       → transactionHandler (protected)
//	GET/PUT/DELETE /transactions/{id}
//	GET/POST /categories         → categoryHandler (protected)
//	GET/PUT/DELETE /categories/{id}
func NewRouter(
	authHandler *AuthHandler,
	transactionHandler *TransactionHandler,
	categoryHandler *CategoryHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(verifier))

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionHandler.List)
			r.Post("/", transactionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", transactionHandler.Get)
				r.Put("/", transactionHandler.Update)
				r.Delete("/", transactionHandler.Delete)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", categoryHandler.Get)
				r.Put("/", categoryHandler.Update)
				r.Delete("/", categoryHandler.Delete)
			})
		})
	})

	return r
}
