package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/biteright/biteright-api/internal/application/auth"
	"github.com/biteright/biteright-api/internal/application/user"
	"github.com/biteright/biteright-api/internal/application/verification"
	"github.com/biteright/biteright-api/internal/config"
	"github.com/biteright/biteright-api/internal/transport/http/handler"
	appmiddleware "github.com/biteright/biteright-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	codes := verification.NewManager(deps.VerificationCodeRepo, deps.CodeTTL)
	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo: deps.UserRepo,
		Codes:    codes,
		Hasher:   deps.Hasher,
		Mailer:   deps.Mailer,
	})
	userSvc := user.NewService(deps.UserRepo, deps.ProfileRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, deps.JWTProvider)
	userH := handler.NewUserHandler(userSvc)

	authenticate := appmiddleware.Authenticate(deps.JWTProvider, deps.UserRepo)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.Post("/auth/register", authH.Register)
		r.Post("/auth/check-availability", authH.CheckAvailability)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/verify", authH.Verify)
		r.Put("/auth/forgotten-password/{email}", authH.ForgottenPassword)
		r.Post("/auth/verify-reset-code", authH.VerifyResetCode)
		r.Post("/auth/reset-password", authH.ResetPassword)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(appmiddleware.RequireUser)

			r.Get("/auth/token-check", authH.TokenCheck)
			r.Post("/auth/change-username", authH.ChangeUsername)
			r.Post("/auth/change-email", authH.ChangeEmail)
			r.Post("/auth/change-password", authH.ChangePassword)
			r.Get("/users/me", userH.Me)
		})
	})

	return r
}
