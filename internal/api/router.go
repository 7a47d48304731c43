package api

import (
	"net/http"
	"time"

	"qna_forum/internal/api/handler"
	"qna_forum/internal/app/service"
	"qna_forum/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	questionService *service.QuestionService,
	answerService *service.AnswerService,
	searchService *service.SearchService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies any bearer token in "Authorization: Bearer T" and puts the
	// claims in context; Authenticator enforces them on protected routes.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (register/login public, me/logout authenticated)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(auth chi.Router) {
			authHandler.RegisterRoutes(auth)
		})

		// Question + answer routes (reads public, writes authenticated)
		questionHandler := handler.NewQuestionHandler(questionService, answerService)
		v1.Route("/questions", questionHandler.RegisterRoutes)

		// Search routes (public)
		searchHandler := handler.NewSearchHandler(searchService)
		v1.Route("/search", searchHandler.RegisterRoutes)
	})

	return r
}
