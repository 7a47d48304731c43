package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qna_forum/internal/api"
	"qna_forum/internal/app/service"
	"qna_forum/internal/common/security"
	"qna_forum/internal/domain/repository"
	"qna_forum/internal/platform/config"
	"qna_forum/internal/platform/database"
	"qna_forum/internal/platform/denylist"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database (connects and applies migrations)
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize token denylist (no-op unless REDIS_ADDR is set)
	denylist.ConnectRedis()
	defer denylist.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	questionRepo := repository.NewPgQuestionRepository(database.DB)
	answerRepo := repository.NewPgAnswerRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	answerService := service.NewAnswerService(answerRepo, questionRepo)
	searchService := service.NewSearchService(questionRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, questionService, answerService, searchService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
