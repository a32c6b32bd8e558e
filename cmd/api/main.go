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

	"github.com/joho/godotenv"

	"github.com/biteright/biteright-api/internal/config"
	"github.com/biteright/biteright-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/biteright/biteright-api/internal/infrastructure/jwt"
	"github.com/biteright/biteright-api/internal/infrastructure/smtp"
	"github.com/biteright/biteright-api/internal/pkg/password"
	transporthttp "github.com/biteright/biteright-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("dynamo client: %v", err)
	}
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// The signing secret is mandatory; every protected route and the whole
	// login flow depend on it.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	deps := &transporthttp.Deps{
		UserRepo:             dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables),
		ProfileRepo:          dynamo.NewProfileRepo(dynamoClient, cfg.DynamoTables.Profiles),
		VerificationCodeRepo: dynamo.NewVerificationCodeRepo(dynamoClient, cfg.DynamoTables.VerificationCodes),
		Mailer:               smtp.NewMailer(cfg),
		JWTProvider:          jwtProvider,
		Hasher:               password.NewHasher(),
		CodeTTL:              cfg.CodeExpiry,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
