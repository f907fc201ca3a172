package main // Entry point package

import (
	"context" // bounds startup database calls
	"log"     // Logging library

	"github.com/joho/godotenv"    // loads .env files during local development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jnanasetu/auth-service/internal/config"     // Internal config loader
	"github.com/jnanasetu/auth-service/internal/database"   // MySQL connection + schema
	"github.com/jnanasetu/auth-service/internal/handler"    // HTTP handlers
	"github.com/jnanasetu/auth-service/internal/identity"   // Google ID token verification
	"github.com/jnanasetu/auth-service/internal/mail"       // SMTP mail delivery
	"github.com/jnanasetu/auth-service/internal/middleware" // rate limiting
	"github.com/jnanasetu/auth-service/internal/queue"      // mail queue consumer
	"github.com/jnanasetu/auth-service/internal/repository" // DB repositories
	"github.com/jnanasetu/auth-service/internal/router"     // Internal router setup
	queue_publisher "github.com/jnanasetu/auth-service/internal/service"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	google := identity.NewGoogleVerifier(cfg.GoogleClientID)
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})

	// When a broker is configured, requests enqueue mail events and the
	// consumer delivers them over SMTP in the background.  Without a broker
	// the handlers send over SMTP directly; either way a delivery failure
	// never fails the request that triggered it.
	var notifier mail.Sender = mailer
	if cfg.RabbitURL != "" {
		notifier = queue_publisher.NewNotifier(cfg.RabbitURL)
		go func() {
			if err := queue.StartMailConsumer(cfg.RabbitURL, mailer); err != nil {
				log.Printf("mail consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	rdb := config.NewRedisClient() // nil when redis is unreachable; limiter degrades to pass-through
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	auth := handler.NewAuthHandler(cfg, users, google, notifier)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
