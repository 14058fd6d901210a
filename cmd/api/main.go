package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/dependency_container"
	"github.com/Setharkk/Skyent-dev/pkg/infra/auth/jwt"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database"
	infraLogger "github.com/Setharkk/Skyent-dev/pkg/infra/logger"
	_ "github.com/Setharkk/Skyent-dev/pkg/infra/migrations"
	"github.com/Setharkk/Skyent-dev/pkg/server"
	"github.com/Setharkk/Skyent-dev/pkg/server/router"
	"github.com/joho/godotenv"
)

const defaultTokenTTL = 24 * time.Hour

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		log.Println(err)
	}
	cfg := config.GetConfig()

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(cfg, os.Args[2:]); err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		return
	}

	logger, closeLogs, err := infraLogger.NewLogger(infraLogger.Options{
		Name:  "api",
		Level: cfg.App.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogs()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer container.Close()

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(
				container.Middlewares,
				container.HandlerTransport,
				container.WSHandlerTransport,
				cfg,
			),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}

// issueToken prints a bearer token for the /api/v1 routes:
// api token <subject> [ttl].
func issueToken(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: api token <subject> [ttl]")
	}
	ttl := defaultTokenTTL
	if len(args) > 1 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("invalid ttl %q: %w", args[1], err)
		}
		ttl = d
	}
	token, err := jwt.NewJwtManager(&cfg.Server).CreateToken(args[0], ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
