package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/anujyadav2244/cricriser/config"
	"github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/container"
	pginfra "github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/internal/router"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
	"github.com/anujyadav2244/cricriser/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration failed: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		log.Fatalf("failed to init GCS client: %v", err)
	}
	defer func() { _ = gcsClient.Close() }()

	esClient, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init Elasticsearch client: %v", err)
	}

	rabbitPub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitPub.Close()

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	sessions := application.NewSessionStore(rdb, cfg.TokenTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	container.SetRedis(rdb)
	container.SetGCS(gcsClient)
	container.SetES(esClient)
	container.SetRabbitPub(rabbitPub)
	container.SetJWT(jwtManager)
	container.SetSessions(sessions)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
