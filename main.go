package main

import (
	"Jokerscore/config"
	_ "Jokerscore/config/swagger"
	"Jokerscore/middleware"
	"Jokerscore/routes"
	"Jokerscore/services/redis"
	"Jokerscore/services/socket_io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// @title Jokerscore API
// @version 1.0
// @description Gin-Gonic server scoring poker rounds with jokers
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	// History is optional, scoring works without it
	var gormDB *gorm.DB
	if cfg.PostgresEnabled() {
		gormDB, err = config.ConnectGORM(cfg.Postgres, cfg.VerbosePostgres)
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		log.Println("GORM Connected")

		// Only migrate in development or during deployment
		if cfg.MigratePostgres {
			log.Println("Migrating PostgreSQL database...")
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
				// Continue execution even if migration fails
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		defer sqlDB.Close()
	} else {
		log.Println("POSTGRES_HOST not set, round history disabled")
	}

	redisClient, err := config.Connect_redis(cfg)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redis.CloseRedis(redisClient)

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, history routes will reject every token")
	}

	// request logging comes from utils.Logger in the routes
	r := gin.New()
	r.Use(gin.Recovery())

	middleware.SetUpMiddleware(r, cfg.SessionKey, cfg.UseHTTPS)

	routes.SetupRoutes(r, gormDB, redisClient, []byte(cfg.JWTSecret))

	sio := &socket_io.MySocketServer{}
	sio.Start(r, gormDB, redisClient, !cfg.Prod)

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-signalC
		log.Println("Shutting down...")
		sio.Stop()
		os.Exit(0)
	}()

	port := cfg.ListenPort()
	log.Printf("Server starting on port %s", port)

	if cfg.UseHTTPS {
		if err := r.RunTLS(":"+port, cfg.CertFile, cfg.KeyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
