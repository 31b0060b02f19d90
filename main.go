package main

import (
	"context"
	"time"

	"museum-api/config"
	"museum-api/database"
	"museum-api/internal/app/cleanup"
	routes "museum-api/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := cleanup.NewSweeper(database.DB, config.SWEEP_INTERVAL)
	go sweeper.Start(ctx)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
