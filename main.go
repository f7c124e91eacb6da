package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/circlo/circlo-backend-go/config"
	middleware "github.com/circlo/circlo-backend-go/middleware"
	routes "github.com/circlo/circlo-backend-go/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("MongoDB connected")

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cfg.MongoClient.Disconnect(ctx); err != nil {
			log.Printf("Mongo disconnect error: %v", err)
		}
	}()

	r := gin.Default()
	r.Use(middleware.CORS())

	routes.SetupRoutes(r, cfg)

	log.Printf("Server running on %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
