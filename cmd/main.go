package main

import (
	"log"

	"github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/routes"
	"github.com/Surya-k-bot/food-management-system/services"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)

	hub := services.NewRealtimeHub()
	dispatcher := services.NewDispatcher(cfg, config.DB, hub)

	r := routes.SetupRouter(cfg, dispatcher, hub)

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
