package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"backoffice_backend/internals/configs"
	database "backoffice_backend/internals/databases"
	"backoffice_backend/internals/middlewares"
	"backoffice_backend/internals/route"
	"backoffice_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnvBool("RUN_MIGRATIONS", true) {
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("[ERROR] migration failed: %v", err)
		}
	}

	if configs.GetEnvBool("RUN_SEEDS", false) {
		if err := seeds.Run(database.DB); err != nil {
			log.Fatalf("[ERROR] seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "backoffice_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    25 * 1024 * 1024,
	})

	middlewares.SetupMiddlewares(app)
	route.SetupRoutes(app, database.DB)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[INFO] shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("[WARN] shutdown: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("[INFO] 🚀 listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[ERROR] server stopped: %v", err)
	}
}
