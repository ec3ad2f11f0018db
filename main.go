package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"salintempel/bootstrap"
	"salintempel/database"
	_ "salintempel/docs"
	"salintempel/internal/middleware"
	"salintempel/internal/repository"
	"salintempel/internal/routes"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

// @title        SalinTempel API
// @version      1.0
// @description  REST API for the SalinTempel note-sharing app.
// @BasePath     /
func main() {
	cfg := database.LoadConfig()
	client := database.ConnectMongo(cfg)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.RequestID())
	app.Use(middleware.ViewerIdentity())

	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_email": c.Locals("user_email"),
		})
	})

	routes.Register(app, routes.Deps{
		Posts: repository.NewMongoSalinTempelRepo(db),
		Tags:  repository.NewMongoTagRepo(db),
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
