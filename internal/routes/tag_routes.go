package routes

import (
	"github.com/gofiber/fiber/v2"

	"salintempel/internal/handlers"
)

func TagRoutes(app *fiber.App, d Deps) {
	tag := app.Group("/api/tag")

	tag.Get("/", handlers.GetTagsHandler(d.Tags))
}
