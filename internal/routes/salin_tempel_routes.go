package routes

import (
	"github.com/gofiber/fiber/v2"

	"salintempel/internal/handlers"
)

func SalinTempelRoutes(app *fiber.App, d Deps) {
	g := app.Group("/api/salin-tempel")

	g.Get("/", handlers.GetSalinTempelsHandler(d.Posts))
	g.Post("/", handlers.CreateSalinTempelHandler(d.Posts, d.Tags))

	// fixed segments before the :id wildcard
	g.Get("/random", handlers.GetRandomSalinTempelHandler(d.Posts))
	g.Get("/my-favorite/:userId", handlers.GetMyFavoriteHandler(d.Posts))
	g.Get("/my/:userId", handlers.GetMySalinTempelsHandler(d.Posts))

	g.Get("/:id", handlers.GetSalinTempelByIDHandler(d.Posts))
	g.Put("/:id", handlers.UpdateSalinTempelHandler(d.Posts))
	g.Delete("/:id", handlers.DeleteSalinTempelHandler(d.Posts))
	g.Put("/:id/like/:userId", handlers.LikeSalinTempelHandler(d.Posts))
}
