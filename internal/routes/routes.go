package routes

import (
	"github.com/gofiber/fiber/v2"

	"salintempel/internal/repository"
)

type Deps struct {
	Posts repository.SalinTempelRepository
	Tags  repository.TagRepository
}

func Register(app *fiber.App, d Deps) {
	SalinTempelRoutes(app, d)
	TagRoutes(app, d)
}
