package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"salintempel/internal/repository"
)

// GetTagsHandler returns every known tag; the client's tag picker uses it as
// its autocomplete source.
func GetTagsHandler(tags repository.TagRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		all, err := tags.All(ctx)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to get tags.")
		}
		return success(c, fiber.StatusOK, all)
	}
}
