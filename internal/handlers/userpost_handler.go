package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"salintempel/internal/repository"
)

// Favorites and by-author listings return the full result set; these views
// are per-user and small, so no pagination is applied.

// GetMyFavoriteHandler godoc
// @Summary      Posts liked by a user
// @Tags         salin-tempel
// @Produce      json
// @Param        userId  path      string  true  "User identifier (e-mail)"
// @Success      200     {object}  dto.Response
// @Failure      400     {object}  dto.FailResponse
// @Router       /api/salin-tempel/my-favorite/{userId} [get]
func GetMyFavoriteHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		items, err := posts.FindByLikedUser(ctx, c.Params("userId"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to get my favorite salin tempels.")
		}
		return success(c, fiber.StatusOK, items)
	}
}

// GetMySalinTempelsHandler godoc
// @Summary      Posts authored by a user
// @Tags         salin-tempel
// @Produce      json
// @Param        userId  path      string  true  "Author identifier (e-mail)"
// @Success      200     {object}  dto.Response
// @Failure      400     {object}  dto.FailResponse
// @Router       /api/salin-tempel/my/{userId} [get]
func GetMySalinTempelsHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		items, err := posts.FindByAuthor(ctx, c.Params("userId"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to get my salin tempels.")
		}
		return success(c, fiber.StatusOK, items)
	}
}
