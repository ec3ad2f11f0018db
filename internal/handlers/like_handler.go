package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"salintempel/internal/repository"
)

// LikeSalinTempelHandler godoc
// @Summary      Toggle a like
// @Description  Flips the user's membership in likesBy and adjusts totalLikes by one, both in a single atomic document update. Calling twice restores the original state.
// @Tags         salin-tempel
// @Produce      json
// @Param        id      path      string  true  "Post ID (hex)"
// @Param        userId  path      string  true  "User identifier (e-mail)"
// @Success      200     {object}  dto.Response
// @Failure      400     {object}  dto.FailResponse
// @Failure      404     {object}  dto.FailResponse
// @Router       /api/salin-tempel/{id}/like/{userId} [put]
func LikeSalinTempelHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := posts.ToggleLike(ctx, c.Params("id"), c.Params("userId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(c, fiber.StatusNotFound, "Salin tempel not found.")
			}
			return fail(c, fiber.StatusBadRequest, "Failed to like salin tempel.")
		}
		return success(c, fiber.StatusOK, st)
	}
}
