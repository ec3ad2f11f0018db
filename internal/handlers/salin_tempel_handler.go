package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"salintempel/dto"
	"salintempel/internal/pagination"
	"salintempel/internal/repository"
	"salintempel/model"
	"salintempel/services"
)

const storeTimeout = 5 * time.Second

// CreateSalinTempelHandler godoc
// @Summary      Create a salin tempel
// @Description  Create a post; tag names not yet known are inserted into the tag collection first
// @Tags         salin-tempel
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreateSalinTempelDTO  true  "Post payload"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.FailResponse
// @Router       /api/salin-tempel [post]
func CreateSalinTempelHandler(posts repository.SalinTempelRepository, tags repository.TagRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateSalinTempelDTO
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to create salin tempel.")
		}
		if errs := services.ValidateSalinTempel(body); len(errs) > 0 {
			return fail(c, fiber.StatusBadRequest, "Failed to create salin tempel.", errs...)
		}

		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := services.CreateSalinTempel(ctx, posts, tags, body)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to create salin tempel.")
		}
		return success(c, fiber.StatusCreated, st)
	}
}

// GetSalinTempelsHandler godoc
// @Summary      List salin tempels
// @Description  Paginated listing. totalLikes descends when type=popular, createdAt descends when sort=new; both keys always apply.
// @Tags         salin-tempel
// @Produce      json
// @Param        offset  query     int     false  "Window start"          default(0)
// @Param        limit   query     int     false  "Page size"             default(10)
// @Param        sort    query     string  false  "new or old"            default(new)
// @Param        type    query     string  false  "popular or empty"
// @Success      200     {object}  dto.ListResponse
// @Failure      400     {object}  dto.FailResponse
// @Router       /api/salin-tempel [get]
func GetSalinTempelsHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := pagination.Parse(c.Query("offset"), c.Query("limit"), c.Query("sort"), c.Query("type"))

		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		items, count, err := posts.List(ctx, q)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to get salin tempels.")
		}

		next, previous := q.Cursors(c.BaseURL()+c.Path(), count)
		return c.Status(fiber.StatusOK).JSON(dto.ListResponse{
			Status:   "success",
			EndPoint: c.OriginalURL(),
			Method:   c.Method(),
			Data:     items,
			Next:     next,
			Previous: previous,
			Count:    count,
		})
	}
}

// GetSalinTempelByIDHandler godoc
// @Summary      Get one salin tempel
// @Tags         salin-tempel
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.FailResponse
// @Router       /api/salin-tempel/{id} [get]
func GetSalinTempelByIDHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := posts.FindByID(ctx, c.Params("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(c, fiber.StatusNotFound, "Salin tempel not found.")
			}
			return fail(c, fiber.StatusBadRequest, "Failed to get salin tempel.")
		}
		return success(c, fiber.StatusOK, st)
	}
}

// UpdateSalinTempelHandler godoc
// @Summary      Update a salin tempel
// @Description  Full-field overwrite. Does not insert new tag records.
// @Tags         salin-tempel
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Post ID (hex)"
// @Param        data  body      dto.UpdateSalinTempelDTO  true  "Replacement fields"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.FailResponse
// @Failure      404   {object}  dto.FailResponse
// @Router       /api/salin-tempel/{id} [put]
func UpdateSalinTempelHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateSalinTempelDTO
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to update salin tempel.")
		}
		if services.StrictValidation() {
			var errs []string
			if body.Title == "" {
				errs = append(errs, "Title is required.")
			}
			if body.Content == "" {
				errs = append(errs, "Content is required.")
			}
			if len(errs) > 0 {
				return fail(c, fiber.StatusBadRequest, "Failed to update salin tempel.", errs...)
			}
		}

		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := posts.Update(ctx, c.Params("id"), model.SalinTempel{
			Title:     body.Title,
			Content:   body.Content,
			Author:    body.Author,
			IsNSFW:    body.IsNSFW,
			Tags:      body.Tags,
			UpdatedAt: time.Now().UTC(),
		})
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(c, fiber.StatusNotFound, "Salin tempel not found.")
			}
			return fail(c, fiber.StatusBadRequest, "Failed to update salin tempel.")
		}
		return success(c, fiber.StatusOK, st)
	}
}

// DeleteSalinTempelHandler answers success whether or not the id matched,
// like the original API; data is null when nothing was deleted.
func DeleteSalinTempelHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := posts.Delete(ctx, c.Params("id"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to delete salin tempel.")
		}
		return success(c, fiber.StatusOK, st)
	}
}

// GetRandomSalinTempelHandler picks one post at random; data is null on an
// empty collection.
func GetRandomSalinTempelHandler(posts repository.SalinTempelRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
		defer cancel()

		st, err := posts.Random(ctx)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Failed to get random salin tempel.")
		}
		return success(c, fiber.StatusOK, st)
	}
}
