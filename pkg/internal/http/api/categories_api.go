package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
)

func listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)
	probe := c.Query("probe")

	var err error
	var categories []models.Category
	if len(probe) > 0 {
		categories, err = services.SearchCategories(take, offset, probe)
	} else {
		categories, err = services.ListCategory(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(categories)
}

func getCategory(c *fiber.Ctx) error {
	alias := c.Params("category")

	category, err := services.GetCategory(alias)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(category)
}
