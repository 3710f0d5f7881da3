package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/services"
)

func newCategory(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,alphanum"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(data.Alias, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func editCategory(c *fiber.Ctx) error {
	categoryId, _ := c.ParamsInt("categoryId")

	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,alphanum"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(uint(categoryId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	category, err = services.EditCategory(category, data.Alias, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func deleteCategory(c *fiber.Ctx) error {
	categoryId, _ := c.ParamsInt("categoryId")

	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(uint(categoryId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
