package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
)

func getMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	return c.JSON(user)
}

func deactivateMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	if err := services.DeactivateAccount(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	go services.EmailAccount(user, "Your account was deactivated", "Your account is kept on record but can no longer sign in.")

	return c.SendStatus(fiber.StatusNoContent)
}
