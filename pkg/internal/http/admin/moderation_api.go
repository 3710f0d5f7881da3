package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/services"
)

func hidePoll(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	poll, err := services.GetPollWithID(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.HidePoll(poll); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deactivateAccount(c *fiber.Ctx) error {
	accountId, _ := c.ParamsInt("accountId")

	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	account, err := services.GetAccountWithID(uint(accountId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeactivateAccount(account); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
