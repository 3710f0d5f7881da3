package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
)

func castVote(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		OptionID uint `json:"option_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	option, err := services.GetPollOptionWithID(data.OptionID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	vote, err := services.CastVote(user, poll, option)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOptionNotInPoll):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrAlreadyVoted):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(vote)
}

func getMyVote(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	vote, err := services.GetVoteWithVoter(user, poll)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(vote)
}
