package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
)

func listPolls(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	polls, err := services.ListPoll(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(polls)
}

func getPoll(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	poll.Metric = services.GetPollMetric(poll)

	return c.JSON(poll)
}

func createPoll(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string   `json:"title" validate:"required,max=50"`
		Description string   `json:"description"`
		Categories  []string `json:"categories"`
		Options     []string `json:"options" validate:"required,min=1,dive,required,max=50"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var categories []models.Category
	for _, alias := range data.Categories {
		category, err := services.GetCategoryOrCreate(alias, alias)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		categories = append(categories, category)
	}

	poll := models.Poll{
		Title:       data.Title,
		Description: data.Description,
		Categories:  categories,
		Visibility:  true,
		AccountID:   user.ID,
		Options: lo.Map(data.Options, func(item string, index int) models.PollOption {
			return models.PollOption{ChoiceText: item}
		}),
	}

	var err error
	if poll, err = services.NewPoll(poll); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(poll)
}

func updatePoll(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string `json:"title" validate:"required,max=50"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var poll models.Poll
	if err := database.C.Where("id = ? AND account_id = ?", pollId, user.ID).First(&poll).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	poll.Title = data.Title
	poll.Description = data.Description

	var err error
	if poll, err = services.UpdatePoll(poll); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(poll)
}

// deletePoll hides the poll instead of removing it, options and votes
// stay on record.
func deletePoll(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var poll models.Poll
	if err := database.C.Where("id = ? AND account_id = ?", pollId, user.ID).First(&poll).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.HidePoll(poll); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func getPollMetric(c *fiber.Ctx) error {
	pollId, _ := c.ParamsInt("pollId")

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(services.GetPollMetric(poll))
}
