package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/http/exts"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func doSignup(c *fiber.Ctx) error {
	var data struct {
		Username  string `json:"username" validate:"required,max=30"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=6"`
		FirstName string `json:"first_name" validate:"max=30"`
		LastName  string `json:"last_name" validate:"max=30"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.CreateAccount(models.Account{
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}, data.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "a user with that username or email already exists")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	go services.EmailAccount(account, "Welcome to Agora", "Your account is ready, go cast some votes.")

	return c.JSON(account)
}

func doSignin(c *fiber.Ctx) error {
	var data struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateCredentials(data.Identifier, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	session, err := services.NewSession(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   session.Token,
		"account": account,
	})
}

func doSignout(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	session := c.Locals("session").(models.AuthSession)

	if err := services.TerminateSession(session); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// doResolveSocial accepts a provider assertion that an upstream
// verifier already validated and reconciles it with the local accounts.
// A resolution flagged is_new means no account is linked yet and the
// caller has to go through the social signup flow.
func doResolveSocial(c *fiber.Ctx) error {
	var data struct {
		Provider string `json:"provider" validate:"required"`
		UID      string `json:"uid" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var current *models.Account
	var session *models.AuthSession
	if user, ok := c.Locals("user").(models.Account); ok {
		current = &user
	}
	if held, ok := c.Locals("session").(models.AuthSession); ok {
		session = &held
	}

	resolution, err := services.ResolveSocialIdentity(data.Provider, data.UID, current, session)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if resolution.IsNew {
		return c.Status(fiber.StatusUnauthorized).JSON(resolution)
	}

	if session == nil && resolution.User != nil {
		opened, err := services.NewSession(*resolution.User)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"token":      opened.Token,
			"resolution": resolution,
		})
	}

	return c.JSON(fiber.Map{
		"resolution": resolution,
	})
}

// doSocialSignup finishes the new-account branch of the social flow:
// create the account, link the provider identity, open a session.
func doSocialSignup(c *fiber.Ctx) error {
	var data struct {
		Provider  string         `json:"provider" validate:"required"`
		UID       string         `json:"uid" validate:"required"`
		Username  string         `json:"username" validate:"required,max=30"`
		Email     string         `json:"email" validate:"required,email"`
		Password  string         `json:"password" validate:"required,min=6"`
		ExtraData map[string]any `json:"extra_data"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Username, data.Email, data.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "a user with that username or email already exists")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := services.NewSocialLink(account, data.Provider, data.UID, datatypes.JSONMap(data.ExtraData)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session, err := services.NewSession(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	go services.EmailAccount(account, "Welcome to Agora", "Your account is ready, go cast some votes.")

	return c.JSON(fiber.Map{
		"token":   session.Token,
		"account": account,
	})
}
