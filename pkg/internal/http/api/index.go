package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/signup", doSignup)
			auth.Post("/signin", doSignin)
			auth.Post("/signout", doSignout)
			auth.Post("/social", doResolveSocial)
			auth.Post("/social/signup", doSocialSignup)
		}

		users := api.Group("/users").Name("Users API")
		{
			users.Get("/me", getMyself)
			users.Delete("/me", deactivateMyself)
		}

		categories := api.Group("/categories").Name("Categories API")
		{
			categories.Get("/", listCategories)
			categories.Get("/:category", getCategory)
		}

		polls := api.Group("/polls").Name("Polls API")
		{
			polls.Get("/", listPolls)
			polls.Post("/", createPoll)
			polls.Get("/:pollId", getPoll)
			polls.Put("/:pollId", updatePoll)
			polls.Delete("/:pollId", deletePoll)
			polls.Get("/:pollId/metric", getPollMetric)
			polls.Post("/:pollId/votes", castVote)
			polls.Get("/:pollId/votes/me", getMyVote)
		}
	}
}
