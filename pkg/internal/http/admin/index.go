package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin")
	{
		admin.Post("/categories", newCategory)
		admin.Put("/categories/:categoryId", editCategory)
		admin.Delete("/categories/:categoryId", deleteCategory)

		admin.Post("/polls/:pollId/hide", hidePoll)
		admin.Post("/accounts/:accountId/deactivate", deactivateAccount)
	}
}
