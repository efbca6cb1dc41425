package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/svera/sitesearch/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		c.Locals("Lang", c.Params("lang"))
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	langGroup.Get("/sessions/new", controllers.AllowIfNotLoggedIn, controllers.Auth.Login)
	langGroup.Post("/sessions", controllers.AllowIfNotLoggedIn, controllers.Auth.SignIn)
	langGroup.Get("/sessions/delete", controllers.Auth.SignOut)

	langGroup.Get("/resources", controllers.AlwaysRequireAuthentication, controllers.Resources.List)
	app.Post("/resources/touch", controllers.AlwaysRequireAuthentication, controllers.Resources.Touch)

	langGroup.Get("/search", controllers.OptionalAuthentication, controllers.Results.Search)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
