package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/index"
	"github.com/svera/sitesearch/internal/search/controller"
	"github.com/svera/sitesearch/internal/webserver/controller/auth"
	"github.com/svera/sitesearch/internal/webserver/controller/resource"
	"github.com/svera/sitesearch/internal/webserver/controller/results"
	"github.com/svera/sitesearch/internal/webserver/jwtclaimsreader"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth                        *auth.Controller
	Results                     *results.Controller
	Resources                   *resource.Controller
	AllowIfNotLoggedIn          func(c *fiber.Ctx) error
	AlwaysRequireAuthentication func(c *fiber.Ctx) error
	OptionalAuthentication      func(c *fiber.Ctx) error
	ErrorHandler                func(c *fiber.Ctx, err error) error
}

// SetupControllers builds the controllers of every route. form is the search form configuration.
func SetupControllers(cfg Config, db *gorm.DB, idx *index.BleveIndexer, form controller.Config) Controllers {
	if cfg.ResultsPerPage == 0 {
		cfg.ResultsPerPage = resultsPerPage
	}
	if cfg.MaxPagesNavigator == 0 {
		cfg.MaxPagesNavigator = maxPagesNavigator
	}

	resourcesRepository := &cms.ResourceRepository{DB: db}
	usersRepository := &cms.UserRepository{DB: db}

	authCfg := auth.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	}

	resourcesCfg := resource.Config{
		ResultsPerPage:    cfg.ResultsPerPage,
		MaxPagesNavigator: cfg.MaxPagesNavigator,
	}

	// search results are resolved read-only, so an anonymous request context is enough
	resolver := cms.NewObject(resourcesRepository, cms.RequestContext{})

	return Controllers{
		Auth:                        auth.NewController(usersRepository, authCfg),
		Results:                     results.NewController(idx, resolver, form),
		Resources:                   resource.NewController(db, resourcesRepository, idx, resourcesCfg),
		AllowIfNotLoggedIn:          AllowIfNotLoggedIn(cfg.JwtSecret),
		AlwaysRequireAuthentication: AlwaysRequireAuthentication(cfg.JwtSecret),
		OptionalAuthentication:      OptionalAuthentication(cfg.JwtSecret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError
			message := fiber.ErrInternalServerError.Message

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			// Requests without a language segment still get a localized page
			lang, _ := c.Locals("Lang").(string)
			if lang == "" {
				lang = "en"
			}

			err = c.Status(code).Render("error", fiber.Map{
				"Lang":    lang,
				"Title":   fmt.Sprintf("%d", code),
				"Code":    code,
				"Message": message,
				"Session": jwtclaimsreader.SessionData(c),
				"Version": c.App().Config().AppName,
			}, "layout")

			if err != nil {
				log.Println(err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
