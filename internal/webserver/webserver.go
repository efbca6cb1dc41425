package webserver

import (
	"embed"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/sitesearch/internal/webserver/infrastructure"
	"golang.org/x/exp/slices"
	"golang.org/x/text/message"
)

var (
	//go:embed embedded
	embedded embed.FS
	cssFS    fs.FS
	viewsFS  fs.FS
)

const (
	resultsPerPage    = 10
	maxPagesNavigator = 5
)

type Config struct {
	Version           string
	SessionTimeout    time.Duration
	JwtSecret         []byte
	FQDN              string
	Port              string
	ResultsPerPage    int
	MaxPagesNavigator int
}

func init() {
	var err error

	cssFS, err = fs.Sub(embedded, "embedded/css")
	if err != nil {
		log.Fatal(err)
	}

	viewsFS, err = fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}
}

// Translations returns the folder holding the yaml dictionaries of the web interface
func Translations() fs.FS {
	dir, err := fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
	return dir
}

// New builds a new Fiber application and set up the required routes
func New(cfg Config, printers map[string]*message.Printer, controllers Controllers) *fiber.App {
	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		AppName:               cfg.Version,
		PassLocalsToViews:     true,
		ErrorHandler:          controllers.ErrorHandler,
	})

	supportedLanguages := make([]string, 0, len(printers))
	for lang := range printers {
		supportedLanguages = append(supportedLanguages, lang)
	}
	slices.Sort(supportedLanguages)

	app.Use(SetFQDN(cfg))
	routes(app, controllers, supportedLanguages)
	return app
}
