package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/i18n"
	"github.com/svera/sitesearch/internal/index"
	"github.com/svera/sitesearch/internal/search/controller"
	"github.com/svera/sitesearch/internal/webserver"
	"github.com/svera/sitesearch/internal/webserver/infrastructure"
	"gorm.io/gorm"
)

const (
	indexPath    = "/sitesearch/index"
	databasePath = "/sitesearch/database.db"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}
	if _, err := os.Stat(cfg.ContentPath); os.IsNotExist(err) {
		log.Fatal(fmt.Errorf("Directory '%s' does not exist, exiting", cfg.ContentPath))
	}
	if cfg.HomeDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		cfg.HomeDir = homeDir
	}
	if err := os.MkdirAll(filepath.Join(cfg.HomeDir, "sitesearch"), os.ModePerm); err != nil {
		log.Fatal(fmt.Errorf("Couldn't create %s, exiting", filepath.Join(cfg.HomeDir, "sitesearch")))
	}
	if cfg.JwtSecret == "" {
		log.Println("No JWT secret set, sessions will not survive a restart")
		cfg.JwtSecret = uuid.NewString()
	}

	form := searchForm(appFs, cfg.SearchFormConfig)

	idx, created := openIndex(cfg.HomeDir)
	defer idx.Close()

	db := infrastructure.Connect(cfg.HomeDir + databasePath)
	importer := cms.NewImporter(appFs, cfg.ContentPath, cfg.ContentPatterns)

	if !cfg.SkipReimport || created {
		go func() {
			obj := adminObject(db)
			reimport(importer, obj, idx, cfg.BatchSize)
			fileWatcher(importer, obj, idx)
		}()
	}

	printers, err := i18n.Printers(webserver.Translations(), "en")
	if err != nil {
		log.Fatal(err)
	}

	webserverConfig := webserver.Config{
		Version:        version,
		SessionTimeout: time.Duration(cfg.SessionTimeout * float64(time.Hour)),
		JwtSecret:      []byte(cfg.JwtSecret),
		FQDN:           cfg.FQDN,
		Port:           cfg.Port,
		ResultsPerPage: cfg.ResultsPerPage,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, idx, form)
	app := webserver.New(webserverConfig, printers, controllers)
	fmt.Printf("Sitesearch version %s started listening on port %s\n\n", version, cfg.Port)
	if err = app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

// openIndex opens the index stored in homeDir, creating it if it does not exist
func openIndex(homeDir string) (*index.BleveIndexer, bool) {
	indexFile, err := bleve.Open(homeDir + indexPath)
	if err == nil {
		return index.NewBleve(indexFile), false
	}
	if err != bleve.ErrorIndexPathDoesNotExist {
		log.Fatal(err)
	}
	log.Println("No index found, creating a new one")
	indexFile, err = bleve.New(homeDir+indexPath, index.Mapping())
	if err != nil {
		log.Fatal(err)
	}
	return index.NewBleve(indexFile), true
}

// searchForm reads the search form configuration at path, the default one being used if path is empty
func searchForm(appFs afero.Fs, path string) controller.Config {
	if path == "" {
		return controller.DefaultConfig()
	}
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		log.Fatal(fmt.Errorf("Couldn't read search form configuration at %s: %w", path, err))
	}
	form, err := controller.ParseConfig(data)
	if err != nil {
		log.Fatal(err)
	}
	return form
}

// adminObject gives access to the offline project as the default admin, who owns imported content
func adminObject(db *gorm.DB) *cms.Object {
	admin, err := (&cms.UserRepository{DB: db}).FindByUsername("admin")
	if err != nil {
		log.Fatal(fmt.Errorf("Couldn't read admin user: %w", err))
	}
	reqCtx, err := cms.NewRequestContext(context.Background(), db, admin.Uuid)
	if err != nil {
		log.Fatal(err)
	}
	return cms.NewObject(&cms.ResourceRepository{DB: db}, reqCtx)
}

func reimport(importer *cms.Importer, obj *cms.Object, idx *index.BleveIndexer, batchSize int) {
	start := time.Now()
	log.Printf("Importing content at %s, this can take a while depending on its size.\n", importer.Root())
	if _, err := importer.Import(context.Background(), obj); err != nil {
		log.Fatal(err)
	}
	resources, err := obj.AllResources(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	if err = idx.IndexResources(resources, batchSize); err != nil {
		log.Fatal(err)
	}
	log.Printf("Indexing finished, took %d seconds\n", int(time.Since(start).Seconds()))
}
