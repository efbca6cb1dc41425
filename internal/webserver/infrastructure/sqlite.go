package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/svera/sitesearch/internal/cms"
	"gorm.io/gorm"
)

// Connect opens the CMS database at path, creating it if it does not exist, and makes sure
// it holds the offline and online projects as well as an admin user
func Connect(path string) *gorm.DB {
	inMemory := strings.Contains(path, ":memory:")
	if _, err := os.Stat(path); os.IsNotExist(err) && !inMemory {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// every connection to an in-memory database gets its own, empty one
	if inMemory {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&cms.Project{}, &cms.User{}, &cms.Resource{}); err != nil {
		log.Fatal(err)
	}
	offline := addProject(db, cms.OfflineProjectName, false)
	addProject(db, cms.OnlineProjectName, true)
	addDefaultAdmin(db, offline)
	return db
}

func addProject(db *gorm.DB, name string, online bool) cms.Project {
	project := cms.Project{Name: name, Online: online}
	if err := db.Where(cms.Project{Name: name}).FirstOrCreate(&project).Error; err != nil {
		log.Fatalf("Couldn't create project %s: %s", name, err)
	}
	return project
}

func addDefaultAdmin(db *gorm.DB, project cms.Project) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		user := &cms.User{
			Uuid:      uuid.NewString(),
			Name:      "Admin",
			Username:  "admin",
			Password:  cms.Hash("admin"),
			ProjectID: project.ID,
		}
		result := db.Create(&user)
		if result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}
