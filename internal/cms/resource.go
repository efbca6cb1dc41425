package cms

import (
	"crypto/sha256"
	"path"
	"strings"
	"time"
)

// Resource states, as in the offline project of the CMS
const (
	StateUnchanged = iota
	StateChanged
	StateNew
	StateDeleted
)

// Resource is a file or folder stored in the CMS. Folder paths end with a slash.
type Resource struct {
	ID               uint   `gorm:"primarykey"`
	UUID             string `gorm:"uniqueIndex"`
	Path             string `gorm:"uniqueIndex;not null"`
	Name             string
	Title            string
	Description      string
	Type             string
	Category         string
	Tags             []string `gorm:"serializer:json"`
	Locale           string
	Content          string
	State            int
	ProjectID        uint
	Flags            int
	Length           int
	DateCreated      time.Time
	UserCreated      string
	DateLastModified time.Time
	UserLastModified string
	DateReleased     time.Time
	DateExpired      time.Time
}

func (r Resource) IsFolder() bool {
	return strings.HasSuffix(r.Path, "/")
}

// ParentFolder returns the path of the folder containing the resource
func (r Resource) ParentFolder() string {
	parent := path.Dir(strings.TrimSuffix(r.Path, "/"))
	if parent == "/" {
		return parent
	}
	return parent + "/"
}

func (r Resource) StateName() string {
	switch r.State {
	case StateChanged:
		return "changed"
	case StateNew:
		return "new"
	case StateDeleted:
		return "deleted"
	}
	return "unchanged"
}

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Name      string
	Username  string `gorm:"type:text collate nocase; not null; default:''; unique"`
	Password  string
	ProjectID uint
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return string(h.Sum(nil))
}

// Project groups the changes of its users. Resources in the online project cannot be modified.
type Project struct {
	ID     uint   `gorm:"primarykey"`
	Name   string `gorm:"uniqueIndex"`
	Online bool
}

const (
	OnlineProjectName  = "Online"
	OfflineProjectName = "Offline"
)
