package cms

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) FindByUuid(uuid string) (User, error) {
	return u.find("uuid", uuid)
}

func (u *UserRepository) FindByUsername(username string) (User, error) {
	return u.find("username", username)
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		log.Printf("error creating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) find(field, value string) (User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, result.Error
}

type ProjectRepository struct {
	DB *gorm.DB
}

func (p *ProjectRepository) Find(id uint) (Project, error) {
	var project Project
	err := p.DB.First(&project, id).Error
	return project, err
}

func (p *ProjectRepository) FindByName(name string) (Project, error) {
	var project Project
	err := p.DB.Where("name = ?", name).First(&project).Error
	return project, err
}

// NewRequestContext returns the request context of the user with the passed uuid, working in
// the project the user has selected
func NewRequestContext(ctx context.Context, db *gorm.DB, userUuid string) (RequestContext, error) {
	users := &UserRepository{DB: db.WithContext(ctx)}
	user, err := users.FindByUuid(userUuid)
	if err != nil {
		return RequestContext{}, err
	}
	projects := &ProjectRepository{DB: db.WithContext(ctx)}
	project, err := projects.Find(user.ProjectID)
	if err != nil {
		return RequestContext{}, fmt.Errorf("error reading project of user %s: %w", user.Username, err)
	}
	return RequestContext{CurrentUser: user, CurrentProject: project}, nil
}
