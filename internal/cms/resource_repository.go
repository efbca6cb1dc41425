package cms

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/svera/sitesearch/internal/result"
	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

// Create stores a new resource. A deleted resource at the same path is replaced.
func (r *ResourceRepository) Create(ctx context.Context, resource *Resource) error {
	var count int64
	r.DB.WithContext(ctx).Model(&Resource{}).Where("path = ? AND state <> ?", resource.Path, StateDeleted).Count(&count)
	if count > 0 {
		return ErrResourceExists
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("path = ? AND state = ?", resource.Path, StateDeleted).Delete(&Resource{}).Error; err != nil {
			return err
		}
		return tx.Create(resource).Error
	})
}

// Remove erases the resource from the database
func (r *ResourceRepository) Remove(ctx context.Context, resource Resource) error {
	return r.DB.WithContext(ctx).Delete(&resource).Error
}

// Read returns the resource stored at path. Deleted resources are not found.
func (r *ResourceRepository) Read(ctx context.Context, path string) (Resource, error) {
	var resource Resource
	err := r.DB.WithContext(ctx).Where("path = ? AND state <> ?", path, StateDeleted).First(&resource).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resource, ErrResourceNotFound
	}
	return resource, err
}

// Update writes the passed columns of the resource
func (r *ResourceRepository) Update(ctx context.Context, resource Resource, columns ...string) error {
	return r.DB.WithContext(ctx).Model(&resource).Select(columns).Updates(&resource).Error
}

// Children returns every resource below the folder at path
func (r *ResourceRepository) Children(ctx context.Context, path string) ([]Resource, error) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	children := []Resource{}
	err := r.DB.WithContext(ctx).
		Where("path LIKE ? ESCAPE '\\' AND path <> ? AND state <> ?", escapeLike(path)+"%", path, StateDeleted).
		Order("path").
		Find(&children).Error
	return children, err
}

// All returns every resource which is not deleted
func (r *ResourceRepository) All(ctx context.Context) ([]Resource, error) {
	resources := []Resource{}
	err := r.DB.WithContext(ctx).Where("state <> ?", StateDeleted).Order("path").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) List(page int, resultsPerPage int) (result.Paginated[[]Resource], error) {
	resources := []Resource{}
	var total int64

	res := r.DB.Scopes(Paginate(page, resultsPerPage)).Where("state <> ?", StateDeleted).Order("date_last_modified DESC").Find(&resources)
	if res.Error != nil {
		log.Printf("error listing resources: %s\n", res.Error)
		return result.Paginated[[]Resource]{}, res.Error
	}
	r.DB.Model(&Resource{}).Where("state <> ?", StateDeleted).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		resources,
	), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer("%", "\\%", "_", "\\_").Replace(s)
}
