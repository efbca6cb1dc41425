package cms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Object gives access to the CMS resources on behalf of the user and project of its request context
type Object struct {
	repository *ResourceRepository
	reqCtx     RequestContext
	now        func() time.Time
}

func NewObject(repository *ResourceRepository, reqCtx RequestContext) *Object {
	return &Object{
		repository: repository,
		reqCtx:     reqCtx,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (o *Object) RequestContext() RequestContext {
	return o.reqCtx
}

func (o *Object) ReadResource(ctx context.Context, path string) (Resource, error) {
	return o.repository.Read(ctx, path)
}

// AllResources returns every resource which is not deleted, sorted by path
func (o *Object) AllResources(ctx context.Context) ([]Resource, error) {
	return o.repository.All(ctx)
}

// CreateResource stores a new resource in the current project, marked as new
func (o *Object) CreateResource(ctx context.Context, resource Resource) (Resource, error) {
	if err := o.checkWritable(); err != nil {
		return Resource{}, err
	}
	now := o.now()
	resource.ID = 0
	resource.UUID = uuid.NewString()
	resource.State = StateNew
	resource.ProjectID = o.reqCtx.CurrentProject.ID
	resource.DateCreated = now
	resource.UserCreated = o.reqCtx.CurrentUser.Uuid
	resource.DateLastModified = now
	resource.UserLastModified = o.reqCtx.CurrentUser.Uuid
	resource.Length = len(resource.Content)
	if err := o.repository.Create(ctx, &resource); err != nil {
		return Resource{}, fmt.Errorf("error creating %s: %w", resource.Path, err)
	}
	return resource, nil
}

// WriteResource replaces the descriptive attributes and the content of an existing resource
func (o *Object) WriteResource(ctx context.Context, resource Resource) (Resource, error) {
	if err := o.checkWritable(); err != nil {
		return Resource{}, err
	}
	stored, err := o.repository.Read(ctx, resource.Path)
	if err != nil {
		return Resource{}, err
	}
	stored.Title = resource.Title
	stored.Name = resource.Name
	stored.Description = resource.Description
	stored.Type = resource.Type
	stored.Category = resource.Category
	stored.Tags = resource.Tags
	stored.Locale = resource.Locale
	stored.Content = resource.Content
	stored.Length = len(resource.Content)
	o.markModified(&stored, o.now())
	err = o.repository.Update(ctx, stored,
		"Title", "Name", "Description", "Type", "Category", "Tags", "Locale", "Content", "Length",
		"State", "DateLastModified", "UserLastModified", "ProjectID",
	)
	return stored, err
}

// Touch sets the last modification date of the resource at path to timestamp, on behalf of the
// current user. If recursive is set and the resource is a folder, all resources below it are
// touched as well. Touched resources are returned.
func (o *Object) Touch(ctx context.Context, path string, timestamp time.Time, recursive bool) ([]Resource, error) {
	if err := o.checkWritable(); err != nil {
		return nil, err
	}
	resource, err := o.repository.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	resources := []Resource{resource}
	if recursive && resource.IsFolder() {
		children, err := o.repository.Children(ctx, path)
		if err != nil {
			return nil, err
		}
		resources = append(resources, children...)
	}
	for i := range resources {
		o.markModified(&resources[i], timestamp)
		if err := o.repository.Update(ctx, resources[i], "State", "DateLastModified", "UserLastModified", "ProjectID"); err != nil {
			return nil, fmt.Errorf("error touching %s: %w", resources[i].Path, err)
		}
	}
	return resources, nil
}

// DeleteResource deletes the resource at path. Resources which were never published are erased,
// the rest are kept marked as deleted.
func (o *Object) DeleteResource(ctx context.Context, path string) (Resource, error) {
	if err := o.checkWritable(); err != nil {
		return Resource{}, err
	}
	resource, err := o.repository.Read(ctx, path)
	if err != nil {
		return Resource{}, err
	}
	if resource.State == StateNew {
		resource.State = StateDeleted
		return resource, o.repository.Remove(ctx, resource)
	}
	o.markModified(&resource, o.now())
	resource.State = StateDeleted
	if err = o.repository.Update(ctx, resource, "State", "DateLastModified", "UserLastModified", "ProjectID"); err != nil {
		return Resource{}, fmt.Errorf("error deleting %s: %w", path, err)
	}
	return resource, nil
}

// markModified keeps resources created in the current project as new
func (o *Object) markModified(r *Resource, timestamp time.Time) {
	if r.State != StateNew {
		r.State = StateChanged
	}
	r.DateLastModified = timestamp
	r.UserLastModified = o.reqCtx.CurrentUser.Uuid
	r.ProjectID = o.reqCtx.CurrentProject.ID
}

func (o *Object) checkWritable() error {
	if o.reqCtx.CurrentProject.Online {
		return ErrPermissionDenied
	}
	return nil
}
