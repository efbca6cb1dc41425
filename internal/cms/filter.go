package cms

import (
	"time"

	"golang.org/x/exp/slices"
)

// Resource attribute names, as used by ResourceFilter
const (
	AttrID               = "id"
	AttrUUID             = "uuid"
	AttrPath             = "path"
	AttrName             = "name"
	AttrTitle            = "title"
	AttrDescription      = "description"
	AttrType             = "type"
	AttrCategory         = "category"
	AttrTags             = "tags"
	AttrLocale           = "locale"
	AttrContent          = "content"
	AttrState            = "state"
	AttrProject          = "project"
	AttrFlags            = "flags"
	AttrLength           = "length"
	AttrDateCreated      = "datecreated"
	AttrUserCreated      = "usercreated"
	AttrDateLastModified = "datelastmodified"
	AttrUserLastModified = "userlastmodified"
	AttrDateReleased     = "datereleased"
	AttrDateExpired      = "dateexpired"
)

type attribute struct {
	name  string
	equal func(a, b Resource) bool
}

var attributes = []attribute{
	{AttrID, func(a, b Resource) bool { return a.ID == b.ID }},
	{AttrUUID, func(a, b Resource) bool { return a.UUID == b.UUID }},
	{AttrPath, func(a, b Resource) bool { return a.Path == b.Path }},
	{AttrName, func(a, b Resource) bool { return a.Name == b.Name }},
	{AttrTitle, func(a, b Resource) bool { return a.Title == b.Title }},
	{AttrDescription, func(a, b Resource) bool { return a.Description == b.Description }},
	{AttrType, func(a, b Resource) bool { return a.Type == b.Type }},
	{AttrCategory, func(a, b Resource) bool { return a.Category == b.Category }},
	{AttrTags, func(a, b Resource) bool { return slices.Equal(a.Tags, b.Tags) }},
	{AttrLocale, func(a, b Resource) bool { return a.Locale == b.Locale }},
	{AttrContent, func(a, b Resource) bool { return a.Content == b.Content }},
	{AttrState, func(a, b Resource) bool { return a.State == b.State }},
	{AttrProject, func(a, b Resource) bool { return a.ProjectID == b.ProjectID }},
	{AttrFlags, func(a, b Resource) bool { return a.Flags == b.Flags }},
	{AttrLength, func(a, b Resource) bool { return a.Length == b.Length }},
	{AttrDateCreated, func(a, b Resource) bool { return sameTime(a.DateCreated, b.DateCreated) }},
	{AttrUserCreated, func(a, b Resource) bool { return a.UserCreated == b.UserCreated }},
	{AttrDateLastModified, func(a, b Resource) bool { return sameTime(a.DateLastModified, b.DateLastModified) }},
	{AttrUserLastModified, func(a, b Resource) bool { return a.UserLastModified == b.UserLastModified }},
	{AttrDateReleased, func(a, b Resource) bool { return sameTime(a.DateReleased, b.DateReleased) }},
	{AttrDateExpired, func(a, b Resource) bool { return sameTime(a.DateExpired, b.DateExpired) }},
}

// ResourceFilter compares two versions of a resource, skipping the attributes an operation
// is allowed to change
type ResourceFilter struct {
	skipped []string
}

func NewResourceFilter(skipped ...string) ResourceFilter {
	return ResourceFilter{skipped: skipped}
}

var (
	// FilterEqual requires every attribute to be unchanged
	FilterEqual = NewResourceFilter()
	// FilterTouch allows the attributes set by Object.Touch to change
	FilterTouch = NewResourceFilter(AttrState, AttrDateLastModified, AttrUserLastModified, AttrProject)
)

// Differences returns the names of the attributes not skipped by the filter which differ
// between expected and actual
func (f ResourceFilter) Differences(expected, actual Resource) []string {
	var diff []string
	for _, attr := range attributes {
		if slices.Contains(f.skipped, attr.name) {
			continue
		}
		if !attr.equal(expected, actual) {
			diff = append(diff, attr.name)
		}
	}
	return diff
}

func sameTime(a, b time.Time) bool {
	return a.Equal(b)
}
