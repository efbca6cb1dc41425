package cms_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/webserver/infrastructure"
)

func TestList(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	repository := &cms.ResourceRepository{DB: db}
	obj := cms.NewObject(repository, requestContext(t, db, "admin"))
	createResources(t, obj, "/a.html", "/b.html", "/c.html")

	var cases = []struct {
		name          string
		page          int
		expectedHits  int
		expectedPages int
	}{
		{"First page", 1, 2, 2},
		{"Second page", 2, 1, 2},
		{"Page beyond the last one", 3, 0, 2},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			list, err := repository.List(tcase.page, 2)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(list.Hits()) != tcase.expectedHits {
				t.Errorf("Expected %d hits, got %d", tcase.expectedHits, len(list.Hits()))
			}
			if list.TotalPages() != tcase.expectedPages {
				t.Errorf("Expected %d pages, got %d", tcase.expectedPages, list.TotalPages())
			}
			if list.TotalHits() != 3 {
				t.Errorf("Expected 3 total hits, got %d", list.TotalHits())
			}
		})
	}
}

func TestDeletedResourcesAreNotRead(t *testing.T) {
	ctx := context.Background()
	db := infrastructure.Connect("file::memory:")
	repository := &cms.ResourceRepository{DB: db}
	obj := cms.NewObject(repository, requestContext(t, db, "admin"))
	resources := createResources(t, obj, "/folder/", "/folder/gone.html", "/folder/kept.html")

	deleted := resources[1]
	deleted.State = cms.StateDeleted
	if err := repository.Update(ctx, deleted, "State"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := repository.Read(ctx, "/folder/gone.html"); !errors.Is(err, cms.ErrResourceNotFound) {
		t.Errorf("Expected error '%v', got '%v'", cms.ErrResourceNotFound, err)
	}
	children, err := repository.Children(ctx, "/folder")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(children) != 1 || children[0].Path != "/folder/kept.html" {
		t.Errorf("Wrong children: %v", children)
	}
}

func TestResourceFilter(t *testing.T) {
	base := cms.Resource{
		ID:               1,
		Path:             "/index.html",
		Title:            "Home",
		Tags:             []string{"a"},
		State:            cms.StateUnchanged,
		DateLastModified: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		UserLastModified: "admin",
	}
	touched := base
	touched.State = cms.StateChanged
	touched.DateLastModified = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	touched.UserLastModified = "editor"
	touched.ProjectID = 2

	edited := touched
	edited.Title = "Start"
	edited.Tags = []string{"a", "b"}

	var cases = []struct {
		name     string
		filter   cms.ResourceFilter
		actual   cms.Resource
		expected []string
	}{
		{"Equal resources", cms.FilterEqual, base, nil},
		{"Touched resource compared with equal filter", cms.FilterEqual, touched, []string{cms.AttrState, cms.AttrProject, cms.AttrDateLastModified, cms.AttrUserLastModified}},
		{"Touched resource compared with touch filter", cms.FilterTouch, touched, nil},
		{"Edited resource compared with touch filter", cms.FilterTouch, edited, []string{cms.AttrTitle, cms.AttrTags}},
		{"Custom filter", cms.NewResourceFilter(cms.AttrTitle, cms.AttrTags), edited, []string{cms.AttrState, cms.AttrProject, cms.AttrDateLastModified, cms.AttrUserLastModified}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if diff := tcase.filter.Differences(base, tcase.actual); !reflect.DeepEqual(diff, tcase.expected) {
				t.Errorf("Wrong differences, expected %v, got %v", tcase.expected, diff)
			}
		})
	}
}

func TestParentFolder(t *testing.T) {
	var cases = []struct {
		path     string
		expected string
	}{
		{"/index.html", "/"},
		{"/news/", "/"},
		{"/news/release.html", "/news/"},
		{"/news/2024/", "/news/"},
	}

	for _, tcase := range cases {
		t.Run(tcase.path, func(t *testing.T) {
			if got := (cms.Resource{Path: tcase.path}).ParentFolder(); got != tcase.expected {
				t.Errorf("Expected %s, got %s", tcase.expected, got)
			}
		})
	}
}
