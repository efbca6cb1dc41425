package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/afero"
	"github.com/svera/sitesearch/internal/language"
)

const (
	TypeFolder = "folder"
	TypeHTML   = "html"
	TypeText   = "text"
)

// Importer reads the files of a content directory into the CMS
type Importer struct {
	fs       afero.Fs
	root     string
	patterns []string
}

func NewImporter(fs afero.Fs, root string, patterns []string) *Importer {
	return &Importer{
		fs:       fs,
		root:     strings.TrimSuffix(filepath.ToSlash(root), "/"),
		patterns: patterns,
	}
}

func (i *Importer) Root() string {
	return i.root
}

// Import creates or updates a resource for every file below the root matching one of the patterns
func (i *Importer) Import(ctx context.Context, obj *Object) ([]Resource, error) {
	var imported []Resource
	err := afero.Walk(i.fs, i.root, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !i.Matches(file) {
			return nil
		}
		resource, err := i.ImportFile(ctx, obj, file)
		if err != nil {
			log.Printf("Error importing %s: %s\n", file, err)
			return nil
		}
		imported = append(imported, resource)
		return nil
	})
	return imported, err
}

// Matches tells whether the file, given as a path below the root, is imported
func (i *Importer) Matches(file string) bool {
	rel := strings.TrimPrefix(i.relative(file), "/")
	for _, pattern := range i.patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// ResourcePath returns the CMS path of a file below the root
func (i *Importer) ResourcePath(file string) string {
	return i.relative(file)
}

// ImportFile stores the content of file in the CMS, creating its parent folders if needed
func (i *Importer) ImportFile(ctx context.Context, obj *Object, file string) (Resource, error) {
	data, err := afero.ReadFile(i.fs, file)
	if err != nil {
		return Resource{}, err
	}
	resource, err := parseResource(i.ResourcePath(file), data)
	if err != nil {
		return Resource{}, err
	}
	if err = i.ensureFolders(ctx, obj, resource.ParentFolder()); err != nil {
		return Resource{}, err
	}

	_, err = obj.ReadResource(ctx, resource.Path)
	if errors.Is(err, ErrResourceNotFound) {
		return obj.CreateResource(ctx, resource)
	}
	if err != nil {
		return Resource{}, err
	}
	return obj.WriteResource(ctx, resource)
}

func (i *Importer) ensureFolders(ctx context.Context, obj *Object, folder string) error {
	if folder == "/" {
		return nil
	}
	parent := Resource{Path: folder}
	if err := i.ensureFolders(ctx, obj, parent.ParentFolder()); err != nil {
		return err
	}
	_, err := obj.ReadResource(ctx, folder)
	if !errors.Is(err, ErrResourceNotFound) {
		return err
	}
	name := path.Base(strings.TrimSuffix(folder, "/"))
	_, err = obj.CreateResource(ctx, Resource{
		Path:  folder,
		Name:  slug.Make(name),
		Title: name,
		Type:  TypeFolder,
	})
	return err
}

func (i *Importer) relative(file string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(file), i.root)
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return rel
}

func parseResource(resourcePath string, data []byte) (Resource, error) {
	ext := strings.ToLower(path.Ext(resourcePath))
	base := strings.TrimSuffix(path.Base(resourcePath), path.Ext(resourcePath))
	resource := Resource{
		Path:     resourcePath,
		Name:     slug.Make(base),
		Title:    base,
		Type:     TypeText,
		Category: topFolder(resourcePath),
	}

	if ext != ".html" && ext != ".htm" {
		text := stripTags(string(data))
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(strings.TrimLeft(line, "# ")); line != "" {
				resource.Title = line
				break
			}
		}
		resource.Content = collapseSpaces(text)
		resource.Locale = language.Detect(resource.Content)
		return resource, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return Resource{}, fmt.Errorf("error parsing %s: %w", resourcePath, err)
	}
	resource.Type = TypeHTML
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		resource.Title = title
	}
	if description, ok := metaContent(doc, "description"); ok {
		resource.Description = description
	}
	if category, ok := metaContent(doc, "category"); ok {
		resource.Category = category
	}
	if keywords, ok := metaContent(doc, "keywords"); ok {
		for _, k := range strings.Split(keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				resource.Tags = append(resource.Tags, k)
			}
		}
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return Resource{}, err
	}
	resource.Content = collapseSpaces(stripTags(body))
	resource.Locale = language.Detect(resource.Content)
	if lang, ok := doc.Find("html").First().Attr("lang"); ok && language.Normalize(lang) != "" {
		resource.Locale = language.Normalize(lang)
	}
	return resource, nil
}

func metaContent(doc *goquery.Document, name string) (string, bool) {
	content, ok := doc.Find(fmt.Sprintf(`meta[name="%s"]`, name)).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

func topFolder(resourcePath string) string {
	parts := strings.Split(strings.TrimPrefix(resourcePath, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}

func stripTags(markup string) string {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return html.UnescapeString(p.Sanitize(markup))
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
