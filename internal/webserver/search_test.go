package webserver_test

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
)

func TestSearch(t *testing.T) {
	var cases = []struct {
		name            string
		url             string
		expectedResults []string
	}{
		{"Search for a word in content and titles", "/en/search?q=search", []string{"news-release-html", "news-interview-html"}},
		{"Search is case insensitive", "/en/search?q=INSTALLATION", []string{"docs-install-md"}},
		{"Search with a checked facet entry", "/en/search?q=search&reloaded=true&lastquery=search&facet_Tags=people", []string{"news-interview-html"}},
		{"Facet entries are dropped for a new query", "/en/search?q=search&lastquery=engine&facet_Tags=people", []string{"news-release-html", "news-interview-html"}},
		{"Search with no results", "/en/search?q=nonexistent", []string{}},
	}

	app, _, _ := bootstrapApp(t)

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			doc := getDocument(t, app, tcase.url)

			results := []string{}
			doc.Find(".list-group-item").Each(func(i int, s *goquery.Selection) {
				id, _ := s.Attr("id")
				results = append(results, id)
			})
			if !sameElements(results, tcase.expectedResults) {
				t.Errorf("Wrong results, expected %v, got %v", tcase.expectedResults, results)
			}
		})
	}
}

func TestSearchFacets(t *testing.T) {
	app, _, _ := bootstrapApp(t)

	doc := getDocument(t, app, "/en/search?q=search&reloaded=true&lastquery=search&facet_Category=docs")

	if doc.Find(".list-group-item").Length() != 0 {
		t.Errorf("Expected no results when filtering by a category without matches")
	}

	category := map[string]string{}
	doc.Find("#facet-category .facet-item").Each(func(i int, s *goquery.Selection) {
		category[s.Find("a").Text()] = strings.TrimSpace(s.Find(".count").Text())
	})
	expected := map[string]string{"news": "2", "docs": ""}
	if !reflect.DeepEqual(category, expected) {
		t.Errorf("Wrong category facet, expected %v, got %v", expected, category)
	}

	missing := doc.Find("#facet-category .facet-item.missing a")
	if missing.Length() != 1 || missing.Text() != "docs" {
		t.Errorf("Expected 'docs' to be shown as a missing checked entry")
	}
	if href, _ := missing.Attr("href"); strings.Contains(href, "facet_Category") {
		t.Errorf("Link of a checked entry must uncheck it, got '%s'", href)
	}
}

func TestDidYouMean(t *testing.T) {
	app, _, _ := bootstrapApp(t)

	doc := getDocument(t, app, "/en/search?q=relese")

	suggestion := doc.Find(".did-you-mean a")
	if suggestion.Text() != "release" {
		t.Errorf("Wrong suggestion, expected 'release', got '%s'", suggestion.Text())
	}
	if href, _ := suggestion.Attr("href"); !strings.Contains(href, "q=release") {
		t.Errorf("Suggestion link must search for the suggested word, got '%s'", href)
	}
	if collated := doc.Find(".collated a").Text(); collated != "release" {
		t.Errorf("Wrong collated query, expected 'release', got '%s'", collated)
	}
}

func TestSearchHighlights(t *testing.T) {
	app, _, _ := bootstrapApp(t)

	doc := getDocument(t, app, "/en/search?q=faster")

	if mark := doc.Find("#news-release-html .highlight mark").First().Text(); mark != "faster" {
		t.Errorf("Expected highlighted term 'faster', got '%s'", mark)
	}
}

func TestSearchTranslated(t *testing.T) {
	app, _, _ := bootstrapApp(t)

	doc := getDocument(t, app, "/es/search?q=nonexistent")

	if text := strings.TrimSpace(doc.Find(".no-results").Text()); text != "No se han encontrado resultados" {
		t.Errorf("Wrong translation, got '%s'", text)
	}
}

func getDocument(t *testing.T, app *fiber.App, url string) *goquery.Document {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Wrong status code received, expected %d, got %d", http.StatusOK, response.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatalf("Error parsing response body: %v", err)
	}
	return doc
}

func sameElements(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	count := map[string]int{}
	for _, v := range a {
		count[v]++
	}
	for _, v := range b {
		count[v]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}
