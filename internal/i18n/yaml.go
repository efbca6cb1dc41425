package i18n

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	Entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.Entries[key]; ok {
		// \x02 is ASCII code for hex 02, which is STX (start of text)
		return "\x02" + value, true
	}
	return "", false
}

func ParseDict(file []byte) (catalog.Dictionary, error) {
	data := map[string]string{}
	err := yaml.Unmarshal(file, &data)
	if err != nil {
		return nil, err
	}
	return &yamlDictionary{Entries: data}, nil
}

// NewCatalogFromFolder reads all translation yml files at the root of dir and builds a catalog
// from them. Each file must be named after the two-letter code of its language, e. g. "es.yml".
// The languages found are returned along with the catalog.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, []string, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, nil, err
	}
	translations := map[string]catalog.Dictionary{}
	langs := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".yml" {
			continue
		}
		yamlFile, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, nil, err
		}
		dict, err := ParseDict(yamlFile)
		if err != nil {
			return nil, nil, err
		}
		lang := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		translations[lang] = dict
		langs = append(langs, lang)
	}
	cat, err := catalog.NewFromMap(translations, catalog.Fallback(language.MustParse(fallbackLang)))
	if err != nil {
		return nil, nil, err
	}
	return cat, langs, nil
}
