package i18n

import (
	"io/fs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printers returns a printer for each language with a translation file in dir
func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, langs, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(langs))
	for _, lang := range langs {
		printers[lang] = message.NewPrinter(language.Make(lang), message.Catalog(cat))
	}
	return printers, nil
}
