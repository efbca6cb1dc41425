//go:build !linux

package main

import (
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/index"
)

func fileWatcher(importer *cms.Importer, obj *cms.Object, idx *index.BleveIndexer) {
}
