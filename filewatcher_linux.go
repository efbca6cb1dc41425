package main

import (
	"context"
	"errors"
	"log"

	"github.com/rjeczalik/notify"
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/index"
)

func fileWatcher(importer *cms.Importer, obj *cms.Object, idx *index.BleveIndexer) {
	log.Printf("Starting file watcher on %s\n", importer.Root())
	c := make(chan notify.EventInfo, 1)
	if err := notify.Watch(importer.Root()+"/...", c, notify.InCloseWrite, notify.InMovedTo, notify.InMovedFrom, notify.InDelete); err != nil {
		log.Fatal(err)
	}

	defer notify.Stop(c)

	ctx := context.Background()
	for ei := range c {
		if !importer.Matches(ei.Path()) {
			continue
		}
		switch ei.Event() {
		case notify.InCloseWrite, notify.InMovedTo:
			resource, err := importer.ImportFile(ctx, obj, ei.Path())
			if err != nil {
				log.Printf("Error importing file %s: %s\n", ei.Path(), err)
				continue
			}
			if err = idx.IndexResource(resource); err != nil {
				log.Printf("Error indexing resource %s: %s\n", resource.Path, err)
			}
		case notify.InDelete, notify.InMovedFrom:
			resourcePath := importer.ResourcePath(ei.Path())
			if _, err := obj.DeleteResource(ctx, resourcePath); err != nil && !errors.Is(err, cms.ErrResourceNotFound) {
				log.Printf("Error deleting resource %s: %s\n", resourcePath, err)
			}
			if err := idx.RemoveResource(resourcePath); err != nil {
				log.Printf("Error removing resource %s from index: %s\n", resourcePath, err)
			}
		}
	}
}
