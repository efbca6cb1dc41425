package index

import (
	"fmt"
	"log"

	"github.com/svera/sitesearch/internal/cms"
)

// IndexResource adds or replaces a resource in the index. Folders and deleted resources are
// removed instead, as they are never search results.
func (b *BleveIndexer) IndexResource(r cms.Resource) error {
	defer b.checker.Invalidate()
	if r.IsFolder() || r.State == cms.StateDeleted {
		return b.idx.Delete(r.Path)
	}
	if err := b.idx.Index(r.Path, NewDocument(r)); err != nil {
		return fmt.Errorf("error indexing resource %s: %w", r.Path, err)
	}
	return nil
}

// RemoveResource removes a resource from the index
func (b *BleveIndexer) RemoveResource(path string) error {
	defer b.checker.Invalidate()
	return b.idx.Delete(path)
}

// IndexResources adds resources to the index in batches of <batchSize>
func (b *BleveIndexer) IndexResources(resources []cms.Resource, batchSize int) error {
	defer b.checker.Invalidate()
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	batch := b.idx.NewBatch()
	for _, r := range resources {
		if r.IsFolder() || r.State == cms.StateDeleted {
			continue
		}
		if err := batch.Index(r.Path, NewDocument(r)); err != nil {
			log.Printf("Error indexing resource %s: %s\n", r.Path, err)
			continue
		}
		if batch.Size() >= batchSize {
			if err := b.idx.Batch(batch); err != nil {
				return err
			}
			batch.Reset()
		}
	}
	return b.idx.Batch(batch)
}
