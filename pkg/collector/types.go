package collector

import (
	"context"

	"github.com/cloudmeta/instance-catalog/pkg/catalog"
)

// Collector retrieves instance-type records from a provider and returns them
// as a catalog. When retrieval fails partway through, implementations return
// the records accumulated so far alongside the error; a partial catalog is
// never silently discarded.
type Collector interface {
	Collect(ctx context.Context) (catalog.Catalog, error)
}
