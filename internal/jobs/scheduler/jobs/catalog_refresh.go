package jobs

import (
	"context"
	"fmt"

	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/observability"
)

const CatalogRefreshJobID = "catalog_refresh"

// CatalogRefreshJob refreshes a batch of stale catalog rows on a cron schedule
type CatalogRefreshJob struct {
	catalog CatalogRefresher
	logger  *observability.Logger
	spec    string
	batch   int
}

func NewCatalogRefreshJob(catalog CatalogRefresher, logger *observability.Logger, spec string, batch int) *CatalogRefreshJob {
	if spec == "" {
		spec = "0 */6 * * *"
	}
	if batch <= 0 {
		batch = 10
	}
	return &CatalogRefreshJob{catalog: catalog, logger: logger, spec: spec, batch: batch}
}

func (j *CatalogRefreshJob) Name() string {
	return CatalogRefreshJobID
}

func (j *CatalogRefreshJob) Trigger() scheduler.Trigger {
	return scheduler.Cron(j.spec)
}

func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	refreshed, err := j.catalog.RefreshStale(ctx, j.batch)
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}
	j.logger.Info(ctx, fmt.Sprintf("Refreshed %d stale catalog entries", refreshed))
	return nil
}
