package services

import (
	"context"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/cache"
	"jobdeck_gateway/internal/models"
)

// CatalogService serves the public job catalogue. The listing is the
// hottest read in the app, so it goes through the shared cache when one
// is configured.
type CatalogService interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Job(ctx context.Context, id int64) (models.Job, error)
	MyJobs(ctx context.Context, token string) ([]models.PurchasedJob, error)
}

type CatalogServiceImpl struct {
	client *backend.Client
	cache  *cache.Catalog
}

func NewCatalogService(client *backend.Client, catalogCache *cache.Catalog) CatalogService {
	return &CatalogServiceImpl{client: client, cache: catalogCache}
}

func (s *CatalogServiceImpl) Jobs(ctx context.Context) ([]models.Job, error) {
	if jobs, ok := s.cache.GetJobs(ctx); ok {
		return jobs, nil
	}

	jobs, err := s.client.Jobs(ctx)
	if err != nil {
		return nil, mapUpstream(err, "jobs")
	}

	s.cache.SetJobs(ctx, jobs)
	return jobs, nil
}

func (s *CatalogServiceImpl) Job(ctx context.Context, id int64) (models.Job, error) {
	job, err := s.client.Job(ctx, id)
	if err != nil {
		return models.Job{}, mapUpstream(err, "jobs")
	}
	return job, nil
}

func (s *CatalogServiceImpl) MyJobs(ctx context.Context, token string) ([]models.PurchasedJob, error) {
	jobs, err := s.client.MyJobs(ctx, token)
	if err != nil {
		return nil, mapUpstream(err, "jobs")
	}
	return jobs, nil
}
