package backend

import (
	"context"
	"fmt"
	"net/http"

	"jobdeck_gateway/internal/models"
)

type myJobsResponse struct {
	Success bool                  `json:"success"`
	Jobs    []models.PurchasedJob `json:"jobs"`
	Err     string                `json:"error"`
}

// Jobs fetches the whole catalogue.
func (c *Client) Jobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/all", "", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches a single posting.
func (c *Client) Job(ctx context.Context, id int64) (models.Job, error) {
	var job models.Job
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), "", nil, &job)
	return job, err
}

// MyJobs lists the caller's purchase history.
func (c *Client) MyJobs(ctx context.Context, token string) ([]models.PurchasedJob, error) {
	var resp myJobsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/my-jobs", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Status: http.StatusBadGateway, Message: resp.Err}
	}
	return resp.Jobs, nil
}
