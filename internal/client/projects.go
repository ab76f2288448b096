package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// ProjectsClient implements lulu.ProjectsClient.
type ProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *internalhttp.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// List implements lulu.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *lulu.ProjectListOptions) (*lulu.PagedResponse[lulu.Project], error) {
	var paging *lulu.ListOptions
	if opts != nil {
		paging = &opts.ListOptions
	}

	q := pageQuery(paging)
	if opts != nil && opts.Status != nil {
		q.addText("status", *opts.Status)
	}

	projects, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.Project]](ctx, c.httpClient, http.MethodGet, constants.ProjectsPath+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return projects, nil
}

// ListAll walks every page of projects with the given status filter.
func (c *ProjectsClient) ListAll(ctx context.Context, status *lulu.ProjectStatus) ([]lulu.Project, error) {
	return lulu.FetchAllPages[lulu.Project](ctx, func(ctx context.Context, page lulu.ListOptions) (*lulu.PagedResponse[lulu.Project], error) {
		return c.List(ctx, &lulu.ProjectListOptions{ListOptions: page, Status: status})
	}, nil)
}

// Get implements lulu.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID string) (*lulu.Project, error) {
	err := requireID("project id", projectID)
	if err != nil {
		return nil, err
	}

	project, err := internalhttp.DoJSON[lulu.Project](ctx, c.httpClient, http.MethodGet, resourcePath(constants.ProjectsPath, projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return project, nil
}

// Create implements lulu.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *lulu.CreateProjectRequest) (*lulu.Project, error) {
	err := requireRequest("create project request", request)
	if err != nil {
		return nil, err
	}

	project, err := internalhttp.DoJSON[lulu.Project](ctx, c.httpClient, http.MethodPost, constants.ProjectsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return project, nil
}

// Update implements lulu.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, request *lulu.UpdateProjectRequest) (*lulu.Project, error) {
	err := requireID("project id", projectID)
	if err != nil {
		return nil, err
	}

	err = requireRequest("update project request", request)
	if err != nil {
		return nil, err
	}

	project, err := internalhttp.DoJSON[lulu.Project](ctx, c.httpClient, http.MethodPut, resourcePath(constants.ProjectsPath, projectID), request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return project, nil
}

// Delete implements lulu.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID string) (bool, error) {
	err := requireID("project id", projectID)
	if err != nil {
		return false, err
	}

	deleted, err := c.httpClient.DeleteResource(ctx, resourcePath(constants.ProjectsPath, projectID))
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}

	return deleted, nil
}

// Archive sets the project status to archived.
func (c *ProjectsClient) Archive(ctx context.Context, projectID string) (*lulu.Project, error) {
	return c.Update(ctx, projectID, &lulu.UpdateProjectRequest{Status: lulu.Ptr(lulu.ProjectStatusArchived)})
}

// Activate sets the project status to active.
func (c *ProjectsClient) Activate(ctx context.Context, projectID string) (*lulu.Project, error) {
	return c.Update(ctx, projectID, &lulu.UpdateProjectRequest{Status: lulu.Ptr(lulu.ProjectStatusActive)})
}
