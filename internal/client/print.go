package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// PrintClient implements lulu.PrintClient.
type PrintClient struct {
	httpClient *internalhttp.Client
}

// NewPrintClient creates a new print client.
func NewPrintClient(httpClient *internalhttp.Client) *PrintClient {
	return &PrintClient{httpClient: httpClient}
}

// Get implements lulu.PrintClient.Get.
func (c *PrintClient) Get(ctx context.Context, jobID string) (*lulu.PrintJob, error) {
	err := requireID("print job id", jobID)
	if err != nil {
		return nil, err
	}

	job, err := internalhttp.DoJSON[lulu.PrintJob](ctx, c.httpClient, http.MethodGet, resourcePath(constants.PrintPath+"/jobs", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting print job: %w", err)
	}

	return job, nil
}

// List implements lulu.PrintClient.List.
func (c *PrintClient) List(ctx context.Context, opts *lulu.PrintJobListOptions) (*lulu.PagedResponse[lulu.PrintJob], error) {
	var paging *lulu.ListOptions
	if opts != nil {
		paging = &opts.ListOptions
	}

	q := pageQuery(paging)
	if opts != nil && opts.Status != nil {
		q.addText("status", *opts.Status)
	}

	jobs, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.PrintJob]](ctx, c.httpClient, http.MethodGet, constants.PrintPath+"/jobs"+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing print jobs: %w", err)
	}

	return jobs, nil
}

// ValidatePDF implements lulu.PrintClient.ValidatePDF. An unset level is sent as standard;
// the caller's request is left untouched.
func (c *PrintClient) ValidatePDF(ctx context.Context, request *lulu.PDFValidationRequest) (*lulu.PDFValidationResult, error) {
	err := requireRequest("pdf validation request", request)
	if err != nil {
		return nil, err
	}

	body := *request
	if body.ValidationLevel == "" {
		body.ValidationLevel = lulu.ValidationLevelStandard
	}

	result, err := internalhttp.DoJSON[lulu.PDFValidationResult](ctx, c.httpClient, http.MethodPost, constants.PrintPath+"/validate-pdf", &body)
	if err != nil {
		return nil, fmt.Errorf("validating pdf: %w", err)
	}

	return result, nil
}

// QualityRequirements implements lulu.PrintClient.QualityRequirements.
func (c *PrintClient) QualityRequirements(ctx context.Context, productID string) (*lulu.PrintQualityRequirements, error) {
	err := requireID("product id", productID)
	if err != nil {
		return nil, err
	}

	path := resourcePath(constants.PrintPath+"/quality-requirements", productID)

	requirements, err := internalhttp.DoJSON[lulu.PrintQualityRequirements](ctx, c.httpClient, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting print quality requirements: %w", err)
	}

	return requirements, nil
}

// Facilities implements lulu.PrintClient.Facilities. A blank country lists all facilities.
func (c *PrintClient) Facilities(ctx context.Context, country string) ([]lulu.PrintFacility, error) {
	q := newQuery()
	if strings.TrimSpace(country) != "" {
		q.add("country", country)
	}

	facilities, err := internalhttp.DoJSON[[]lulu.PrintFacility](ctx, c.httpClient, http.MethodGet, constants.PrintPath+"/facilities"+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing print facilities: %w", err)
	}

	if facilities == nil {
		return nil, nil
	}

	return *facilities, nil
}

// ProductionTime implements lulu.PrintClient.ProductionTime.
func (c *PrintClient) ProductionTime(ctx context.Context, request *lulu.ProductionTimeRequest) (*lulu.ProductionTimeEstimate, error) {
	err := requireRequest("production time request", request)
	if err != nil {
		return nil, err
	}

	estimate, err := internalhttp.DoJSON[lulu.ProductionTimeEstimate](ctx, c.httpClient, http.MethodPost, constants.PrintPath+"/production-time", request)
	if err != nil {
		return nil, fmt.Errorf("estimating production time: %w", err)
	}

	return estimate, nil
}
