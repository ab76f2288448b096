package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const printJobJSON = `{"id":"job-1","order_id":"o1","status":"printing","product_id":"prod-1","quantity":2,` +
	`"created_at":"2024-03-01T00:00:00Z","quality_check":{"passed":true,"score":98,"checked_at":"2024-03-01T01:00:00Z",` +
	`"issues":[{"type":"bleed","severity":"low","description":"tight bleed","page":3}]}}`

func TestPrintClient_Get(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, printJobJSON)

	job, err := client.Print().Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, lulu.PrintJobStatusPrinting, job.Status)
	require.NotNil(t, job.QualityCheck)
	require.Len(t, job.QualityCheck.Issues, 1)
	assert.Equal(t, lulu.QualityIssueSeverityLow, job.QualityCheck.Issues[0].Severity)
	assert.Equal(t, "/v1/print/jobs/job-1", rec.last(t).Path)
}

func TestPrintClient_List(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `{"items":[`+printJobJSON+`],"total":1,"page":0,"size":20}`)

	opts := lulu.NewPrintJobListOptions()
	opts.Status = lulu.Ptr(lulu.PrintJobStatusQueued)

	jobs, err := client.Print().List(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, jobs.Items, 1)

	req := rec.last(t)
	assert.Equal(t, "/v1/print/jobs", req.Path)
	assert.Equal(t, "page=0&size=20&status=queued", req.RawQuery)
}

func TestPrintClient_ValidatePDF(t *testing.T) {
	t.Parallel()

	result := `{"valid":true,"score":91,"validated_at":"2024-03-01T00:00:00Z",` +
		`"issues":[{"type":"font","severity":"warning","message":"font not embedded"}],"metadata":{"page_count":120,"file_size":2048,"embedded_fonts":false,"contains_images":true}}`

	t.Run("defaults level to standard", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, result)

		request := &lulu.PDFValidationRequest{ProductID: "prod-1", PDFContent: "JVBERi0=", Filename: "book.pdf"}

		validation, err := client.Print().ValidatePDF(context.Background(), request)
		require.NoError(t, err)
		assert.True(t, validation.Valid)
		require.Len(t, validation.Issues, 1)
		assert.Equal(t, lulu.ValidationSeverityWarning, validation.Issues[0].Severity)
		require.NotNil(t, validation.Metadata)
		assert.Equal(t, 120, validation.Metadata.PageCount)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/v1/print/validate-pdf", req.Path)
		assert.Equal(t, "standard", decodeBody(t, req)["validation_level"])
		assert.Empty(t, request.ValidationLevel)
	})

	t.Run("explicit level is kept", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, result)

		_, err := client.Print().ValidatePDF(context.Background(), &lulu.PDFValidationRequest{
			ProductID:       "prod-1",
			ValidationLevel: lulu.ValidationLevelComprehensive,
		})
		require.NoError(t, err)
		assert.Equal(t, "comprehensive", decodeBody(t, rec.last(t))["validation_level"])
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, result)

		_, err := client.Print().ValidatePDF(context.Background(), nil)
		require.ErrorIs(t, err, lulu.ErrInvalidArgument)
		assert.Zero(t, rec.count())
	})
}

func TestPrintClient_QualityRequirements(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK,
		`{"product_id":"prod-1","min_resolution":300,"max_file_size":104857600,"color_profiles":["CMYK"],"bleed_area":0.125,"safe_area":0.5,"fonts_embedded":true,"pdf_versions":["1.3","1.4"]}`)

	requirements, err := client.Print().QualityRequirements(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 300, requirements.MinResolution)
	assert.Equal(t, []string{"1.3", "1.4"}, requirements.PDFVersions)
	assert.Equal(t, "/v1/print/quality-requirements/prod-1", rec.last(t).Path)
}

func TestPrintClient_Facilities(t *testing.T) {
	t.Parallel()

	facilities := `[{"id":"f1","name":"Raleigh","country":"US","city":"Raleigh","supported_products":["prod-1"],"avg_production_days":3,"active":true}]`

	tests := []struct {
		name      string
		country   string
		wantQuery string
	}{
		{name: "all", country: "", wantQuery: ""},
		{name: "blank", country: "  ", wantQuery: ""},
		{name: "filtered", country: "US", wantQuery: "country=US"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, rec := newRecordingClient(t, http.StatusOK, facilities)

			result, err := client.Print().Facilities(context.Background(), testCase.country)
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.True(t, result[0].Active)

			req := rec.last(t)
			assert.Equal(t, "/v1/print/facilities", req.Path)
			assert.Equal(t, testCase.wantQuery, req.RawQuery)
		})
	}
}

func TestPrintClient_ProductionTime(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK,
		`{"production_days":2,"earliest_start":"2024-03-01T00:00:00Z","estimated_completion":"2024-03-03T00:00:00Z","rush_surcharge":1500}`)

	estimate, err := client.Print().ProductionTime(context.Background(), &lulu.ProductionTimeRequest{
		ProductID: "prod-1",
		Quantity:  10,
		RushOrder: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, estimate.ProductionDays)
	require.NotNil(t, estimate.RushSurcharge)
	assert.Equal(t, "15.00", estimate.RushSurcharge.String())
	assert.Nil(t, estimate.RecommendedFacility)

	req := rec.last(t)
	assert.Equal(t, "/v1/print/production-time", req.Path)
	assert.NotContains(t, decodeBody(t, req), "facility_id")

	_, err = client.Print().ProductionTime(context.Background(), nil)
	require.ErrorIs(t, err, lulu.ErrInvalidArgument)
}

func TestPrintClient_BlankIDs(t *testing.T) {
	t.Parallel()

	RunBlankIDTests(t, []idCall{
		{Name: "get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Print().Get(ctx, id)

			return err
		}},
		{Name: "quality requirements", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Print().QualityRequirements(ctx, id)

			return err
		}},
	})
}
