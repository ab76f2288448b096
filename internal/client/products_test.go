package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const productJSON = `{"id":"prod-1","name":"Paperback","category":"books","type":"book",` +
	`"sizes":[{"id":"6x9","name":"US Trade","width_inches":6,"height_inches":9}],"min_pages":32,"max_pages":800,"available":true}`

func TestProductsClient_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      *lulu.ProductListOptions
		wantQuery string
	}{
		{name: "defaults", opts: nil, wantQuery: "page=0&size=20"},
		{
			name: "all filters in order",
			opts: &lulu.ProductListOptions{
				ListOptions: lulu.ListOptions{Page: 1, Size: 10},
				Category:    lulu.Ptr("fine art"),
				Type:        lulu.Ptr(lulu.ProductTypeCalendar),
				Available:   lulu.Ptr(false),
			},
			wantQuery: "page=1&size=10&category=fine%20art&type=calendar&available=false",
		},
		{
			name:      "blank category is skipped",
			opts:      &lulu.ProductListOptions{ListOptions: *lulu.NewListOptions(), Category: lulu.Ptr(" ")},
			wantQuery: "page=0&size=20",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, rec := newRecordingClient(t, http.StatusOK, `{"items":[`+productJSON+`],"total":1,"page":0,"size":20}`)

			result, err := client.Products().List(context.Background(), testCase.opts)
			require.NoError(t, err)
			require.Len(t, result.Items, 1)
			assert.Equal(t, lulu.ProductTypeBook, result.Items[0].Type)
			assert.False(t, result.HasNextPage())

			req := rec.last(t)
			assert.Equal(t, "/v1/products", req.Path)
			assert.Equal(t, testCase.wantQuery, req.RawQuery)
		})
	}
}

func TestProductsClient_Get(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, productJSON)

	product, err := client.Products().Get(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Paperback", product.Name)
	require.Len(t, product.Sizes, 1)
	assert.InDelta(t, 6.0, product.Sizes[0].WidthInches, 0.001)
	assert.Equal(t, "/v1/products/prod-1", rec.last(t).Path)
}

func TestProductsClient_Categories(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `["books","calendars"]`)

	categories, err := client.Products().Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"books", "calendars"}, categories)
	assert.Equal(t, "/v1/products/categories", rec.last(t).Path)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProductsClient_Pricing(t *testing.T) {
	t.Parallel()

	pricing := `{"base_price":450,"currency":"USD","price_per_page":2,"quantity_discounts":[{"min_quantity":50,"discount_percentage":10}]}`

	t.Run("query order and default quantity", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, pricing)

		result, err := client.Products().Pricing(context.Background(), "prod-1", &lulu.PricingOptions{
			SizeID:    "6x9",
			PageCount: 120,
		})
		require.NoError(t, err)
		assert.Equal(t, lulu.Cents(450), result.BasePrice)
		assert.Equal(t, "4.50", result.BasePrice.String())
		require.Len(t, result.QuantityDiscounts, 1)

		req := rec.last(t)
		assert.Equal(t, "/v1/products/prod-1/pricing", req.Path)
		assert.Equal(t, "size_id=6x9&page_count=120&quantity=1", req.RawQuery)
	})

	t.Run("optional paper and binding", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, pricing)

		_, err := client.Products().Pricing(context.Background(), "prod-1", &lulu.PricingOptions{
			SizeID:      "6x9",
			PageCount:   120,
			Quantity:    25,
			PaperType:   "cream 60#",
			BindingType: "perfect",
		})
		require.NoError(t, err)
		assert.Equal(t, "size_id=6x9&page_count=120&quantity=25&paper_type=cream%2060%23&binding_type=perfect", rec.last(t).RawQuery)
	})

	t.Run("invalid options fail locally", func(t *testing.T) {
		t.Parallel()

		client, rec := newRecordingClient(t, http.StatusOK, pricing)

		invalid := []*lulu.PricingOptions{
			nil,
			{SizeID: "", PageCount: 10},
			{SizeID: "6x9", PageCount: 0},
			{SizeID: "6x9", PageCount: 10, Quantity: -1},
		}

		for _, opts := range invalid {
			_, err := client.Products().Pricing(context.Background(), "prod-1", opts)
			require.ErrorIs(t, err, lulu.ErrInvalidArgument)
		}

		assert.Zero(t, rec.count())
	})
}

func TestProductsClient_Sizes(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `[{"id":"a4","name":"A4","width_mm":210,"height_mm":297}]`)

	sizes, err := client.Products().Sizes(context.Background(), "prod-1")
	require.NoError(t, err)
	require.Len(t, sizes, 1)
	assert.InDelta(t, 297.0, sizes[0].HeightMM, 0.001)
	assert.Equal(t, "/v1/products/prod-1/sizes", rec.last(t).Path)
}

func TestProductsClient_Search(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `{"items":[],"total":0,"page":0,"size":20}`)

	result, err := client.Products().Search(context.Background(), "photo book", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	req := rec.last(t)
	assert.Equal(t, "/v1/products/search", req.Path)
	assert.Equal(t, "q=photo%20book&page=0&size=20", req.RawQuery)

	_, err = client.Products().Search(context.Background(), "a&b", &lulu.ListOptions{Page: 3, Size: 7})
	require.NoError(t, err)
	assert.Equal(t, "q=a%26b&page=3&size=7", rec.last(t).RawQuery)
}

func TestProductsClient_BlankIDs(t *testing.T) {
	t.Parallel()

	RunBlankIDTests(t, []idCall{
		{Name: "get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Products().Get(ctx, id)

			return err
		}},
		{Name: "pricing", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Products().Pricing(ctx, id, &lulu.PricingOptions{SizeID: "6x9", PageCount: 10})

			return err
		}},
		{Name: "sizes", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Products().Sizes(ctx, id)

			return err
		}},
		{Name: "search", Call: func(ctx context.Context, c *Client, query string) error {
			_, err := c.Products().Search(ctx, query, nil)

			return err
		}},
	})
}
