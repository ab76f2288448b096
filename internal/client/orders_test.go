package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const orderJSON = `{"id":"o1","status":"Processing","items":[{"id":"i1","product_id":"prod-1","quantity":2,` +
	`"unit_price":1250,"total_price":2500,"status":"processing"}],"total":2500,"currency":"USD",` +
	`"created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-01T10:00:00Z"}`

func newOrderRequest() *lulu.CreateOrderRequest {
	item := lulu.NewCreateOrderItemRequest("prod-1")
	item.Configuration = lulu.ProductConfiguration{SizeID: "6x9", PageCount: 120}

	return &lulu.CreateOrderRequest{
		Reference: lulu.Ptr("ref-42"),
		Items:     []lulu.CreateOrderItemRequest{item},
		Shipping: lulu.ShippingInfo{
			Name:         "Ada Lovelace",
			AddressLine1: "1 Main St",
			City:         "Raleigh",
			State:        "NC",
			PostalCode:   "27601",
			Country:      "US",
			Email:        "ada@example.com",
		},
		TestOrder: true,
	}
}

func TestOrdersClient_Get(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, orderJSON)

	order, err := client.Orders().Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, lulu.OrderStatusProcessing, order.Status)
	assert.Equal(t, "25.00", order.Total.String())
	require.Len(t, order.Items, 1)
	assert.Equal(t, lulu.OrderItemStatusProcessing, order.Items[0].Status)
	assert.Equal(t, "/v1/orders/o1", rec.last(t).Path)
}

func TestOrdersClient_List(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `{"items":[`+orderJSON+`],"total":41,"page":2,"size":20}`)

	result, err := client.Orders().List(context.Background(), lulu.NewOrderListOptions().WithStatus(lulu.OrderStatusInProduction))
	require.NoError(t, err)
	assert.False(t, result.HasNextPage())
	assert.True(t, result.HasPreviousPage())

	req := rec.last(t)
	assert.Equal(t, "/v1/orders", req.Path)
	assert.Equal(t, "page=0&size=20&status=inproduction", req.RawQuery)
}

func TestOrdersClient_Create(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusCreated, orderJSON)

	order, err := client.Orders().Create(context.Background(), newOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/orders", req.Path)

	body := decodeBody(t, req)
	assert.Equal(t, "ref-42", body["reference"])
	assert.Equal(t, true, body["test_order"])
	assert.NotContains(t, body, "billing")

	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "prod-1", item["product_id"])
	assert.InDelta(t, 1.0, item["quantity"], 0.001)
	assert.NotContains(t, item, "project_id")
}

func TestOrdersClient_CreateRequiresItems(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusCreated, orderJSON)

	request := newOrderRequest()
	request.Items = nil

	_, err := client.Orders().Create(context.Background(), request)
	require.ErrorIs(t, err, lulu.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "items must contain at least 1 item(s)")

	request.Items = []lulu.CreateOrderItemRequest{}

	_, err = client.Orders().Estimate(context.Background(), request)
	require.ErrorIs(t, err, lulu.ErrInvalidArgument)

	_, err = client.Orders().Create(context.Background(), nil)
	require.ErrorIs(t, err, lulu.ErrInvalidArgument)

	assert.Zero(t, rec.count())
}

func TestOrdersClient_Cancel(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, `{"id":"o1","status":"cancelled"}`)

	order, err := client.Orders().Cancel(context.Background(), "o1", "duplicate")
	require.NoError(t, err)
	assert.Equal(t, lulu.OrderStatusCancelled, order.Status)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/orders/o1/cancel", req.Path)
	assert.Equal(t, map[string]interface{}{"reason": "duplicate"}, decodeBody(t, req))

	_, err = client.Orders().Cancel(context.Background(), "o1", "")
	require.NoError(t, err)
	assert.Empty(t, decodeBody(t, rec.last(t)))
}

func TestOrdersClient_Tracking(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK,
		`{"tracking_number":"1Z999","carrier":"UPS","estimated_delivery":"2024-03-09T00:00:00Z"}`)

	tracking, err := client.Orders().Tracking(context.Background(), "o1")
	require.NoError(t, err)
	require.NotNil(t, tracking.TrackingNumber)
	assert.Equal(t, "1Z999", *tracking.TrackingNumber)
	require.NotNil(t, tracking.EstimatedDelivery)
	assert.Nil(t, tracking.DeliveredAt)
	assert.Equal(t, "/v1/orders/o1/tracking", rec.last(t).Path)
}

func TestOrdersClient_Estimate(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK,
		`{"total":3199,"currency":"USD","breakdown":{"subtotal":2500,"shipping":599,"tax":100,"discount":0},"production_days":3,"shipping_days":5}`)

	estimate, err := client.Orders().Estimate(context.Background(), newOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, "31.99", estimate.Total.String())
	require.NotNil(t, estimate.Breakdown)
	assert.Equal(t, lulu.Cents(599), estimate.Breakdown.Shipping)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/orders/estimate", req.Path)
}

func TestOrdersClient_BlankIDs(t *testing.T) {
	t.Parallel()

	RunBlankIDTests(t, []idCall{
		{Name: "get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Orders().Get(ctx, id)

			return err
		}},
		{Name: "cancel", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Orders().Cancel(ctx, id, "reason")

			return err
		}},
		{Name: "tracking", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Orders().Tracking(ctx, id)

			return err
		}},
	})
}
