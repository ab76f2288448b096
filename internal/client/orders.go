package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// OrdersClient implements lulu.OrdersClient.
type OrdersClient struct {
	httpClient *internalhttp.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *internalhttp.Client) *OrdersClient {
	return &OrdersClient{httpClient: httpClient}
}

// List implements lulu.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, opts *lulu.OrderListOptions) (*lulu.PagedResponse[lulu.Order], error) {
	var paging *lulu.ListOptions
	if opts != nil {
		paging = &opts.ListOptions
	}

	q := pageQuery(paging)
	if opts != nil && opts.Status != nil {
		q.addText("status", *opts.Status)
	}

	orders, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.Order]](ctx, c.httpClient, http.MethodGet, constants.OrdersPath+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return orders, nil
}

// ListAll walks every page of orders with the given status filter.
func (c *OrdersClient) ListAll(ctx context.Context, status *lulu.OrderStatus) ([]lulu.Order, error) {
	return lulu.FetchAllPages[lulu.Order](ctx, func(ctx context.Context, page lulu.ListOptions) (*lulu.PagedResponse[lulu.Order], error) {
		return c.List(ctx, &lulu.OrderListOptions{ListOptions: page, Status: status})
	}, nil)
}

// Get implements lulu.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, orderID string) (*lulu.Order, error) {
	err := requireID("order id", orderID)
	if err != nil {
		return nil, err
	}

	order, err := internalhttp.DoJSON[lulu.Order](ctx, c.httpClient, http.MethodGet, resourcePath(constants.OrdersPath, orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	return order, nil
}

// Create implements lulu.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, request *lulu.CreateOrderRequest) (*lulu.Order, error) {
	err := requireRequest("create order request", request)
	if err != nil {
		return nil, err
	}

	order, err := internalhttp.DoJSON[lulu.Order](ctx, c.httpClient, http.MethodPost, constants.OrdersPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return order, nil
}

// Cancel implements lulu.OrdersClient.Cancel. An empty reason is omitted from the body.
func (c *OrdersClient) Cancel(ctx context.Context, orderID, reason string) (*lulu.Order, error) {
	err := requireID("order id", orderID)
	if err != nil {
		return nil, err
	}

	path := resourcePath(constants.OrdersPath, orderID, "cancel")

	order, err := internalhttp.DoJSON[lulu.Order](ctx, c.httpClient, http.MethodPost, path, &lulu.CancelOrderRequest{Reason: reason})
	if err != nil {
		return nil, fmt.Errorf("cancelling order: %w", err)
	}

	return order, nil
}

// Tracking implements lulu.OrdersClient.Tracking.
func (c *OrdersClient) Tracking(ctx context.Context, orderID string) (*lulu.OrderTracking, error) {
	err := requireID("order id", orderID)
	if err != nil {
		return nil, err
	}

	tracking, err := internalhttp.DoJSON[lulu.OrderTracking](ctx, c.httpClient, http.MethodGet, resourcePath(constants.OrdersPath, orderID, "tracking"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting order tracking: %w", err)
	}

	return tracking, nil
}

// Estimate implements lulu.OrdersClient.Estimate. It applies the same checks as Create.
func (c *OrdersClient) Estimate(ctx context.Context, request *lulu.CreateOrderRequest) (*lulu.OrderEstimate, error) {
	err := requireRequest("create order request", request)
	if err != nil {
		return nil, err
	}

	estimate, err := internalhttp.DoJSON[lulu.OrderEstimate](ctx, c.httpClient, http.MethodPost, constants.OrdersPath+"/estimate", request)
	if err != nil {
		return nil, fmt.Errorf("estimating order: %w", err)
	}

	return estimate, nil
}
