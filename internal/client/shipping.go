package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// ShippingClient implements lulu.ShippingClient.
type ShippingClient struct {
	httpClient *internalhttp.Client
}

// NewShippingClient creates a new shipping client.
func NewShippingClient(httpClient *internalhttp.Client) *ShippingClient {
	return &ShippingClient{httpClient: httpClient}
}

// Options implements lulu.ShippingClient.Options.
func (c *ShippingClient) Options(ctx context.Context, request *lulu.ShippingOptionsRequest) ([]lulu.ShippingMethod, error) {
	err := requireRequest("shipping options request", request)
	if err != nil {
		return nil, err
	}

	methods, err := internalhttp.DoJSON[[]lulu.ShippingMethod](ctx, c.httpClient, http.MethodPost, constants.ShippingPath+"/options", request)
	if err != nil {
		return nil, fmt.Errorf("getting shipping options: %w", err)
	}

	if methods == nil {
		return nil, nil
	}

	return *methods, nil
}

// Calculate implements lulu.ShippingClient.Calculate.
func (c *ShippingClient) Calculate(ctx context.Context, request *lulu.ShippingCostRequest) (*lulu.ShippingCost, error) {
	err := requireRequest("shipping cost request", request)
	if err != nil {
		return nil, err
	}

	cost, err := internalhttp.DoJSON[lulu.ShippingCost](ctx, c.httpClient, http.MethodPost, constants.ShippingPath+"/calculate", request)
	if err != nil {
		return nil, fmt.Errorf("calculating shipping: %w", err)
	}

	return cost, nil
}

// DeliveryEstimates implements lulu.ShippingClient.DeliveryEstimates.
func (c *ShippingClient) DeliveryEstimates(ctx context.Context, request *lulu.DeliveryEstimateRequest) ([]lulu.DeliveryEstimate, error) {
	err := requireRequest("delivery estimate request", request)
	if err != nil {
		return nil, err
	}

	estimates, err := internalhttp.DoJSON[[]lulu.DeliveryEstimate](ctx, c.httpClient, http.MethodPost, constants.ShippingPath+"/delivery-estimates", request)
	if err != nil {
		return nil, fmt.Errorf("getting delivery estimates: %w", err)
	}

	if estimates == nil {
		return nil, nil
	}

	return *estimates, nil
}

// ValidateAddress implements lulu.ShippingClient.ValidateAddress.
func (c *ShippingClient) ValidateAddress(ctx context.Context, request *lulu.AddressValidationRequest) (*lulu.AddressValidationResult, error) {
	err := requireRequest("address validation request", request)
	if err != nil {
		return nil, err
	}

	result, err := internalhttp.DoJSON[lulu.AddressValidationResult](ctx, c.httpClient, http.MethodPost, constants.ShippingPath+"/validate-address", request)
	if err != nil {
		return nil, fmt.Errorf("validating address: %w", err)
	}

	return result, nil
}
