package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// AccountClient implements lulu.AccountClient.
type AccountClient struct {
	httpClient *internalhttp.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *internalhttp.Client) *AccountClient {
	return &AccountClient{httpClient: httpClient}
}

// Get implements lulu.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*lulu.Account, error) {
	account, err := internalhttp.DoJSON[lulu.Account](ctx, c.httpClient, http.MethodGet, constants.AccountPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

// Update implements lulu.AccountClient.Update.
func (c *AccountClient) Update(ctx context.Context, request *lulu.UpdateAccountRequest) (*lulu.Account, error) {
	err := requireRequest("update account request", request)
	if err != nil {
		return nil, err
	}

	account, err := internalhttp.DoJSON[lulu.Account](ctx, c.httpClient, http.MethodPut, constants.AccountPath, request)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return account, nil
}

// Balance implements lulu.AccountClient.Balance.
func (c *AccountClient) Balance(ctx context.Context) (*lulu.AccountBalance, error) {
	balance, err := internalhttp.DoJSON[lulu.AccountBalance](ctx, c.httpClient, http.MethodGet, constants.AccountPath+"/balance", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account balance: %w", err)
	}

	return balance, nil
}

// Billing implements lulu.AccountClient.Billing.
func (c *AccountClient) Billing(ctx context.Context, opts *lulu.ListOptions) (*lulu.PagedResponse[lulu.BillingRecord], error) {
	q := pageQuery(opts)

	records, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.BillingRecord]](ctx, c.httpClient, http.MethodGet, constants.AccountPath+"/billing"+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing billing history: %w", err)
	}

	return records, nil
}

// Usage implements lulu.AccountClient.Usage. Dates are sent as YYYY-MM-DD and omitted when nil.
func (c *AccountClient) Usage(ctx context.Context, opts *lulu.UsageOptions) (*lulu.APIUsageStats, error) {
	q := newQuery()

	if opts != nil {
		if opts.StartDate != nil {
			q.add("start_date", opts.StartDate.Format(constants.DateFormat))
		}

		if opts.EndDate != nil {
			q.add("end_date", opts.EndDate.Format(constants.DateFormat))
		}
	}

	stats, err := internalhttp.DoJSON[lulu.APIUsageStats](ctx, c.httpClient, http.MethodGet, constants.AccountPath+"/usage"+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting api usage: %w", err)
	}

	return stats, nil
}
