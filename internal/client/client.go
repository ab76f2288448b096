package client

import (
	"context"
	"sync"

	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// Client implements the lulu.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	config     lulu.Config
	closeOnce  sync.Once

	// Resource clients
	projects lulu.ProjectsClient
	products lulu.ProductsClient
	orders   lulu.OrdersClient
	shipping lulu.ShippingClient
	account  lulu.AccountClient
	print    lulu.PrintClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *lulu.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.Timeout))
	}

	return httpOpts
}

// New creates a Lulu client from a copy of config. Extra options are applied
// after the ones derived from config.
func New(ctx context.Context, config *lulu.Config, opts ...internalhttp.Option) (*Client, error) {
	if config == nil {
		return nil, lulu.ErrConfigRequired
	}

	cfg := *config

	httpOpts := append(createHTTPClientOptions(&cfg), opts...)
	httpClient := internalhttp.NewClient(cfg.BaseURL(), cfg.APIKey, httpOpts...)

	return newWithHTTPClient(cfg, httpClient), nil
}

func newWithHTTPClient(config lulu.Config, httpClient *internalhttp.Client) *Client {
	client := &Client{
		httpClient: httpClient,
		config:     config,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.shipping = NewShippingClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
	c.print = NewPrintClient(c.httpClient)
}

// Resource client accessors

// Projects implements lulu.Client.Projects.
func (c *Client) Projects() lulu.ProjectsClient {
	return c.projects
}

// Products implements lulu.Client.Products.
func (c *Client) Products() lulu.ProductsClient {
	return c.products
}

// Orders implements lulu.Client.Orders.
func (c *Client) Orders() lulu.OrdersClient {
	return c.orders
}

// Shipping implements lulu.Client.Shipping.
func (c *Client) Shipping() lulu.ShippingClient {
	return c.shipping
}

// Account implements lulu.Client.Account.
func (c *Client) Account() lulu.AccountClient {
	return c.account
}

// Print implements lulu.Client.Print.
func (c *Client) Print() lulu.PrintClient {
	return c.print
}

// Config implements lulu.Client.Config.
func (c *Client) Config() lulu.Config {
	return c.config
}

// BaseURL returns the API root the client was built for.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Close implements lulu.Client.Close.
func (c *Client) Close() error {
	c.closeOnce.Do(c.httpClient.CloseIdleConnections)

	return nil
}
