package lulu

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/retznutz/lulu-client/internal/constants"
)

// ProjectsClient manages print projects.
type ProjectsClient interface {
	List(ctx context.Context, opts *ProjectListOptions) (*PagedResponse[Project], error)
	ListAll(ctx context.Context, status *ProjectStatus) ([]Project, error)
	Get(ctx context.Context, projectID string) (*Project, error)
	Create(ctx context.Context, request *CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, projectID string, request *UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, projectID string) (bool, error)
	Archive(ctx context.Context, projectID string) (*Project, error)
	Activate(ctx context.Context, projectID string) (*Project, error)
}

// ProductsClient browses the product catalog and its pricing.
type ProductsClient interface {
	List(ctx context.Context, opts *ProductListOptions) (*PagedResponse[Product], error)
	Get(ctx context.Context, productID string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Pricing(ctx context.Context, productID string, opts *PricingOptions) (*ProductPricing, error)
	Sizes(ctx context.Context, productID string) ([]ProductSize, error)
	Search(ctx context.Context, query string, opts *ListOptions) (*PagedResponse[Product], error)
}

// OrdersClient places and tracks print orders.
type OrdersClient interface {
	List(ctx context.Context, opts *OrderListOptions) (*PagedResponse[Order], error)
	ListAll(ctx context.Context, status *OrderStatus) ([]Order, error)
	Get(ctx context.Context, orderID string) (*Order, error)
	Create(ctx context.Context, request *CreateOrderRequest) (*Order, error)
	Cancel(ctx context.Context, orderID, reason string) (*Order, error)
	Tracking(ctx context.Context, orderID string) (*OrderTracking, error)
	Estimate(ctx context.Context, request *CreateOrderRequest) (*OrderEstimate, error)
}

// ShippingClient quotes shipping and validates addresses.
type ShippingClient interface {
	Options(ctx context.Context, request *ShippingOptionsRequest) ([]ShippingMethod, error)
	Calculate(ctx context.Context, request *ShippingCostRequest) (*ShippingCost, error)
	DeliveryEstimates(ctx context.Context, request *DeliveryEstimateRequest) ([]DeliveryEstimate, error)
	ValidateAddress(ctx context.Context, request *AddressValidationRequest) (*AddressValidationResult, error)
}

// AccountClient reads and updates the authenticated account.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
	Update(ctx context.Context, request *UpdateAccountRequest) (*Account, error)
	Balance(ctx context.Context) (*AccountBalance, error)
	Billing(ctx context.Context, opts *ListOptions) (*PagedResponse[BillingRecord], error)
	Usage(ctx context.Context, opts *UsageOptions) (*APIUsageStats, error)
}

// PrintClient inspects print jobs and file quality.
type PrintClient interface {
	Get(ctx context.Context, jobID string) (*PrintJob, error)
	List(ctx context.Context, opts *PrintJobListOptions) (*PagedResponse[PrintJob], error)
	ValidatePDF(ctx context.Context, request *PDFValidationRequest) (*PDFValidationResult, error)
	QualityRequirements(ctx context.Context, productID string) (*PrintQualityRequirements, error)
	Facilities(ctx context.Context, country string) ([]PrintFacility, error)
	ProductionTime(ctx context.Context, request *ProductionTimeRequest) (*ProductionTimeEstimate, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Projects() ProjectsClient
	Products() ProductsClient
	Orders() OrdersClient
	Shipping() ShippingClient
	Account() AccountClient
	Print() PrintClient
}

// Client is the top-level Lulu client.
type Client interface {
	ResourceClients

	// Config returns a copy of the configuration the client was built with.
	Config() Config

	// Close releases idle connections. Calling it more than once is a no-op.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a lulu.Client.
//
// # Environments
//
// The zero value targets the sandbox; set Production to reach the live API.
// BaseURL picks SandboxBaseURL or ProductionBaseURL and is
// evaluated on each call, so either URL may be changed up to the moment the
// client is built. The client takes a copy of the Config; later changes do
// not reach it.
//
// # Authentication
//
// APIKey is sent as "Authorization: Bearer <APIKey>" on every request. It is
// not validated locally: an empty key simply fails the server's auth check.
//
// # Timeouts and retries
//
// Timeout applies to the whole transport. Per-call deadlines belong on the
// context passed to each method. MaxRetryAttempts is carried for
// configuration compatibility but no request path reads it; requests are
// sent exactly once.
type Config struct {
	// APIKey: bearer credential issued by Lulu.
	APIKey string
	// Production: target the live backend. False means sandbox.
	Production bool
	// ProductionBaseURL: live API root. Empty falls back to https://api.lulu.com.
	ProductionBaseURL string
	// SandboxBaseURL: test API root. Empty falls back to https://api.sandbox.lulu.com.
	SandboxBaseURL string
	// Timeout: transport-wide request timeout.
	Timeout time.Duration
	// MaxRetryAttempts: inert, see above.
	MaxRetryAttempts int

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// HTTPClient: optional transport. The client works on a copy whose
	// Timeout is replaced by the transport-wide timeout.
	HTTPClient *http.Client
}

// DefaultConfig returns a sandbox configuration with an empty API key.
func DefaultConfig() *Config {
	return &Config{
		ProductionBaseURL: constants.ProductionBaseURL,
		SandboxBaseURL:    constants.SandboxBaseURL,
		Timeout:           constants.DefaultHTTPTimeout,
		MaxRetryAttempts:  constants.DefaultMaxRetryAttempts,
		UserAgent:         constants.DefaultUserAgent,
	}
}

// NewConfig returns DefaultConfig with the given API key.
func NewConfig(apiKey string) *Config {
	config := DefaultConfig()
	config.APIKey = apiKey

	return config
}

// BaseURL returns the production root when Production is set, else the sandbox root.
func (c Config) BaseURL() string {
	if c.Production {
		return withDefault(c.ProductionBaseURL, constants.ProductionBaseURL)
	}

	return withDefault(c.SandboxBaseURL, constants.SandboxBaseURL)
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
