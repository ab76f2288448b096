package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints.
const (
	// ProductionBaseURL is the live Lulu API.
	ProductionBaseURL = "https://api.lulu.com"

	// SandboxBaseURL is the Lulu test backend.
	SandboxBaseURL = "https://api.sandbox.lulu.com"

	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "lulu-client-go/1.0.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultMaxRetryAttempts is the configured retry count. No request path consumes it.
	DefaultMaxRetryAttempts = 3

	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination.
const (
	// DefaultPage is the first page; pages are zero-based.
	DefaultPage = 0

	// DefaultPageSize is used when a caller passes no list options.
	DefaultPageSize = 20

	// DefaultQuantity is used for pricing lookups without an explicit quantity.
	DefaultQuantity = 1
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit bounds batch fetches.
	DefaultConcurrencyLimit = 3

	// BufferSize is the default buffer size for channels.
	BufferSize = 10
)

// Formats.
const (
	// DateFormat is the wire format of date-only query parameters.
	DateFormat = "2006-01-02"

	// FormatTable renders command output as a table.
	FormatTable = "table"

	// FormatJSON renders command output as JSON.
	FormatJSON = "json"

	// FormatYAML renders command output as YAML.
	FormatYAML = "yaml"
)

// Resource paths.
const (
	ProjectsPath = "/v1/projects"
	ProductsPath = "/v1/products"
	OrdersPath   = "/v1/orders"
	ShippingPath = "/v1/shipping"
	AccountPath  = "/v1/account"
	PrintPath    = "/v1/print"
)
