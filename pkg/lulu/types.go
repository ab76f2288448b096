package lulu

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/retznutz/lulu-client/internal/constants"
)

// PagedResponse is one page of a list endpoint. Pages are zero-based.
type PagedResponse[T any] struct {
	Items []T `json:"items" yaml:"items"`
	Total int `json:"total" yaml:"total"`
	Page  int `json:"page"  yaml:"page"`
	Size  int `json:"size"  yaml:"size"`
}

// HasNextPage reports whether items exist past this page.
func (p *PagedResponse[T]) HasNextPage() bool {
	return (p.Page+1)*p.Size < p.Total
}

// HasPreviousPage reports whether this is not the first page.
func (p *PagedResponse[T]) HasPreviousPage() bool {
	return p.Page > 0
}

// ListOptions carries the page/size pair every list endpoint accepts.
// Values are passed to the server as given, without bounds checks.
type ListOptions struct {
	Page int
	Size int
}

// NewListOptions returns the first page at the default size.
func NewListOptions() *ListOptions {
	return &ListOptions{Page: constants.DefaultPage, Size: constants.DefaultPageSize}
}

// ProjectListOptions filters project listings.
type ProjectListOptions struct {
	ListOptions

	Status *ProjectStatus
}

// NewProjectListOptions returns default paging with no status filter.
func NewProjectListOptions() *ProjectListOptions {
	return &ProjectListOptions{ListOptions: *NewListOptions()}
}

// WithStatus sets the status filter.
func (o *ProjectListOptions) WithStatus(status ProjectStatus) *ProjectListOptions {
	o.Status = &status

	return o
}

// ProductListOptions filters catalog listings.
type ProductListOptions struct {
	ListOptions

	Category  *string
	Type      *ProductType
	Available *bool
}

// NewProductListOptions returns default paging with no filters.
func NewProductListOptions() *ProductListOptions {
	return &ProductListOptions{ListOptions: *NewListOptions()}
}

// OrderListOptions filters order listings.
type OrderListOptions struct {
	ListOptions

	Status *OrderStatus
}

// NewOrderListOptions returns default paging with no status filter.
func NewOrderListOptions() *OrderListOptions {
	return &OrderListOptions{ListOptions: *NewListOptions()}
}

// WithStatus sets the status filter.
func (o *OrderListOptions) WithStatus(status OrderStatus) *OrderListOptions {
	o.Status = &status

	return o
}

// PrintJobListOptions filters print job listings.
type PrintJobListOptions struct {
	ListOptions

	Status *PrintJobStatus
}

// NewPrintJobListOptions returns default paging with no status filter.
func NewPrintJobListOptions() *PrintJobListOptions {
	return &PrintJobListOptions{ListOptions: *NewListOptions()}
}

// PricingOptions selects the configuration a price is quoted for.
// Quantity zero means a single copy.
type PricingOptions struct {
	SizeID      string `validate:"notblank"`
	PageCount   int    `validate:"gt=0"`
	Quantity    int    `validate:"gte=0"`
	PaperType   string
	BindingType string
}

// UsageOptions bounds an API usage report. Either date may be nil.
type UsageOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Cents is a money amount in minor units. The currency travels in a sibling field.
type Cents int64

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount with two decimals, e.g. "12.50".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// CentsFromDecimal rounds a major-unit amount to the nearest cent.
func CentsFromDecimal(amount decimal.Decimal) Cents {
	return Cents(amount.Shift(2).Round(0).IntPart())
}

// Ptr returns a pointer to v. Handy for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
