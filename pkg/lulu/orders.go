package lulu

import "time"

// Order is a placed print order.
type Order struct {
	ID        string         `json:"id"                  yaml:"id"`
	Reference *string        `json:"reference,omitempty" yaml:"reference,omitempty"`
	Status    OrderStatus    `json:"status"              yaml:"status"`
	Items     []OrderItem    `json:"items"               yaml:"items"`
	Shipping  *ShippingInfo  `json:"shipping,omitempty"  yaml:"shipping,omitempty"`
	Billing   *BillingInfo   `json:"billing,omitempty"   yaml:"billing,omitempty"`
	Total     Cents          `json:"total"               yaml:"total"`
	Currency  string         `json:"currency"            yaml:"currency"`
	CreatedAt time.Time      `json:"created_at"          yaml:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"          yaml:"updated_at"`
	Tracking  *OrderTracking `json:"tracking,omitempty"  yaml:"tracking,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID            string                `json:"id"                      yaml:"id"`
	ProductID     string                `json:"product_id"              yaml:"product_id"`
	ProjectID     *string               `json:"project_id,omitempty"    yaml:"project_id,omitempty"`
	Quantity      int                   `json:"quantity"                yaml:"quantity"`
	UnitPrice     Cents                 `json:"unit_price"              yaml:"unit_price"`
	TotalPrice    Cents                 `json:"total_price"             yaml:"total_price"`
	Configuration *ProductConfiguration `json:"configuration,omitempty" yaml:"configuration,omitempty"`
	Status        OrderItemStatus       `json:"status"                  yaml:"status"`
}

// CreateOrderRequest is the body of an order create or estimate.
type CreateOrderRequest struct {
	Reference *string                  `json:"reference,omitempty" yaml:"reference,omitempty"`
	Items     []CreateOrderItemRequest `json:"items"               validate:"min=1"          yaml:"items"`
	Shipping  ShippingInfo             `json:"shipping"            yaml:"shipping"`
	Billing   *BillingInfo             `json:"billing,omitempty"   yaml:"billing,omitempty"`
	TestOrder bool                     `json:"test_order"          yaml:"test_order"`
}

// CreateOrderItemRequest is one line of a new order.
type CreateOrderItemRequest struct {
	ProductID     string               `json:"product_id"           yaml:"product_id"`
	ProjectID     *string              `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Quantity      int                  `json:"quantity"             yaml:"quantity"`
	Configuration ProductConfiguration `json:"configuration"        yaml:"configuration"`
	PDFData       *PDFData             `json:"pdf_data,omitempty"   yaml:"pdf_data,omitempty"`
	CoverData     *ImageData           `json:"cover_data,omitempty" yaml:"cover_data,omitempty"`
}

// NewCreateOrderItemRequest returns a single-copy line for productID.
func NewCreateOrderItemRequest(productID string) CreateOrderItemRequest {
	return CreateOrderItemRequest{ProductID: productID, Quantity: 1}
}

// ProductConfiguration selects size, paper and binding for an item.
type ProductConfiguration struct {
	SizeID        string  `json:"size_id"                  yaml:"size_id"`
	PaperType     *string `json:"paper_type,omitempty"     yaml:"paper_type,omitempty"`
	BindingType   *string `json:"binding_type,omitempty"   yaml:"binding_type,omitempty"`
	PageCount     int     `json:"page_count"               yaml:"page_count"`
	CoverFinish   *string `json:"cover_finish,omitempty"   yaml:"cover_finish,omitempty"`
	InteriorColor *string `json:"interior_color,omitempty" yaml:"interior_color,omitempty"`
}

// PDFData is an inline interior file, base64 encoded.
type PDFData struct {
	Content  string  `json:"content"       yaml:"content"`
	Filename string  `json:"filename"      yaml:"filename"`
	Size     int64   `json:"size"          yaml:"size"`
	MD5      *string `json:"md5,omitempty" yaml:"md5,omitempty"`
}

// ImageData is an inline cover image, base64 encoded.
type ImageData struct {
	Content  string `json:"content"   yaml:"content"`
	Filename string `json:"filename"  yaml:"filename"`
	MimeType string `json:"mime_type" yaml:"mime_type"`
	Size     int64  `json:"size"      yaml:"size"`
	Width    int    `json:"width"     yaml:"width"`
	Height   int    `json:"height"    yaml:"height"`
}

// ShippingInfo is the recipient of an order.
type ShippingInfo struct {
	Name         string  `json:"name"                     yaml:"name"`
	Company      *string `json:"company,omitempty"        yaml:"company,omitempty"`
	AddressLine1 string  `json:"address_line_1"           yaml:"address_line_1"`
	AddressLine2 *string `json:"address_line_2,omitempty" yaml:"address_line_2,omitempty"`
	City         string  `json:"city"                     yaml:"city"`
	State        string  `json:"state"                    yaml:"state"`
	PostalCode   string  `json:"postal_code"              yaml:"postal_code"`
	Country      string  `json:"country"                  yaml:"country"`
	Phone        *string `json:"phone,omitempty"          yaml:"phone,omitempty"`
	Email        string  `json:"email"                    yaml:"email"`
	Method       *string `json:"method,omitempty"         yaml:"method,omitempty"`
}

// BillingInfo is the payer of an order.
type BillingInfo struct {
	SameAsShipping bool          `json:"same_as_shipping"  yaml:"same_as_shipping"`
	Name           *string       `json:"name,omitempty"    yaml:"name,omitempty"`
	Address        *ShippingInfo `json:"address,omitempty" yaml:"address,omitempty"`
}

// OrderTracking is the carrier hand-off of a shipped order.
type OrderTracking struct {
	TrackingNumber    *string    `json:"tracking_number,omitempty"    yaml:"tracking_number,omitempty"`
	Carrier           *string    `json:"carrier,omitempty"            yaml:"carrier,omitempty"`
	TrackingURL       *string    `json:"tracking_url,omitempty"       yaml:"tracking_url,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty" yaml:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"       yaml:"delivered_at,omitempty"`
}

// CancelOrderRequest is the body of an order cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// OrderEstimate is a quote for an order that has not been placed.
type OrderEstimate struct {
	Total          Cents               `json:"total"               yaml:"total"`
	Currency       string              `json:"currency"            yaml:"currency"`
	Breakdown      *OrderCostBreakdown `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
	ProductionDays int                 `json:"production_days"     yaml:"production_days"`
	ShippingDays   int                 `json:"shipping_days"       yaml:"shipping_days"`
}

// OrderCostBreakdown itemizes an OrderEstimate.
type OrderCostBreakdown struct {
	Subtotal Cents `json:"subtotal" yaml:"subtotal"`
	Shipping Cents `json:"shipping" yaml:"shipping"`
	Tax      Cents `json:"tax"      yaml:"tax"`
	Discount Cents `json:"discount" yaml:"discount"`
}
