package lulu

import "time"

// ShippingAddress is a postal destination.
type ShippingAddress struct {
	AddressLine1 string  `json:"address_line_1"           yaml:"address_line_1"`
	AddressLine2 *string `json:"address_line_2,omitempty" yaml:"address_line_2,omitempty"`
	City         string  `json:"city"                     yaml:"city"`
	State        string  `json:"state"                    yaml:"state"`
	PostalCode   string  `json:"postal_code"              yaml:"postal_code"`
	Country      string  `json:"country"                  yaml:"country"`
}

// ShippingItem is a product line used to price a shipment.
type ShippingItem struct {
	ProductID   string `json:"product_id"   yaml:"product_id"`
	Quantity    int    `json:"quantity"     yaml:"quantity"`
	WeightGrams int    `json:"weight_grams" yaml:"weight_grams"`
}

// ShippingMethod is a carrier service available for a destination.
type ShippingMethod struct {
	ID                string  `json:"id"                    yaml:"id"`
	Name              string  `json:"name"                  yaml:"name"`
	Description       *string `json:"description,omitempty" yaml:"description,omitempty"`
	Carrier           string  `json:"carrier"               yaml:"carrier"`
	DeliveryDays      int     `json:"delivery_days"         yaml:"delivery_days"`
	TrackingAvailable bool    `json:"tracking_available"    yaml:"tracking_available"`
	BaseCost          Cents   `json:"base_cost"             yaml:"base_cost"`
}

// ShippingOptionsRequest asks which methods serve a destination.
type ShippingOptionsRequest struct {
	Country     string   `json:"country"                yaml:"country"`
	State       *string  `json:"state,omitempty"        yaml:"state,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"  yaml:"postal_code,omitempty"`
	ProductIDs  []string `json:"product_ids"            yaml:"product_ids"`
	WeightGrams *int     `json:"weight_grams,omitempty" yaml:"weight_grams,omitempty"`
}

// ShippingCostRequest prices one method for a set of items.
type ShippingCostRequest struct {
	MethodID    string          `json:"method_id"   yaml:"method_id"`
	Destination ShippingAddress `json:"destination" yaml:"destination"`
	Items       []ShippingItem  `json:"items"       yaml:"items"`
}

// ShippingCost is the price of one method.
type ShippingCost struct {
	MethodID  string                 `json:"method_id"           yaml:"method_id"`
	Cost      Cents                  `json:"cost"                yaml:"cost"`
	Currency  string                 `json:"currency"            yaml:"currency"`
	Breakdown *ShippingCostBreakdown `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// ShippingCostBreakdown itemizes a ShippingCost.
type ShippingCostBreakdown struct {
	BaseRate       Cents `json:"base_rate"       yaml:"base_rate"`
	WeightCharges  Cents `json:"weight_charges"  yaml:"weight_charges"`
	AdditionalFees Cents `json:"additional_fees" yaml:"additional_fees"`
	FuelSurcharge  Cents `json:"fuel_surcharge"  yaml:"fuel_surcharge"`
}

// DeliveryEstimateRequest asks how long delivery takes to a destination.
type DeliveryEstimateRequest struct {
	Destination ShippingAddress `json:"destination" yaml:"destination"`
	ProductIDs  []string        `json:"product_ids" yaml:"product_ids"`
}

// DeliveryEstimate is the delivery window of one method.
type DeliveryEstimate struct {
	MethodID      string     `json:"method_id"                yaml:"method_id"`
	MinDays       int        `json:"min_days"                 yaml:"min_days"`
	MaxDays       int        `json:"max_days"                 yaml:"max_days"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty" yaml:"estimated_date,omitempty"`
}

// AddressValidationRequest wraps an address for validation.
type AddressValidationRequest struct {
	Address ShippingAddress `json:"address" yaml:"address"`
}

// AddressValidationResult reports whether an address is deliverable.
type AddressValidationResult struct {
	Valid       bool              `json:"valid"                 yaml:"valid"`
	Address     *ShippingAddress  `json:"address,omitempty"     yaml:"address,omitempty"`
	Messages    []string          `json:"messages,omitempty"    yaml:"messages,omitempty"`
	Suggestions []ShippingAddress `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}
