package lulu

// Product is a catalog entry that can be printed.
type Product struct {
	ID           string          `json:"id"                    yaml:"id"`
	Name         string          `json:"name"                  yaml:"name"`
	Description  *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Category     string          `json:"category"              yaml:"category"`
	Type         ProductType     `json:"type"                  yaml:"type"`
	Sizes        []ProductSize   `json:"sizes"                 yaml:"sizes"`
	PaperTypes   []string        `json:"paper_types"           yaml:"paper_types"`
	BindingTypes []string        `json:"binding_types"         yaml:"binding_types"`
	Pricing      *ProductPricing `json:"pricing,omitempty"     yaml:"pricing,omitempty"`
	MinPages     int             `json:"min_pages"             yaml:"min_pages"`
	MaxPages     int             `json:"max_pages"             yaml:"max_pages"`
	Available    bool            `json:"available"             yaml:"available"`
}

// ProductPricing is a price quote for one product configuration.
type ProductPricing struct {
	BasePrice         Cents              `json:"base_price"                   yaml:"base_price"`
	Currency          string             `json:"currency"                     yaml:"currency"`
	PricePerPage      Cents              `json:"price_per_page"               yaml:"price_per_page"`
	QuantityDiscounts []QuantityDiscount `json:"quantity_discounts,omitempty" yaml:"quantity_discounts,omitempty"`
}

// ProductSize is a trim size offered for a product.
type ProductSize struct {
	ID           string  `json:"id"            yaml:"id"`
	Name         string  `json:"name"          yaml:"name"`
	WidthInches  float64 `json:"width_inches"  yaml:"width_inches"`
	HeightInches float64 `json:"height_inches" yaml:"height_inches"`
	WidthMM      float64 `json:"width_mm"      yaml:"width_mm"`
	HeightMM     float64 `json:"height_mm"     yaml:"height_mm"`
}

// QuantityDiscount applies from MinQuantity copies upward.
type QuantityDiscount struct {
	MinQuantity        int     `json:"min_quantity"        yaml:"min_quantity"`
	DiscountPercentage float64 `json:"discount_percentage" yaml:"discount_percentage"`
}
