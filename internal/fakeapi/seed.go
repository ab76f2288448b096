package fakeapi

import (
	"time"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

var (
	size6x9 = lulu.ProductSize{
		ID: "6x9", Name: "US Trade", WidthInches: 6, HeightInches: 9, WidthMM: 152.4, HeightMM: 228.6,
	}
	size85x11 = lulu.ProductSize{
		ID: "8.5x11", Name: "US Letter", WidthInches: 8.5, HeightInches: 11, WidthMM: 215.9, HeightMM: 279.4,
	}
	sizeA4 = lulu.ProductSize{
		ID: "a4", Name: "A4", WidthInches: 8.27, HeightInches: 11.69, WidthMM: 210, HeightMM: 297,
	}
)

func (s *Server) seed() {
	now := s.now().UTC()

	s.usage = usageCounter{byEndpoint: map[string]int{}, since: now}

	s.products = []lulu.Product{
		{
			ID:           "pb-bw-standard",
			Name:         "Paperback, black and white",
			Description:  lulu.Ptr("Perfect bound paperback with a standard black and white interior."),
			Category:     "books",
			Type:         lulu.ProductTypeBook,
			Sizes:        []lulu.ProductSize{size6x9, size85x11},
			PaperTypes:   []string{"cream 60#", "white 60#"},
			BindingTypes: []string{"perfect", "coil"},
			Pricing: &lulu.ProductPricing{
				BasePrice:    250,
				Currency:     "USD",
				PricePerPage: 2,
				QuantityDiscounts: []lulu.QuantityDiscount{
					{MinQuantity: 50, DiscountPercentage: 5},
					{MinQuantity: 100, DiscountPercentage: 10},
				},
			},
			MinPages:  24,
			MaxPages:  800,
			Available: true,
		},
		{
			ID:           "hc-photo-premium",
			Name:         "Hardcover photo book",
			Description:  lulu.Ptr("Case wrap hardcover on premium color paper."),
			Category:     "photo books",
			Type:         lulu.ProductTypePhotoBook,
			Sizes:        []lulu.ProductSize{size85x11, sizeA4},
			PaperTypes:   []string{"white 80#"},
			BindingTypes: []string{"casewrap"},
			Pricing:      &lulu.ProductPricing{BasePrice: 1499, Currency: "USD", PricePerPage: 15},
			MinPages:     24,
			MaxPages:     240,
			Available:    true,
		},
		{
			ID:           "cal-wall",
			Name:         "Wall calendar",
			Category:     "calendars",
			Type:         lulu.ProductTypeCalendar,
			Sizes:        []lulu.ProductSize{size85x11},
			PaperTypes:   []string{"white 100#"},
			BindingTypes: []string{"wire-o"},
			Pricing:      &lulu.ProductPricing{BasePrice: 1299, Currency: "USD", PricePerPage: 0},
			MinPages:     28,
			MaxPages:     28,
			Available:    false,
		},
	}

	s.methods = []lulu.ShippingMethod{
		{ID: "MAIL", Name: "Mail", Carrier: "USPS", DeliveryDays: 10, BaseCost: 399},
		{ID: "GROUND", Name: "Ground", Carrier: "UPS", DeliveryDays: 5, TrackingAvailable: true, BaseCost: 599},
		{ID: "EXPRESS", Name: "Express", Carrier: "FedEx", DeliveryDays: 2, TrackingAvailable: true, BaseCost: 1999},
	}

	s.facilities = []lulu.PrintFacility{
		{
			ID: "fac-us-nc", Name: "Raleigh", Country: "US", City: "Raleigh",
			SupportedProducts: []string{"pb-bw-standard", "hc-photo-premium", "cal-wall"}, AvgProductionDays: 3, Active: true,
		},
		{
			ID: "fac-gb-ldn", Name: "London", Country: "GB", City: "London",
			SupportedProducts: []string{"pb-bw-standard"}, AvgProductionDays: 4, Active: true,
		},
		{
			ID: "fac-au-syd", Name: "Sydney", Country: "AU", City: "Sydney",
			SupportedProducts: []string{"pb-bw-standard"}, AvgProductionDays: 5, Active: false,
		},
	}

	s.account = lulu.Account{
		ID:          "acc-sandbox",
		Name:        "Sandbox User",
		Email:       "sandbox@example.com",
		Type:        lulu.AccountTypeIndividual,
		Status:      lulu.AccountStatusActive,
		CreatedAt:   now.Add(-365 * 24 * time.Hour),
		UpdatedAt:   now,
		Preferences: lulu.DefaultAccountPreferences(),
	}

	s.balance = lulu.AccountBalance{
		Currency:    "USD",
		CreditLimit: 50000,
		UpdatedAt:   now,
	}
}

func (s *Server) findProduct(productID string) (lulu.Product, bool) {
	for _, product := range s.products {
		if product.ID == productID {
			return product, true
		}
	}

	return lulu.Product{}, false
}

func (s *Server) findMethod(methodID string) (lulu.ShippingMethod, bool) {
	for _, method := range s.methods {
		if method.ID == methodID {
			return method, true
		}
	}

	return lulu.ShippingMethod{}, false
}
