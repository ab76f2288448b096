package fakeapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

func (s *Server) listProducts(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	values := request.URL.Query()

	productType, err := lulu.ParseProductType(values.Get("type"))
	if err != nil {
		s.invalid(writer, "type", err.Error())

		return
	}

	var available *bool

	if raw := values.Get("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			s.invalid(writer, "available", "available must be true or false")

			return
		}

		available = &parsed
	}

	category := values.Get("category")

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []lulu.Product

	for _, product := range s.products {
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}

		if productType != "" && product.Type != productType {
			continue
		}

		if available != nil && product.Available != *available {
			continue
		}

		matched = append(matched, product)
	}

	s.writeJSON(writer, http.StatusOK, paginate(matched, page, size))
}

func (s *Server) productCategories(writer http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	categories := []string{}

	for _, product := range s.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}

	sort.Strings(categories)

	s.writeJSON(writer, http.StatusOK, categories)
}

func (s *Server) searchProducts(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	term := strings.ToLower(strings.TrimSpace(request.URL.Query().Get("q")))
	if term == "" {
		s.invalid(writer, "q", "q is required")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []lulu.Product

	for _, product := range s.products {
		haystack := strings.ToLower(product.Name + " " + product.Category)
		if product.Description != nil {
			haystack += " " + strings.ToLower(*product.Description)
		}

		if strings.Contains(haystack, term) {
			matched = append(matched, product)
		}
	}

	s.writeJSON(writer, http.StatusOK, paginate(matched, page, size))
}

func (s *Server) getProduct(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "productID")

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		s.notFound(writer, "product", productID)

		return
	}

	s.writeJSON(writer, http.StatusOK, product)
}

func (s *Server) productSizes(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "productID")

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		s.notFound(writer, "product", productID)

		return
	}

	s.writeJSON(writer, http.StatusOK, product.Sizes)
}

// productPricing quotes one copy of a configuration. BasePrice carries the
// per-copy price after the best quantity discount.
func (s *Server) productPricing(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "productID")
	values := request.URL.Query()

	pageCount, err := strconv.Atoi(values.Get("page_count"))
	if err != nil || pageCount <= 0 {
		s.invalid(writer, "page_count", "page_count must be a positive integer")

		return
	}

	quantity, err := strconv.Atoi(values.Get("quantity"))
	if err != nil || quantity <= 0 {
		s.invalid(writer, "quantity", "quantity must be a positive integer")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		s.notFound(writer, "product", productID)

		return
	}

	if !hasSize(product, values.Get("size_id")) {
		s.invalid(writer, "size_id", "size "+values.Get("size_id")+" is not offered for "+productID)

		return
	}

	if pageCount < product.MinPages || pageCount > product.MaxPages {
		s.invalid(writer, "page_count", "page_count is outside the supported range")

		return
	}

	pricing := *product.Pricing
	pricing.BasePrice = unitPrice(product, pageCount, quantity)

	s.writeJSON(writer, http.StatusOK, pricing)
}

func hasSize(product lulu.Product, sizeID string) bool {
	for _, size := range product.Sizes {
		if size.ID == sizeID {
			return true
		}
	}

	return false
}

// unitPrice is base + pages * per-page, less the largest discount whose
// threshold quantity reaches.
func unitPrice(product lulu.Product, pageCount, quantity int) lulu.Cents {
	pricing := product.Pricing
	if pricing == nil {
		return 0
	}

	price := pricing.BasePrice.Decimal().Add(pricing.PricePerPage.Decimal().Mul(decimal.NewFromInt(int64(pageCount))))

	discount := 0.0

	for _, tier := range pricing.QuantityDiscounts {
		if quantity >= tier.MinQuantity && tier.DiscountPercentage > discount {
			discount = tier.DiscountPercentage
		}
	}

	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount).Div(decimal.NewFromInt(100)))

	return lulu.CentsFromDecimal(price.Mul(factor))
}
