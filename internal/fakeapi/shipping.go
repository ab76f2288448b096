package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// gramsPerCharge is the weight step billed at one cent.
const gramsPerCharge = 10

// methodsFor lists the methods serving country. Express is domestic only.
func (s *Server) methodsFor(country string) []lulu.ShippingMethod {
	methods := []lulu.ShippingMethod{}

	for _, method := range s.methods {
		if method.ID == "EXPRESS" && !strings.EqualFold(country, "US") {
			continue
		}

		methods = append(methods, method)
	}

	return methods
}

func (s *Server) shippingOptions(writer http.ResponseWriter, request *http.Request) {
	var body lulu.ShippingOptionsRequest
	if !s.decode(writer, request, &body) {
		return
	}

	if strings.TrimSpace(body.Country) == "" {
		s.invalid(writer, "country", "country is required")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(writer, http.StatusOK, s.methodsFor(body.Country))
}

func (s *Server) shippingCost(writer http.ResponseWriter, request *http.Request) {
	var body lulu.ShippingCostRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	method, ok := s.findMethod(body.MethodID)
	if !ok {
		s.invalid(writer, "method_id", "unknown shipping method "+body.MethodID)

		return
	}

	grams := 0
	for _, item := range body.Items {
		grams += item.WeightGrams * item.Quantity
	}

	breakdown := lulu.ShippingCostBreakdown{
		BaseRate:      method.BaseCost,
		WeightCharges: lulu.Cents(grams / gramsPerCharge),
	}

	if !strings.EqualFold(body.Destination.Country, "US") {
		breakdown.AdditionalFees = 500
	}

	s.writeJSON(writer, http.StatusOK, lulu.ShippingCost{
		MethodID:  method.ID,
		Cost:      breakdown.BaseRate + breakdown.WeightCharges + breakdown.AdditionalFees + breakdown.FuelSurcharge,
		Currency:  "USD",
		Breakdown: &breakdown,
	})
}

func (s *Server) deliveryEstimates(writer http.ResponseWriter, request *http.Request) {
	var body lulu.DeliveryEstimateRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	estimates := []lulu.DeliveryEstimate{}

	for _, method := range s.methodsFor(body.Destination.Country) {
		date := now.Add(time.Duration(method.DeliveryDays) * 24 * time.Hour)
		estimates = append(estimates, lulu.DeliveryEstimate{
			MethodID:      method.ID,
			MinDays:       method.DeliveryDays,
			MaxDays:       method.DeliveryDays + 2,
			EstimatedDate: &date,
		})
	}

	s.writeJSON(writer, http.StatusOK, estimates)
}

func (s *Server) validateAddress(writer http.ResponseWriter, request *http.Request) {
	var body lulu.AddressValidationRequest
	if !s.decode(writer, request, &body) {
		return
	}

	address := body.Address
	result := lulu.AddressValidationResult{Valid: true}

	required := []struct {
		field string
		value string
	}{
		{"address_line_1", address.AddressLine1},
		{"city", address.City},
		{"postal_code", address.PostalCode},
		{"country", address.Country},
	}

	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			result.Valid = false
			result.Messages = append(result.Messages, entry.field+" is required")
		}
	}

	if result.Valid {
		normalized := address
		normalized.City = strings.ToUpper(strings.TrimSpace(address.City))
		normalized.State = strings.ToUpper(strings.TrimSpace(address.State))
		normalized.Country = strings.ToUpper(strings.TrimSpace(address.Country))
		result.Address = &normalized
	}

	s.writeJSON(writer, http.StatusOK, result)
}
