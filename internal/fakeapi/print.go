package fakeapi

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const (
	rushDays      = 1
	rushSurcharge = lulu.Cents(1500)
	defaultDays   = 3
	pdfMagic      = "%PDF-"
)

func (s *Server) validatePDF(writer http.ResponseWriter, request *http.Request) {
	var body lulu.PDFValidationRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	_, known := s.findProduct(body.ProductID)
	s.mu.Unlock()

	result := lulu.PDFValidationResult{Valid: true, Score: 100, ValidatedAt: s.now().UTC()}

	if !known {
		result.Issues = append(result.Issues, lulu.ValidationIssue{
			Type: "product", Severity: lulu.ValidationSeverityError, Message: "unknown product " + body.ProductID,
		})
	}

	content, err := base64.StdEncoding.DecodeString(body.PDFContent)

	switch {
	case err != nil || len(content) == 0:
		result.Issues = append(result.Issues, lulu.ValidationIssue{
			Type: "file", Severity: lulu.ValidationSeverityError, Message: "pdf_content is not valid base64",
		})
	case !strings.HasPrefix(string(content), pdfMagic):
		result.Issues = append(result.Issues, lulu.ValidationIssue{
			Type: "file", Severity: lulu.ValidationSeverityError, Message: "file is not a PDF",
		})
	default:
		result.Metadata = &lulu.PDFMetadata{
			PageCount:  strings.Count(string(content), "/Type /Page") - strings.Count(string(content), "/Type /Pages"),
			FileSize:   int64(len(content)),
			PDFVersion: lulu.Ptr(strings.TrimSpace(string(content[len(pdfMagic):min(len(content), len(pdfMagic)+3)]))),
		}
	}

	if body.ValidationLevel == lulu.ValidationLevelComprehensive && result.Metadata != nil && !strings.Contains(string(content), "/FontFile") {
		result.Issues = append(result.Issues, lulu.ValidationIssue{
			Type: "font", Severity: lulu.ValidationSeverityWarning, Message: "fonts are not embedded",
			SuggestedFix: lulu.Ptr("embed all fonts when exporting"),
		})
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case lulu.ValidationSeverityError:
			result.Valid = false
			result.Score -= 50
		case lulu.ValidationSeverityWarning:
			result.Score -= 10
		case lulu.ValidationSeverityInfo:
		}
	}

	result.Score = max(result.Score, 0)

	s.writeJSON(writer, http.StatusOK, result)
}

func (s *Server) qualityRequirements(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "productID")

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		s.notFound(writer, "product", productID)

		return
	}

	colorProfiles := []string{"sRGB", "CMYK"}
	if product.Type == lulu.ProductTypeBook {
		colorProfiles = []string{"Grayscale", "CMYK"}
	}

	s.writeJSON(writer, http.StatusOK, lulu.PrintQualityRequirements{
		ProductID:     product.ID,
		MinResolution: 300,
		MaxFileSize:   1 << 30,
		ColorProfiles: colorProfiles,
		BleedArea:     0.125,
		SafeArea:      0.5,
		FontsEmbedded: true,
		PDFVersions:   []string{"1.3", "1.4", "1.5", "1.6", "1.7"},
	})
}

func (s *Server) listFacilities(writer http.ResponseWriter, request *http.Request) {
	country := strings.TrimSpace(request.URL.Query().Get("country"))

	s.mu.Lock()
	defer s.mu.Unlock()

	facilities := []lulu.PrintFacility{}

	for _, facility := range s.facilities {
		if country == "" || strings.EqualFold(facility.Country, country) {
			facilities = append(facilities, facility)
		}
	}

	s.writeJSON(writer, http.StatusOK, facilities)
}

func (s *Server) productionTime(writer http.ResponseWriter, request *http.Request) {
	var body lulu.ProductionTimeRequest
	if !s.decode(writer, request, &body) {
		return
	}

	if body.Quantity <= 0 {
		s.invalid(writer, "quantity", "quantity must be greater than 0")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findProduct(body.ProductID); !ok {
		s.notFound(writer, "product", body.ProductID)

		return
	}

	days := defaultDays

	var facilityID *string

	for _, facility := range s.facilities {
		if !facility.Active || !supports(facility, body.ProductID) {
			continue
		}

		if body.FacilityID != nil && facility.ID != *body.FacilityID {
			continue
		}

		days = facility.AvgProductionDays
		facilityID = lulu.Ptr(facility.ID)

		break
	}

	estimate := lulu.ProductionTimeEstimate{
		ProductionDays:      days,
		RecommendedFacility: facilityID,
	}

	if body.RushOrder {
		estimate.ProductionDays = rushDays
		estimate.RushSurcharge = lulu.Ptr(rushSurcharge * lulu.Cents(body.Quantity))
	}

	estimate.EarliestStart = s.now().UTC()
	estimate.EstimatedCompletion = estimate.EarliestStart.Add(time.Duration(estimate.ProductionDays) * 24 * time.Hour)

	s.writeJSON(writer, http.StatusOK, estimate)
}

func supports(facility lulu.PrintFacility, productID string) bool {
	for _, supported := range facility.SupportedProducts {
		if supported == productID {
			return true
		}
	}

	return false
}
