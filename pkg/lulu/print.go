package lulu

import "time"

// PrintJob is the production record of an order at a facility.
type PrintJob struct {
	ID                  string              `json:"id"                             yaml:"id"`
	OrderID             string              `json:"order_id"                       yaml:"order_id"`
	Status              PrintJobStatus      `json:"status"                         yaml:"status"`
	ProductID           string              `json:"product_id"                     yaml:"product_id"`
	Quantity            int                 `json:"quantity"                       yaml:"quantity"`
	FacilityID          *string             `json:"facility_id,omitempty"          yaml:"facility_id,omitempty"`
	CreatedAt           time.Time           `json:"created_at"                     yaml:"created_at"`
	StartedAt           *time.Time          `json:"started_at,omitempty"           yaml:"started_at,omitempty"`
	CompletedAt         *time.Time          `json:"completed_at,omitempty"         yaml:"completed_at,omitempty"`
	EstimatedCompletion *time.Time          `json:"estimated_completion,omitempty" yaml:"estimated_completion,omitempty"`
	QualityCheck        *QualityCheckResult `json:"quality_check,omitempty"        yaml:"quality_check,omitempty"`
}

// QualityCheckResult is the outcome of the pre-press inspection.
type QualityCheckResult struct {
	Passed    bool           `json:"passed"           yaml:"passed"`
	Score     int            `json:"score"            yaml:"score"`
	Issues    []QualityIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
	CheckedAt time.Time      `json:"checked_at"       yaml:"checked_at"`
}

// QualityIssue is one finding of a quality check.
type QualityIssue struct {
	Type        string               `json:"type"               yaml:"type"`
	Severity    QualityIssueSeverity `json:"severity"           yaml:"severity"`
	Description string               `json:"description"        yaml:"description"`
	Page        *int                 `json:"page,omitempty"     yaml:"page,omitempty"`
	Location    *PageLocation        `json:"location,omitempty" yaml:"location,omitempty"`
}

// PageLocation is a region on a page, in points.
type PageLocation struct {
	X      float64  `json:"x"                yaml:"x"`
	Y      float64  `json:"y"                yaml:"y"`
	Width  *float64 `json:"width,omitempty"  yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// PDFValidationRequest submits an interior file for checking.
type PDFValidationRequest struct {
	ProductID       string          `json:"product_id"       yaml:"product_id"`
	PDFContent      string          `json:"pdf_content"      yaml:"pdf_content"`
	Filename        string          `json:"filename"         yaml:"filename"`
	ValidationLevel ValidationLevel `json:"validation_level" yaml:"validation_level"`
}

// PDFValidationResult is the outcome of a PDF check.
type PDFValidationResult struct {
	Valid       bool              `json:"valid"              yaml:"valid"`
	Score       int               `json:"score"              yaml:"score"`
	Issues      []ValidationIssue `json:"issues,omitempty"   yaml:"issues,omitempty"`
	Metadata    *PDFMetadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	ValidatedAt time.Time         `json:"validated_at"       yaml:"validated_at"`
}

// ValidationIssue is one finding of a PDF check.
type ValidationIssue struct {
	Type         string             `json:"type"                    yaml:"type"`
	Severity     ValidationSeverity `json:"severity"                yaml:"severity"`
	Message      string             `json:"message"                 yaml:"message"`
	Page         *int               `json:"page,omitempty"          yaml:"page,omitempty"`
	SuggestedFix *string            `json:"suggested_fix,omitempty" yaml:"suggested_fix,omitempty"`
}

// PDFMetadata describes a checked PDF.
type PDFMetadata struct {
	PageCount      int     `json:"page_count"              yaml:"page_count"`
	FileSize       int64   `json:"file_size"               yaml:"file_size"`
	PDFVersion     *string `json:"pdf_version,omitempty"   yaml:"pdf_version,omitempty"`
	ColorProfile   *string `json:"color_profile,omitempty" yaml:"color_profile,omitempty"`
	Resolution     *int    `json:"resolution,omitempty"    yaml:"resolution,omitempty"`
	EmbeddedFonts  bool    `json:"embedded_fonts"          yaml:"embedded_fonts"`
	ContainsImages bool    `json:"contains_images"         yaml:"contains_images"`
}

// PrintQualityRequirements are the file rules for a product.
type PrintQualityRequirements struct {
	ProductID     string   `json:"product_id"     yaml:"product_id"`
	MinResolution int      `json:"min_resolution" yaml:"min_resolution"`
	MaxFileSize   int64    `json:"max_file_size"  yaml:"max_file_size"`
	ColorProfiles []string `json:"color_profiles" yaml:"color_profiles"`
	BleedArea     float64  `json:"bleed_area"     yaml:"bleed_area"`
	SafeArea      float64  `json:"safe_area"      yaml:"safe_area"`
	FontsEmbedded bool     `json:"fonts_embedded" yaml:"fonts_embedded"`
	PDFVersions   []string `json:"pdf_versions"   yaml:"pdf_versions"`
}

// PrintFacility is a production site.
type PrintFacility struct {
	ID                string   `json:"id"                  yaml:"id"`
	Name              string   `json:"name"                yaml:"name"`
	Country           string   `json:"country"             yaml:"country"`
	City              string   `json:"city"                yaml:"city"`
	SupportedProducts []string `json:"supported_products"  yaml:"supported_products"`
	AvgProductionDays int      `json:"avg_production_days" yaml:"avg_production_days"`
	Active            bool     `json:"active"              yaml:"active"`
}

// ProductionTimeRequest asks how long a run takes.
type ProductionTimeRequest struct {
	ProductID  string  `json:"product_id"            yaml:"product_id"`
	Quantity   int     `json:"quantity"              yaml:"quantity"`
	FacilityID *string `json:"facility_id,omitempty" yaml:"facility_id,omitempty"`
	RushOrder  bool    `json:"rush_order"            yaml:"rush_order"`
}

// ProductionTimeEstimate is the answer to a ProductionTimeRequest.
type ProductionTimeEstimate struct {
	ProductionDays      int       `json:"production_days"                yaml:"production_days"`
	EarliestStart       time.Time `json:"earliest_start"                 yaml:"earliest_start"`
	EstimatedCompletion time.Time `json:"estimated_completion"           yaml:"estimated_completion"`
	RushSurcharge       *Cents    `json:"rush_surcharge,omitempty"       yaml:"rush_surcharge,omitempty"`
	RecommendedFacility *string   `json:"recommended_facility,omitempty" yaml:"recommended_facility,omitempty"`
}
