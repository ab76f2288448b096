package lulu

import (
	"fmt"
	"strings"
)

// Enums travel as their lowercase member name and are read back without
// regard to case. An empty string decodes to the zero value.

func parseEnum[T ~string](kind, raw string, members []T) (T, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}

	for _, member := range members {
		if strings.EqualFold(string(member), value) {
			return member, nil
		}
	}

	return "", fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, raw)
}

func marshalEnum[T ~string](value T) ([]byte, error) {
	return []byte(strings.ToLower(string(value))), nil
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists every ProjectStatus member.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusDraft, ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted,
}

// ParseProjectStatus parses s case-insensitively.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	return parseEnum("project status", s, ProjectStatuses)
}

// MarshalText encodes ProjectStatus as its lowercase wire value.
func (s ProjectStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseProjectStatus.
func (s *ProjectStatus) UnmarshalText(text []byte) error {
	v, err := ParseProjectStatus(string(text))
	*s = v

	return err
}

// ProductType is the kind of printed product.
type ProductType string

const (
	ProductTypeBook      ProductType = "book"
	ProductTypeMagazine  ProductType = "magazine"
	ProductTypeCalendar  ProductType = "calendar"
	ProductTypePoster    ProductType = "poster"
	ProductTypeJournal   ProductType = "journal"
	ProductTypePhotoBook ProductType = "photobook"
	ProductTypeCookbook  ProductType = "cookbook"
)

// ProductTypes lists every ProductType member.
var ProductTypes = []ProductType{
	ProductTypeBook, ProductTypeMagazine, ProductTypeCalendar, ProductTypePoster,
	ProductTypeJournal, ProductTypePhotoBook, ProductTypeCookbook,
}

// ParseProductType parses s case-insensitively.
func ParseProductType(s string) (ProductType, error) {
	return parseEnum("product type", s, ProductTypes)
}

// MarshalText encodes ProductType as its lowercase wire value.
func (t ProductType) MarshalText() ([]byte, error) { return marshalEnum(t) }

// UnmarshalText decodes a wire value through ParseProductType.
func (t *ProductType) UnmarshalText(text []byte) error {
	v, err := ParseProductType(string(text))
	*t = v

	return err
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusProcessing   OrderStatus = "processing"
	OrderStatusConfirmed    OrderStatus = "confirmed"
	OrderStatusInProduction OrderStatus = "inproduction"
	OrderStatusPrinted      OrderStatus = "printed"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
	OrderStatusRefunded     OrderStatus = "refunded"
)

// OrderStatuses lists every OrderStatus member.
var OrderStatuses = []OrderStatus{
	OrderStatusProcessing, OrderStatusConfirmed, OrderStatusInProduction, OrderStatusPrinted,
	OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
}

// ParseOrderStatus parses s case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, error) {
	return parseEnum("order status", s, OrderStatuses)
}

// MarshalText encodes OrderStatus as its lowercase wire value.
func (s OrderStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseOrderStatus.
func (s *OrderStatus) UnmarshalText(text []byte) error {
	v, err := ParseOrderStatus(string(text))
	*s = v

	return err
}

// OrderItemStatus is the fulfilment state of a single order line.
type OrderItemStatus string

const (
	OrderItemStatusProcessing   OrderItemStatus = "processing"
	OrderItemStatusInProduction OrderItemStatus = "inproduction"
	OrderItemStatusPrinted      OrderItemStatus = "printed"
	OrderItemStatusShipped      OrderItemStatus = "shipped"
	OrderItemStatusDelivered    OrderItemStatus = "delivered"
	OrderItemStatusCancelled    OrderItemStatus = "cancelled"
)

// OrderItemStatuses lists every OrderItemStatus member.
var OrderItemStatuses = []OrderItemStatus{
	OrderItemStatusProcessing, OrderItemStatusInProduction, OrderItemStatusPrinted,
	OrderItemStatusShipped, OrderItemStatusDelivered, OrderItemStatusCancelled,
}

// ParseOrderItemStatus parses s case-insensitively.
func ParseOrderItemStatus(s string) (OrderItemStatus, error) {
	return parseEnum("order item status", s, OrderItemStatuses)
}

// MarshalText encodes OrderItemStatus as its lowercase wire value.
func (s OrderItemStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseOrderItemStatus.
func (s *OrderItemStatus) UnmarshalText(text []byte) error {
	v, err := ParseOrderItemStatus(string(text))
	*s = v

	return err
}

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
	AccountTypeEnterprise AccountType = "enterprise"
)

// AccountTypes lists every AccountType member.
var AccountTypes = []AccountType{AccountTypeIndividual, AccountTypeBusiness, AccountTypeEnterprise}

// ParseAccountType parses s case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	return parseEnum("account type", s, AccountTypes)
}

// MarshalText encodes AccountType as its lowercase wire value.
func (t AccountType) MarshalText() ([]byte, error) { return marshalEnum(t) }

// UnmarshalText decodes a wire value through ParseAccountType.
func (t *AccountType) UnmarshalText(text []byte) error {
	v, err := ParseAccountType(string(text))
	*t = v

	return err
}

// AccountStatus is the standing of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusClosed    AccountStatus = "closed"
)

// AccountStatuses lists every AccountStatus member.
var AccountStatuses = []AccountStatus{
	AccountStatusActive, AccountStatusSuspended, AccountStatusPending, AccountStatusClosed,
}

// ParseAccountStatus parses s case-insensitively.
func ParseAccountStatus(s string) (AccountStatus, error) {
	return parseEnum("account status", s, AccountStatuses)
}

// MarshalText encodes AccountStatus as its lowercase wire value.
func (s AccountStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseAccountStatus.
func (s *AccountStatus) UnmarshalText(text []byte) error {
	v, err := ParseAccountStatus(string(text))
	*s = v

	return err
}

// BillingType is the direction of a billing record.
type BillingType string

const (
	BillingTypeCharge BillingType = "charge"
	BillingTypeRefund BillingType = "refund"
	BillingTypeCredit BillingType = "credit"
	BillingTypeDebit  BillingType = "debit"
)

// BillingTypes lists every BillingType member.
var BillingTypes = []BillingType{BillingTypeCharge, BillingTypeRefund, BillingTypeCredit, BillingTypeDebit}

// ParseBillingType parses s case-insensitively.
func ParseBillingType(s string) (BillingType, error) {
	return parseEnum("billing type", s, BillingTypes)
}

// MarshalText encodes BillingType as its lowercase wire value.
func (t BillingType) MarshalText() ([]byte, error) { return marshalEnum(t) }

// UnmarshalText decodes a wire value through ParseBillingType.
func (t *BillingType) UnmarshalText(text []byte) error {
	v, err := ParseBillingType(string(text))
	*t = v

	return err
}

// BillingStatus is the settlement state of a billing record.
type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "pending"
	BillingStatusCompleted BillingStatus = "completed"
	BillingStatusFailed    BillingStatus = "failed"
	BillingStatusReversed  BillingStatus = "reversed"
)

// BillingStatuses lists every BillingStatus member.
var BillingStatuses = []BillingStatus{
	BillingStatusPending, BillingStatusCompleted, BillingStatusFailed, BillingStatusReversed,
}

// ParseBillingStatus parses s case-insensitively.
func ParseBillingStatus(s string) (BillingStatus, error) {
	return parseEnum("billing status", s, BillingStatuses)
}

// MarshalText encodes BillingStatus as its lowercase wire value.
func (s BillingStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseBillingStatus.
func (s *BillingStatus) UnmarshalText(text []byte) error {
	v, err := ParseBillingStatus(string(text))
	*s = v

	return err
}

// PrintJobStatus is the state of a job at the print facility.
type PrintJobStatus string

const (
	PrintJobStatusQueued     PrintJobStatus = "queued"
	PrintJobStatusProcessing PrintJobStatus = "processing"
	PrintJobStatusPrinting   PrintJobStatus = "printing"
	PrintJobStatusCompleted  PrintJobStatus = "completed"
	PrintJobStatusFailed     PrintJobStatus = "failed"
	PrintJobStatusCancelled  PrintJobStatus = "cancelled"
)

// PrintJobStatuses lists every PrintJobStatus member.
var PrintJobStatuses = []PrintJobStatus{
	PrintJobStatusQueued, PrintJobStatusProcessing, PrintJobStatusPrinting,
	PrintJobStatusCompleted, PrintJobStatusFailed, PrintJobStatusCancelled,
}

// ParsePrintJobStatus parses s case-insensitively.
func ParsePrintJobStatus(s string) (PrintJobStatus, error) {
	return parseEnum("print job status", s, PrintJobStatuses)
}

// MarshalText encodes PrintJobStatus as its lowercase wire value.
func (s PrintJobStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParsePrintJobStatus.
func (s *PrintJobStatus) UnmarshalText(text []byte) error {
	v, err := ParsePrintJobStatus(string(text))
	*s = v

	return err
}

// QualityIssueSeverity grades a print quality finding.
type QualityIssueSeverity string

const (
	QualityIssueSeverityLow      QualityIssueSeverity = "low"
	QualityIssueSeverityMedium   QualityIssueSeverity = "medium"
	QualityIssueSeverityHigh     QualityIssueSeverity = "high"
	QualityIssueSeverityCritical QualityIssueSeverity = "critical"
)

// QualityIssueSeverities lists every QualityIssueSeverity member.
var QualityIssueSeverities = []QualityIssueSeverity{
	QualityIssueSeverityLow, QualityIssueSeverityMedium, QualityIssueSeverityHigh, QualityIssueSeverityCritical,
}

// ParseQualityIssueSeverity parses s case-insensitively.
func ParseQualityIssueSeverity(s string) (QualityIssueSeverity, error) {
	return parseEnum("quality issue severity", s, QualityIssueSeverities)
}

// MarshalText encodes QualityIssueSeverity as its lowercase wire value.
func (s QualityIssueSeverity) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseQualityIssueSeverity.
func (s *QualityIssueSeverity) UnmarshalText(text []byte) error {
	v, err := ParseQualityIssueSeverity(string(text))
	*s = v

	return err
}

// ValidationLevel selects how thoroughly a PDF is checked.
type ValidationLevel string

const (
	ValidationLevelBasic         ValidationLevel = "basic"
	ValidationLevelStandard      ValidationLevel = "standard"
	ValidationLevelComprehensive ValidationLevel = "comprehensive"
)

// ValidationLevels lists every ValidationLevel member.
var ValidationLevels = []ValidationLevel{ValidationLevelBasic, ValidationLevelStandard, ValidationLevelComprehensive}

// ParseValidationLevel parses s case-insensitively.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	return parseEnum("validation level", s, ValidationLevels)
}

// MarshalText encodes ValidationLevel as its lowercase wire value.
func (l ValidationLevel) MarshalText() ([]byte, error) { return marshalEnum(l) }

// UnmarshalText decodes a wire value through ParseValidationLevel.
func (l *ValidationLevel) UnmarshalText(text []byte) error {
	v, err := ParseValidationLevel(string(text))
	*l = v

	return err
}

// ValidationSeverity grades a PDF validation finding.
type ValidationSeverity string

const (
	ValidationSeverityInfo    ValidationSeverity = "info"
	ValidationSeverityWarning ValidationSeverity = "warning"
	ValidationSeverityError   ValidationSeverity = "error"
)

// ValidationSeverities lists every ValidationSeverity member.
var ValidationSeverities = []ValidationSeverity{
	ValidationSeverityInfo, ValidationSeverityWarning, ValidationSeverityError,
}

// ParseValidationSeverity parses s case-insensitively.
func ParseValidationSeverity(s string) (ValidationSeverity, error) {
	return parseEnum("validation severity", s, ValidationSeverities)
}

// MarshalText encodes ValidationSeverity as its lowercase wire value.
func (s ValidationSeverity) MarshalText() ([]byte, error) { return marshalEnum(s) }

// UnmarshalText decodes a wire value through ParseValidationSeverity.
func (s *ValidationSeverity) UnmarshalText(text []byte) error {
	v, err := ParseValidationSeverity(string(text))
	*s = v

	return err
}
