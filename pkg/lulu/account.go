package lulu

import "time"

// Account is the authenticated Lulu account.
type Account struct {
	ID          string              `json:"id"                    yaml:"id"`
	Name        string              `json:"name"                  yaml:"name"`
	Email       string              `json:"email"                 yaml:"email"`
	Company     *string             `json:"company,omitempty"     yaml:"company,omitempty"`
	Type        AccountType         `json:"type"                  yaml:"type"`
	Status      AccountStatus       `json:"status"                yaml:"status"`
	CreatedAt   time.Time           `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"            yaml:"updated_at"`
	Preferences *AccountPreferences `json:"preferences,omitempty" yaml:"preferences,omitempty"`
}

// AccountPreferences holds locale and notification settings.
type AccountPreferences struct {
	Currency      string                   `json:"currency"                yaml:"currency"`
	Timezone      *string                  `json:"timezone,omitempty"      yaml:"timezone,omitempty"`
	Language      string                   `json:"language"                yaml:"language"`
	Notifications *NotificationPreferences `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}

// DefaultAccountPreferences returns USD, English, and every operational notification on.
func DefaultAccountPreferences() *AccountPreferences {
	return &AccountPreferences{
		Currency:      "USD",
		Language:      "en",
		Notifications: DefaultNotificationPreferences(),
	}
}

// NotificationPreferences toggles account e-mail notifications.
type NotificationPreferences struct {
	OrderUpdates    bool `json:"order_updates"    yaml:"order_updates"`
	PrintCompletion bool `json:"print_completion" yaml:"print_completion"`
	ShippingUpdates bool `json:"shipping_updates" yaml:"shipping_updates"`
	Marketing       bool `json:"marketing"        yaml:"marketing"`
}

// DefaultNotificationPreferences enables everything except marketing.
func DefaultNotificationPreferences() *NotificationPreferences {
	return &NotificationPreferences{
		OrderUpdates:    true,
		PrintCompletion: true,
		ShippingUpdates: true,
	}
}

// UpdateAccountRequest is the body of an account update. Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string             `json:"name,omitempty"        yaml:"name,omitempty"`
	Email       *string             `json:"email,omitempty"       yaml:"email,omitempty"`
	Company     *string             `json:"company,omitempty"     yaml:"company,omitempty"`
	Preferences *AccountPreferences `json:"preferences,omitempty" yaml:"preferences,omitempty"`
}

// AccountBalance is the funds position of the account.
type AccountBalance struct {
	Balance     Cents     `json:"balance"      yaml:"balance"`
	Currency    string    `json:"currency"     yaml:"currency"`
	Credit      Cents     `json:"credit"       yaml:"credit"`
	CreditLimit Cents     `json:"credit_limit" yaml:"credit_limit"`
	UpdatedAt   time.Time `json:"updated_at"   yaml:"updated_at"`
}

// BillingRecord is one entry of the billing history.
type BillingRecord struct {
	ID          string        `json:"id"                 yaml:"id"`
	Type        BillingType   `json:"type"               yaml:"type"`
	Amount      Cents         `json:"amount"             yaml:"amount"`
	Currency    string        `json:"currency"           yaml:"currency"`
	Description string        `json:"description"        yaml:"description"`
	OrderID     *string       `json:"order_id,omitempty" yaml:"order_id,omitempty"`
	Date        time.Time     `json:"date"               yaml:"date"`
	Status      BillingStatus `json:"status"             yaml:"status"`
}

// APIUsageStats summarizes API calls over a period.
type APIUsageStats struct {
	TotalCalls      int            `json:"total_calls"                 yaml:"total_calls"`
	SuccessfulCalls int            `json:"successful_calls"            yaml:"successful_calls"`
	FailedCalls     int            `json:"failed_calls"                yaml:"failed_calls"`
	CallsByEndpoint map[string]int `json:"calls_by_endpoint,omitempty" yaml:"calls_by_endpoint,omitempty"`
	PeriodStart     time.Time      `json:"period_start"                yaml:"period_start"`
	PeriodEnd       time.Time      `json:"period_end"                  yaml:"period_end"`
}
