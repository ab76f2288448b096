package fakeapi

import (
	"net/http"
	"time"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// charge appends a completed billing record and moves the balance by amount.
// The caller holds mu.
func (s *Server) charge(kind lulu.BillingType, order *lulu.Order, amount lulu.Cents, description string) {
	now := s.now().UTC()

	s.billing = append(s.billing, lulu.BillingRecord{
		ID:          newID("bill"),
		Type:        kind,
		Amount:      amount,
		Currency:    order.Currency,
		Description: description,
		OrderID:     lulu.Ptr(order.ID),
		Date:        now,
		Status:      lulu.BillingStatusCompleted,
	})

	s.balance.Balance += amount
	s.balance.UpdatedAt = now
}

func (s *Server) hasCharge(orderID string) bool {
	for _, record := range s.billing {
		if record.Type == lulu.BillingTypeCharge && record.OrderID != nil && *record.OrderID == orderID {
			return true
		}
	}

	return false
}

func (s *Server) getAccount(writer http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(writer, http.StatusOK, s.account)
}

func (s *Server) updateAccount(writer http.ResponseWriter, request *http.Request) {
	var body lulu.UpdateAccountRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if body.Name != nil {
		s.account.Name = *body.Name
	}

	if body.Email != nil {
		s.account.Email = *body.Email
	}

	if body.Company != nil {
		s.account.Company = body.Company
	}

	if body.Preferences != nil {
		s.account.Preferences = body.Preferences
	}

	s.account.UpdatedAt = s.now().UTC()

	s.writeJSON(writer, http.StatusOK, s.account)
}

func (s *Server) getBalance(writer http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(writer, http.StatusOK, s.balance)
}

func (s *Server) listBilling(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(writer, http.StatusOK, paginate(s.billing, page, size))
}

// getUsage reports the calls this fake has served. Date bounds are checked
// for format and echoed back as the period.
func (s *Server) getUsage(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	start, ok := s.parseDate(writer, "start_date", values.Get("start_date"))
	if !ok {
		return
	}

	end, ok := s.parseDate(writer, "end_date", values.Get("end_date"))
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := lulu.APIUsageStats{
		TotalCalls:      s.usage.total,
		SuccessfulCalls: s.usage.total - s.usage.failed,
		FailedCalls:     s.usage.failed,
		CallsByEndpoint: make(map[string]int, len(s.usage.byEndpoint)),
		PeriodStart:     s.usage.since,
		PeriodEnd:       s.now().UTC(),
	}

	for endpoint, count := range s.usage.byEndpoint {
		stats.CallsByEndpoint[endpoint] = count
	}

	if start != nil {
		stats.PeriodStart = *start
	}

	if end != nil {
		stats.PeriodEnd = *end
	}

	s.writeJSON(writer, http.StatusOK, stats)
}

func (s *Server) parseDate(writer http.ResponseWriter, field, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}

	parsed, err := time.Parse(constants.DateFormat, raw)
	if err != nil {
		s.invalid(writer, field, field+" must be YYYY-MM-DD")

		return nil, false
	}

	return &parsed, true
}
