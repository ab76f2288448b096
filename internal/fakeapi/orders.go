package fakeapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const defaultShippingMethod = "MAIL"

func orderCreated(o *lulu.Order) (time.Time, string) { return o.CreatedAt, o.ID }

func printJobCreated(j *lulu.PrintJob) (time.Time, string) { return j.CreatedAt, j.ID }

// quote is a priced, validated order request.
type quote struct {
	items    []lulu.OrderItem
	subtotal lulu.Cents
	shipping lulu.Cents
	method   lulu.ShippingMethod
	days     int
}

func (q quote) total() lulu.Cents {
	return q.subtotal + q.shipping
}

// priceOrder validates request against the catalog. The caller holds mu.
func (s *Server) priceOrder(request *lulu.CreateOrderRequest) (quote, string, string) {
	if len(request.Items) == 0 {
		return quote{}, "items", "items must contain at least 1 item(s)"
	}

	if strings.TrimSpace(request.Shipping.Name) == "" || strings.TrimSpace(request.Shipping.AddressLine1) == "" {
		return quote{}, "shipping", "shipping name and address_line_1 are required"
	}

	methodID := defaultShippingMethod
	if request.Shipping.Method != nil && *request.Shipping.Method != "" {
		methodID = strings.ToUpper(*request.Shipping.Method)
	}

	method, ok := s.findMethod(methodID)
	if !ok {
		return quote{}, "shipping.method", "unknown shipping method " + methodID
	}

	result := quote{method: method, shipping: method.BaseCost, days: 3}

	for index, item := range request.Items {
		product, ok := s.findProduct(item.ProductID)
		if !ok || !product.Available {
			return quote{}, fmt.Sprintf("items[%d].product_id", index), "product " + item.ProductID + " is not available"
		}

		if item.Quantity <= 0 {
			return quote{}, fmt.Sprintf("items[%d].quantity", index), "quantity must be greater than 0"
		}

		if !hasSize(product, item.Configuration.SizeID) {
			return quote{}, fmt.Sprintf("items[%d].configuration.size_id", index), "size is not offered for " + product.ID
		}

		pageCount := item.Configuration.PageCount
		if pageCount < product.MinPages || pageCount > product.MaxPages {
			return quote{}, fmt.Sprintf("items[%d].configuration.page_count", index), "page_count is outside the supported range"
		}

		unit := unitPrice(product, pageCount, item.Quantity)
		configuration := item.Configuration
		line := lulu.OrderItem{
			ID:            newID("item"),
			ProductID:     item.ProductID,
			ProjectID:     item.ProjectID,
			Quantity:      item.Quantity,
			UnitPrice:     unit,
			TotalPrice:    unit * lulu.Cents(item.Quantity),
			Configuration: &configuration,
			Status:        lulu.OrderItemStatusProcessing,
		}

		result.items = append(result.items, line)
		result.subtotal += line.TotalPrice
	}

	return result, "", ""
}

func (s *Server) listOrders(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	status, err := lulu.ParseOrderStatus(request.URL.Query().Get("status"))
	if err != nil {
		s.invalid(writer, "status", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := sortedValues(s.orders, orderCreated)

	filtered := all[:0]

	for _, order := range all {
		if status == "" || order.Status == status {
			filtered = append(filtered, order)
		}
	}

	s.writeJSON(writer, http.StatusOK, paginate(filtered, page, size))
}

func (s *Server) createOrder(writer http.ResponseWriter, request *http.Request) {
	var body lulu.CreateOrderRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	priced, field, message := s.priceOrder(&body)
	if field != "" {
		s.invalid(writer, field, message)

		return
	}

	now := s.now().UTC()
	shipping := body.Shipping
	shipping.Method = lulu.Ptr(priced.method.ID)

	order := &lulu.Order{
		ID:        newID("ord"),
		Reference: body.Reference,
		Status:    lulu.OrderStatusProcessing,
		Items:     priced.items,
		Shipping:  &shipping,
		Billing:   body.Billing,
		Total:     priced.total(),
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders[order.ID] = order

	for _, item := range order.Items {
		completion := now.Add(time.Duration(priced.days) * 24 * time.Hour)
		job := &lulu.PrintJob{
			ID:                  newID("job"),
			OrderID:             order.ID,
			Status:              lulu.PrintJobStatusQueued,
			ProductID:           item.ProductID,
			Quantity:            item.Quantity,
			CreatedAt:           now,
			EstimatedCompletion: &completion,
		}
		s.printJobs[job.ID] = job
	}

	if !body.TestOrder {
		s.charge(lulu.BillingTypeCharge, order, -order.Total, "Order "+order.ID)
	}

	s.writeJSON(writer, http.StatusCreated, order)
}

func (s *Server) estimateOrder(writer http.ResponseWriter, request *http.Request) {
	var body lulu.CreateOrderRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	priced, field, message := s.priceOrder(&body)
	if field != "" {
		s.invalid(writer, field, message)

		return
	}

	s.writeJSON(writer, http.StatusOK, lulu.OrderEstimate{
		Total:    priced.total(),
		Currency: "USD",
		Breakdown: &lulu.OrderCostBreakdown{
			Subtotal: priced.subtotal,
			Shipping: priced.shipping,
		},
		ProductionDays: priced.days,
		ShippingDays:   priced.method.DeliveryDays,
	})
}

func (s *Server) getOrder(writer http.ResponseWriter, request *http.Request) {
	orderID := chi.URLParam(request, "orderID")

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		s.notFound(writer, "order", orderID)

		return
	}

	s.writeJSON(writer, http.StatusOK, order)
}

func (s *Server) cancelOrder(writer http.ResponseWriter, request *http.Request) {
	orderID := chi.URLParam(request, "orderID")

	var body lulu.CancelOrderRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		s.notFound(writer, "order", orderID)

		return
	}

	if order.Status != lulu.OrderStatusProcessing && order.Status != lulu.OrderStatusConfirmed {
		s.writeError(writer, http.StatusConflict, "conflict", fmt.Sprintf("order %s is %s and can no longer be cancelled", order.ID, order.Status), "")

		return
	}

	order.Status = lulu.OrderStatusCancelled
	order.UpdatedAt = s.now().UTC()

	for index := range order.Items {
		order.Items[index].Status = lulu.OrderItemStatusCancelled
	}

	for _, job := range s.printJobs {
		if job.OrderID == order.ID {
			job.Status = lulu.PrintJobStatusCancelled
		}
	}

	if s.hasCharge(order.ID) {
		description := "Refund " + order.ID
		if body.Reason != "" {
			description += ": " + body.Reason
		}

		s.charge(lulu.BillingTypeRefund, order, order.Total, description)
	}

	s.writeJSON(writer, http.StatusOK, order)
}

func (s *Server) orderTracking(writer http.ResponseWriter, request *http.Request) {
	orderID := chi.URLParam(request, "orderID")

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		s.notFound(writer, "order", orderID)

		return
	}

	tracking := order.Tracking
	if tracking == nil {
		tracking = &lulu.OrderTracking{}
	}

	s.writeJSON(writer, http.StatusOK, tracking)
}

func (s *Server) listPrintJobs(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	status, err := lulu.ParsePrintJobStatus(request.URL.Query().Get("status"))
	if err != nil {
		s.invalid(writer, "status", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := sortedValues(s.printJobs, printJobCreated)

	filtered := all[:0]

	for _, job := range all {
		if status == "" || job.Status == status {
			filtered = append(filtered, job)
		}
	}

	s.writeJSON(writer, http.StatusOK, paginate(filtered, page, size))
}

func (s *Server) getPrintJob(writer http.ResponseWriter, request *http.Request) {
	jobID := chi.URLParam(request, "jobID")

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.printJobs[jobID]
	if !ok {
		s.notFound(writer, "print job", jobID)

		return
	}

	s.writeJSON(writer, http.StatusOK, job)
}
