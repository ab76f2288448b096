// Package fakeapi is an in-memory stand-in for the Lulu print API. It serves
// the same routes and wire format so clients can be exercised end to end
// without network access.
package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

var errBadPaging = errors.New("page and size must be non-negative integers")

// Server holds the fake's state. All handlers serialize on mu.
type Server struct {
	apiKey string
	logger *logrus.Logger
	now    func() time.Time

	mu         sync.Mutex
	projects   map[string]*lulu.Project
	products   []lulu.Product
	orders     map[string]*lulu.Order
	printJobs  map[string]*lulu.PrintJob
	account    lulu.Account
	balance    lulu.AccountBalance
	billing    []lulu.BillingRecord
	facilities []lulu.PrintFacility
	methods    []lulu.ShippingMethod
	usage      usageCounter
}

type usageCounter struct {
	total      int
	failed     int
	byEndpoint map[string]int
	since      time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger routes request logs to logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock replaces time.Now for created and updated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New returns a seeded fake that accepts only apiKey as bearer credential.
func New(apiKey string, opts ...Option) *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := &Server{
		apiKey:    apiKey,
		logger:    logger,
		now:       time.Now,
		projects:  map[string]*lulu.Project{},
		orders:    map[string]*lulu.Order{},
		printJobs: map[string]*lulu.PrintJob{},
	}

	for _, opt := range opts {
		opt(server)
	}

	server.seed()

	return server
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(s.requestLogger)
	router.Use(s.authenticate)

	router.Route(constants.ProjectsPath, func(r chi.Router) {
		r.Get("/", s.listProjects)
		r.Post("/", s.createProject)
		r.Get("/{projectID}", s.getProject)
		r.Put("/{projectID}", s.updateProject)
		r.Delete("/{projectID}", s.deleteProject)
	})

	router.Route(constants.ProductsPath, func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Get("/categories", s.productCategories)
		r.Get("/search", s.searchProducts)
		r.Get("/{productID}", s.getProduct)
		r.Get("/{productID}/pricing", s.productPricing)
		r.Get("/{productID}/sizes", s.productSizes)
	})

	router.Route(constants.OrdersPath, func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Post("/", s.createOrder)
		r.Post("/estimate", s.estimateOrder)
		r.Get("/{orderID}", s.getOrder)
		r.Post("/{orderID}/cancel", s.cancelOrder)
		r.Get("/{orderID}/tracking", s.orderTracking)
	})

	router.Route(constants.ShippingPath, func(r chi.Router) {
		r.Post("/options", s.shippingOptions)
		r.Post("/calculate", s.shippingCost)
		r.Post("/delivery-estimates", s.deliveryEstimates)
		r.Post("/validate-address", s.validateAddress)
	})

	router.Route(constants.AccountPath, func(r chi.Router) {
		r.Get("/", s.getAccount)
		r.Put("/", s.updateAccount)
		r.Get("/balance", s.getBalance)
		r.Get("/billing", s.listBilling)
		r.Get("/usage", s.getUsage)
	})

	router.Route(constants.PrintPath, func(r chi.Router) {
		r.Get("/jobs", s.listPrintJobs)
		r.Get("/jobs/{jobID}", s.getPrintJob)
		r.Post("/validate-pdf", s.validatePDF)
		r.Get("/quality-requirements/{productID}", s.qualityRequirements)
		r.Get("/facilities", s.listFacilities)
		r.Post("/production-time", s.productionTime)
	})

	return router
}

// ShipOrder moves an order to shipped and attaches tracking, as the
// fulfilment side would.
func (s *Server) ShipOrder(orderID, carrier, trackingNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s not found", orderID)
	}

	now := s.now().UTC()
	delivery := now.Add(5 * 24 * time.Hour)

	order.Status = lulu.OrderStatusShipped
	order.UpdatedAt = now
	order.Tracking = &lulu.OrderTracking{
		TrackingNumber:    lulu.Ptr(trackingNumber),
		Carrier:           lulu.Ptr(carrier),
		TrackingURL:       lulu.Ptr("https://track.example.com/" + trackingNumber),
		EstimatedDelivery: &delivery,
	}

	for index := range order.Items {
		order.Items[index].Status = lulu.OrderItemStatusShipped
	}

	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := chimiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request)

		pattern := chi.RouteContext(request.Context()).RoutePattern()
		if pattern == "" {
			pattern = request.URL.Path
		}

		endpoint := request.Method + " " + pattern

		s.mu.Lock()
		s.usage.total++
		s.usage.byEndpoint[endpoint]++

		if wrapped.Status() >= http.StatusBadRequest {
			s.usage.failed++
		}
		s.mu.Unlock()

		s.logger.WithFields(logrus.Fields{
			"method":     request.Method,
			"path":       request.URL.Path,
			"status":     wrapped.Status(),
			"duration":   time.Since(start).String(),
			"request_id": request.Header.Get("X-Request-Id"),
		}).Debug("fake api request")
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer "+s.apiKey {
			s.writeError(writer, http.StatusUnauthorized, "unauthorized", "invalid API key", "")

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (s *Server) writeJSON(writer http.ResponseWriter, status int, data interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	err := json.NewEncoder(writer).Encode(data)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response")
	}
}

func (s *Server) writeError(writer http.ResponseWriter, status int, code, message, field string) {
	s.writeJSON(writer, status, lulu.Envelope[struct{}]{
		Errors: []lulu.APIError{{Code: code, Message: message, Field: field}},
	})
}

func (s *Server) notFound(writer http.ResponseWriter, kind, id string) {
	s.writeError(writer, http.StatusNotFound, "not_found", fmt.Sprintf("%s %s not found", kind, id), "")
}

func (s *Server) invalid(writer http.ResponseWriter, field, message string) {
	s.writeError(writer, http.StatusBadRequest, "invalid", message, field)
}

// decode reads a JSON body into target, answering 400 on failure.
func (s *Server) decode(writer http.ResponseWriter, request *http.Request, target interface{}) bool {
	err := json.NewDecoder(request.Body).Decode(target)
	if err != nil {
		s.invalid(writer, "", "malformed request body: "+err.Error())

		return false
	}

	return true
}

func (s *Server) paging(writer http.ResponseWriter, request *http.Request) (int, int, bool) {
	page, size := constants.DefaultPage, constants.DefaultPageSize

	values := request.URL.Query()

	if raw := values.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.invalid(writer, "page", errBadPaging.Error())

			return 0, 0, false
		}

		page = parsed
	}

	if raw := values.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.invalid(writer, "size", errBadPaging.Error())

			return 0, 0, false
		}

		size = parsed
	}

	return page, size, true
}

func paginate[T any](items []T, page, size int) lulu.PagedResponse[T] {
	response := lulu.PagedResponse[T]{Items: []T{}, Total: len(items), Page: page, Size: size}

	start := page * size
	if size == 0 || start >= len(items) {
		return response
	}

	end := min(start+size, len(items))
	response.Items = append(response.Items, items[start:end]...)

	return response
}

// sortedValues returns map values ordered by creation time, then id.
func sortedValues[T any](items map[string]*T, created func(*T) (time.Time, string)) []T {
	values := make([]*T, 0, len(items))
	for _, item := range items {
		values = append(values, item)
	}

	sort.Slice(values, func(i, j int) bool {
		ti, idi := created(values[i])
		tj, idj := created(values[j])

		if ti.Equal(tj) {
			return idi < idj
		}

		return ti.Before(tj)
	})

	result := make([]T, 0, len(values))
	for _, value := range values {
		result = append(result, *value)
	}

	return result
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
