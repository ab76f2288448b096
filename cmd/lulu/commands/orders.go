package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage print orders",
		Long:    "Place, estimate, track and cancel Lulu print orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersCreateCommand())
	cmd.AddCommand(newOrdersEstimateCommand())
	cmd.AddCommand(newOrdersCancelCommand())
	cmd.AddCommand(newOrdersTrackingCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		status string
		page   int
		size   int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List print orders, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseStatusFlag(status, lulu.ParseOrderStatus)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				if all {
					orders, err := client.Orders().ListAll(ctx, filter)
					if err != nil {
						return fmt.Errorf("failed to list orders: %w", err)
					}

					return render(cmd.OutOrStdout(), orders, renderOrderTable)
				}

				opts := lulu.NewOrderListOptions()
				opts.Page, opts.Size = page, size
				opts.Status = filter

				orders, err := client.Orders().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list orders: %w", err)
				}

				return render(cmd.OutOrStdout(), orders, func(out io.Writer, data *lulu.PagedResponse[lulu.Order]) error {
					err := renderOrderTable(out, data.Items)
					if err == nil && len(data.Items) > 0 {
						renderPageFooter(out, data)
					}

					return err
				})
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	addPagingFlags(cmd, &page, &size)

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display detailed information about a print order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				order, err := client.Orders().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get order: %w", err)
				}

				return render(cmd.OutOrStdout(), order, renderOrderDetails)
			})
		},
	}
}

func newOrdersCreateCommand() *cobra.Command {
	var (
		file string
		test bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order",
		Long:  "Place a print order described by a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readOrderRequest(file)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("test") {
				request.TestOrder = test
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				order, err := client.Orders().Create(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to create order: %w", err)
				}

				return render(cmd.OutOrStdout(), order, renderOrderDetails)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "order request file (YAML or JSON)")
	cmd.Flags().BoolVar(&test, "test", false, "place a test order that is never charged")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newOrdersEstimateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate an order",
		Long:  "Quote the cost and timing of an order described by a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readOrderRequest(file)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				estimate, err := client.Orders().Estimate(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to estimate order: %w", err)
				}

				return render(cmd.OutOrStdout(), estimate, renderEstimate)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "order request file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newOrdersCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel an order",
		Long:  "Cancel a print order that has not entered production",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				order, err := client.Orders().Cancel(ctx, args[0], reason)
				if err != nil {
					return fmt.Errorf("failed to cancel order: %w", err)
				}

				return render(cmd.OutOrStdout(), order, func(out io.Writer, data *lulu.Order) error {
					_, _ = fmt.Fprintf(out, "Order %s is %s\n", data.ID, text(data.Status))

					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")

	return cmd
}

func newOrdersTrackingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tracking ORDER_ID",
		Short: "Show order tracking",
		Long:  "Display the carrier tracking of a shipped order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				tracking, err := client.Orders().Tracking(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get tracking: %w", err)
				}

				return render(cmd.OutOrStdout(), tracking, renderTracking)
			})
		},
	}
}

// readOrderRequest loads an order request. YAML is a superset of JSON, so one decoder serves both.
func readOrderRequest(path string) (*lulu.CreateOrderRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: --file", constants.ErrMissingArgument)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var request lulu.CreateOrderRequest

	err = yaml.Unmarshal(data, &request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order file: %w", err)
	}

	return &request, nil
}

func renderOrderTable(out io.Writer, orders []lulu.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			order.ID,
			optional(order.Reference),
			text(order.Status),
			itoa(len(order.Items)),
			money(order.Total, order.Currency),
			date(order.CreatedAt),
		})
	}

	return renderRows(out, "No orders found", []string{"ID", "Reference", "Status", "Items", "Total", "Created"}, rows)
}

func renderOrderDetails(out io.Writer, order *lulu.Order) error {
	pairs := [][2]string{
		{"ID", order.ID},
		{"Reference", optional(order.Reference)},
		{"Status", text(order.Status)},
		{"Total", money(order.Total, order.Currency)},
		{"Created", date(order.CreatedAt)},
		{"Updated", date(order.UpdatedAt)},
	}

	if order.Shipping != nil {
		pairs = append(pairs,
			[2]string{"Ship To", order.Shipping.Name},
			[2]string{"Destination", order.Shipping.City + ", " + order.Shipping.Country},
			[2]string{"Shipping Method", optional(order.Shipping.Method)},
		)
	}

	for index, item := range order.Items {
		pairs = append(pairs, [2]string{
			fmt.Sprintf("Item %d", index+1),
			fmt.Sprintf("%s x%d @ %s (%s)", item.ProductID, item.Quantity, item.UnitPrice, text(item.Status)),
		})
	}

	return renderProperties(out, pairs)
}

func renderEstimate(out io.Writer, estimate *lulu.OrderEstimate) error {
	pairs := [][2]string{
		{"Total", money(estimate.Total, estimate.Currency)},
		{"Production Days", itoa(estimate.ProductionDays)},
		{"Shipping Days", itoa(estimate.ShippingDays)},
	}

	if breakdown := estimate.Breakdown; breakdown != nil {
		pairs = append(pairs,
			[2]string{"Subtotal", money(breakdown.Subtotal, estimate.Currency)},
			[2]string{"Shipping", money(breakdown.Shipping, estimate.Currency)},
			[2]string{"Tax", money(breakdown.Tax, estimate.Currency)},
			[2]string{"Discount", money(breakdown.Discount, estimate.Currency)},
		)
	}

	return renderProperties(out, pairs)
}

func renderTracking(out io.Writer, tracking *lulu.OrderTracking) error {
	if tracking.TrackingNumber == nil && tracking.Carrier == nil {
		_, _ = io.WriteString(out, "No tracking available yet\n")

		return nil
	}

	return renderProperties(out, [][2]string{
		{"Carrier", optional(tracking.Carrier)},
		{"Tracking Number", optional(tracking.TrackingNumber)},
		{"Tracking URL", optional(tracking.TrackingURL)},
		{"Estimated Delivery", optionalTime(tracking.EstimatedDelivery)},
		{"Delivered", optionalTime(tracking.DeliveredAt)},
	})
}
