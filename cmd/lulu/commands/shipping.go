package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewShippingCommand creates the shipping command group.
func NewShippingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipping",
		Short: "Quote shipping and check addresses",
		Long:  "List shipping methods for a destination and validate postal addresses",
	}

	cmd.AddCommand(newShippingOptionsCommand())
	cmd.AddCommand(newShippingValidateAddressCommand())

	return cmd
}

func newShippingOptionsCommand() *cobra.Command {
	var (
		country    string
		state      string
		postalCode string
		products   []string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List shipping methods",
		Long:  "List the shipping methods that serve a destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &lulu.ShippingOptionsRequest{
				Country:    strings.ToUpper(country),
				ProductIDs: products,
			}

			if state != "" {
				request.State = lulu.Ptr(state)
			}

			if postalCode != "" {
				request.PostalCode = lulu.Ptr(postalCode)
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				methods, err := client.Shipping().Options(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to list shipping options: %w", err)
				}

				return render(cmd.OutOrStdout(), methods, renderShippingMethods)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "destination country code")
	cmd.Flags().StringVar(&state, "state", "", "destination state or region")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "destination postal code")
	cmd.Flags().StringSliceVar(&products, "product", nil, "product id, repeatable")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newShippingValidateAddressCommand() *cobra.Command {
	var (
		address lulu.ShippingAddress
		line2   string
	)

	cmd := &cobra.Command{
		Use:   "validate-address",
		Short: "Validate a postal address",
		Long:  "Check whether an address is deliverable and show the normalized form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if line2 != "" {
				address.AddressLine2 = lulu.Ptr(line2)
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				result, err := client.Shipping().ValidateAddress(ctx, &lulu.AddressValidationRequest{Address: address})
				if err != nil {
					return fmt.Errorf("failed to validate address: %w", err)
				}

				return render(cmd.OutOrStdout(), result, renderAddressValidation)
			})
		},
	}

	cmd.Flags().StringVar(&address.AddressLine1, "line1", "", "first address line")
	cmd.Flags().StringVar(&line2, "line2", "", "second address line")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.State, "state", "", "state or region")
	cmd.Flags().StringVar(&address.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&address.Country, "country", "", "country code")

	return cmd
}

func renderShippingMethods(out io.Writer, methods []lulu.ShippingMethod) error {
	rows := make([][]string, 0, len(methods))
	for _, method := range methods {
		rows = append(rows, []string{
			method.ID,
			method.Name,
			method.Carrier,
			itoa(method.DeliveryDays),
			yesNo(method.TrackingAvailable),
			method.BaseCost.String(),
		})
	}

	return renderRows(out, "No shipping methods available",
		[]string{"ID", "Name", "Carrier", "Days", "Tracking", "Base Cost"}, rows)
}

func renderAddressValidation(out io.Writer, result *lulu.AddressValidationResult) error {
	pairs := [][2]string{{"Valid", yesNo(result.Valid)}}

	if result.Address != nil {
		pairs = append(pairs, [2]string{"Address", formatAddress(*result.Address)})
	}

	for _, message := range result.Messages {
		pairs = append(pairs, [2]string{"Message", message})
	}

	for _, suggestion := range result.Suggestions {
		pairs = append(pairs, [2]string{"Suggestion", formatAddress(suggestion)})
	}

	return renderProperties(out, pairs)
}

func formatAddress(address lulu.ShippingAddress) string {
	parts := []string{address.AddressLine1}
	if address.AddressLine2 != nil && *address.AddressLine2 != "" {
		parts = append(parts, *address.AddressLine2)
	}

	parts = append(parts, address.City, address.State+" "+address.PostalCode, address.Country)

	return strings.Join(parts, ", ")
}
