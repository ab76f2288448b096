package commands

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the Lulu account",
		Long:  "Show account details, balance, billing history and API usage",
	}

	cmd.AddCommand(newAccountGetCommand())
	cmd.AddCommand(newAccountBalanceCommand())
	cmd.AddCommand(newAccountBillingCommand())
	cmd.AddCommand(newAccountUsageCommand())

	return cmd
}

func newAccountGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show account details",
		Long:  "Display the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				account, err := client.Account().Get(ctx)
				if err != nil {
					return fmt.Errorf("failed to get account: %w", err)
				}

				return render(cmd.OutOrStdout(), account, func(out io.Writer, data *lulu.Account) error {
					return renderProperties(out, [][2]string{
						{"ID", data.ID},
						{"Name", data.Name},
						{"Email", data.Email},
						{"Company", optional(data.Company)},
						{"Type", text(data.Type)},
						{"Status", text(data.Status)},
						{"Created", date(data.CreatedAt)},
					})
				})
			})
		},
	}
}

func newAccountBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show account balance",
		Long:  "Display the balance, credit and credit limit of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				balance, err := client.Account().Balance(ctx)
				if err != nil {
					return fmt.Errorf("failed to get balance: %w", err)
				}

				return render(cmd.OutOrStdout(), balance, func(out io.Writer, data *lulu.AccountBalance) error {
					return renderProperties(out, [][2]string{
						{"Balance", money(data.Balance, data.Currency)},
						{"Credit", money(data.Credit, data.Currency)},
						{"Credit Limit", money(data.CreditLimit, data.Currency)},
						{"Updated", date(data.UpdatedAt)},
					})
				})
			})
		},
	}
}

func newAccountBillingCommand() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Show billing history",
		Long:  "List charges, refunds and credits on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				records, err := client.Account().Billing(ctx, &lulu.ListOptions{Page: page, Size: size})
				if err != nil {
					return fmt.Errorf("failed to get billing history: %w", err)
				}

				return render(cmd.OutOrStdout(), records, renderBilling)
			})
		},
	}

	addPagingFlags(cmd, &page, &size)

	return cmd
}

func newAccountUsageCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show API usage",
		Long:  "Summarize API calls, optionally within a date range (YYYY-MM-DD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(from)
			if err != nil {
				return err
			}

			end, err := parseDate(to)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				stats, err := client.Account().Usage(ctx, &lulu.UsageOptions{StartDate: start, EndDate: end})
				if err != nil {
					return fmt.Errorf("failed to get usage: %w", err)
				}

				return render(cmd.OutOrStdout(), stats, renderUsage)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "period end (YYYY-MM-DD)")

	return cmd
}

func renderBilling(out io.Writer, page *lulu.PagedResponse[lulu.BillingRecord]) error {
	rows := make([][]string, 0, len(page.Items))
	for _, record := range page.Items {
		rows = append(rows, []string{
			record.ID,
			text(record.Type),
			money(record.Amount, record.Currency),
			record.Description,
			optional(record.OrderID),
			text(record.Status),
			date(record.Date),
		})
	}

	err := renderRows(out, "No billing records found",
		[]string{"ID", "Type", "Amount", "Description", "Order", "Status", "Date"}, rows)
	if err == nil && len(rows) > 0 {
		renderPageFooter(out, page)
	}

	return err
}

func renderUsage(out io.Writer, stats *lulu.APIUsageStats) error {
	pairs := [][2]string{
		{"Period", date(stats.PeriodStart) + " to " + date(stats.PeriodEnd)},
		{"Total Calls", itoa(stats.TotalCalls)},
		{"Successful", itoa(stats.SuccessfulCalls)},
		{"Failed", itoa(stats.FailedCalls)},
	}

	endpoints := make([]string, 0, len(stats.CallsByEndpoint))
	for endpoint := range stats.CallsByEndpoint {
		endpoints = append(endpoints, endpoint)
	}

	sort.Strings(endpoints)

	for _, endpoint := range endpoints {
		pairs = append(pairs, [2]string{endpoint, itoa(stats.CallsByEndpoint[endpoint])})
	}

	return renderProperties(out, pairs)
}
