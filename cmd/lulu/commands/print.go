package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewPrintCommand creates the print command group.
func NewPrintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Inspect print production",
		Long:  "Follow print jobs, check interior files and list production facilities",
	}

	cmd.AddCommand(newPrintJobsCommand())
	cmd.AddCommand(newPrintJobCommand())
	cmd.AddCommand(newPrintValidatePDFCommand())
	cmd.AddCommand(newPrintFacilitiesCommand())

	return cmd
}

func newPrintJobsCommand() *cobra.Command {
	var (
		status string
		page   int
		size   int
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List print jobs",
		Long:  "List print jobs, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseStatusFlag(status, lulu.ParsePrintJobStatus)
			if err != nil {
				return err
			}

			opts := lulu.NewPrintJobListOptions()
			opts.Page, opts.Size = page, size
			opts.Status = filter

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				jobs, err := client.Print().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list print jobs: %w", err)
				}

				return render(cmd.OutOrStdout(), jobs, renderPrintJobs)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	addPagingFlags(cmd, &page, &size)

	return cmd
}

func newPrintJobCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "job JOB_ID",
		Short: "Get print job details",
		Long:  "Display a print job and its quality check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				job, err := client.Print().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get print job: %w", err)
				}

				return render(cmd.OutOrStdout(), job, renderPrintJobDetails)
			})
		},
	}
}

func newPrintValidatePDFCommand() *cobra.Command {
	var productID, level string

	cmd := &cobra.Command{
		Use:   "validate-pdf FILE",
		Short: "Validate an interior PDF",
		Long:  "Upload an interior PDF and report print-readiness issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validationLevel, err := lulu.ParseValidationLevel(level)
			if err != nil {
				return fmt.Errorf("%w: %w", constants.ErrInvalidLevel, err)
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read PDF: %w", err)
			}

			request := &lulu.PDFValidationRequest{
				ProductID:       productID,
				PDFContent:      base64.StdEncoding.EncodeToString(content),
				Filename:        filepath.Base(args[0]),
				ValidationLevel: validationLevel,
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				result, err := client.Print().ValidatePDF(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to validate PDF: %w", err)
				}

				return render(cmd.OutOrStdout(), result, renderPDFValidation)
			})
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product the file is printed as")
	cmd.Flags().StringVar(&level, "level", string(lulu.ValidationLevelStandard), "basic, standard or comprehensive")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newPrintFacilitiesCommand() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "facilities",
		Short: "List print facilities",
		Long:  "List production facilities, optionally in one country",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				facilities, err := client.Print().Facilities(ctx, country)
				if err != nil {
					return fmt.Errorf("failed to list facilities: %w", err)
				}

				return render(cmd.OutOrStdout(), facilities, renderFacilities)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "filter by country code")

	return cmd
}

func renderPrintJobs(out io.Writer, page *lulu.PagedResponse[lulu.PrintJob]) error {
	rows := make([][]string, 0, len(page.Items))
	for _, job := range page.Items {
		rows = append(rows, []string{
			job.ID,
			job.OrderID,
			job.ProductID,
			itoa(job.Quantity),
			text(job.Status),
			optional(job.FacilityID),
			date(job.CreatedAt),
		})
	}

	err := renderRows(out, "No print jobs found",
		[]string{"ID", "Order", "Product", "Qty", "Status", "Facility", "Created"}, rows)
	if err == nil && len(rows) > 0 {
		renderPageFooter(out, page)
	}

	return err
}

func renderPrintJobDetails(out io.Writer, job *lulu.PrintJob) error {
	pairs := [][2]string{
		{"ID", job.ID},
		{"Order", job.OrderID},
		{"Product", job.ProductID},
		{"Quantity", itoa(job.Quantity)},
		{"Status", text(job.Status)},
		{"Facility", optional(job.FacilityID)},
		{"Created", date(job.CreatedAt)},
		{"Started", optionalTime(job.StartedAt)},
		{"Completed", optionalTime(job.CompletedAt)},
		{"Estimated Completion", optionalTime(job.EstimatedCompletion)},
	}

	if check := job.QualityCheck; check != nil {
		pairs = append(pairs,
			[2]string{"Quality Check", fmt.Sprintf("%s (score %d)", yesNo(check.Passed), check.Score)},
		)

		for _, issue := range check.Issues {
			pairs = append(pairs, [2]string{"Issue", text(issue.Severity) + ": " + issue.Description})
		}
	}

	return renderProperties(out, pairs)
}

func renderPDFValidation(out io.Writer, result *lulu.PDFValidationResult) error {
	pairs := [][2]string{
		{"Valid", yesNo(result.Valid)},
		{"Score", itoa(result.Score)},
	}

	if metadata := result.Metadata; metadata != nil {
		pairs = append(pairs,
			[2]string{"Pages", itoa(metadata.PageCount)},
			[2]string{"File Size", fmt.Sprintf("%d bytes", metadata.FileSize)},
			[2]string{"PDF Version", optional(metadata.PDFVersion)},
			[2]string{"Fonts Embedded", yesNo(metadata.EmbeddedFonts)},
		)
	}

	for _, issue := range result.Issues {
		pairs = append(pairs, [2]string{text(issue.Severity), issue.Message})
	}

	return renderProperties(out, pairs)
}

func renderFacilities(out io.Writer, facilities []lulu.PrintFacility) error {
	rows := make([][]string, 0, len(facilities))
	for _, facility := range facilities {
		rows = append(rows, []string{
			facility.ID,
			facility.Name,
			facility.City,
			facility.Country,
			itoa(facility.AvgProductionDays),
			yesNo(facility.Active),
		})
	}

	return renderRows(out, "No facilities found",
		[]string{"ID", "Name", "City", "Country", "Avg Days", "Active"}, rows)
}
