package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

const (
	notAvailable      = "N/A"
	defaultYAMLIndent = 2
)

// render writes data as json or yaml, or calls table for the table format.
func render[T any](out io.Writer, data T, table func(out io.Writer, data T) error) error {
	switch format := viper.GetString(keyOutput); format {
	case constants.FormatJSON:
		return renderJSON(out, data)
	case constants.FormatYAML:
		return renderYAML(out, data)
	case constants.FormatTable, "":
		return table(out, data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

func renderJSON[T any](out io.Writer, data T) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

func renderYAML[T any](out io.Writer, data T) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderRows prints a header and rows, or empty when there are no rows.
func renderRows(out io.Writer, empty string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = io.WriteString(out, empty+"\n")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties prints a two-column property/value table.
func renderProperties(out io.Writer, pairs [][2]string) error {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair[0], pair[1]})
	}

	return renderRows(out, "", []string{"Property", "Value"}, rows)
}

func renderPageFooter[T any](out io.Writer, page *lulu.PagedResponse[T]) {
	_, _ = fmt.Fprintf(out, "\nPage %d, %d of %d total\n", page.Page, len(page.Items), page.Total)
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for index, value := range values {
		result[index] = value
	}

	return result
}

func money(amount lulu.Cents, currency string) string {
	if currency == "" {
		return amount.String()
	}

	return amount.String() + " " + currency
}

func optional(value *string) string {
	if value == nil || *value == "" {
		return notAvailable
	}

	return *value
}

func optionalTime(value *time.Time) string {
	if value == nil {
		return notAvailable
	}

	return value.Format(time.RFC3339)
}

func date(value time.Time) string {
	if value.IsZero() {
		return notAvailable
	}

	return value.Format(constants.DateFormat)
}

func text(value interface{ MarshalText() ([]byte, error) }) string {
	raw, err := value.MarshalText()
	if err != nil || len(raw) == 0 {
		return notAvailable
	}

	return string(raw)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func joinOr(values []string) string {
	if len(values) == 0 {
		return notAvailable
	}

	return strings.Join(values, ", ")
}
