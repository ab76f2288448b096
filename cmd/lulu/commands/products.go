package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "catalog"},
		Short:   "Browse the product catalog",
		Long:    "List, search and price printable Lulu products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCategoriesCommand())
	cmd.AddCommand(newProductsPricingCommand())
	cmd.AddCommand(newProductsSizesCommand())
	cmd.AddCommand(newProductsSearchCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		category    string
		productType string
		available   bool
		page        int
		size        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List catalog products, optionally filtered by category, type or availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := lulu.NewProductListOptions()
			opts.Page, opts.Size = page, size

			if category != "" {
				opts.Category = lulu.Ptr(category)
			}

			filter, err := parseStatusFlag(productType, lulu.ParseProductType)
			if err != nil {
				return err
			}

			opts.Type = filter

			if cmd.Flags().Changed("available") {
				opts.Available = lulu.Ptr(available)
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				products, err := client.Products().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}

				return render(cmd.OutOrStdout(), products, renderProductPage)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&productType, "type", "", "filter by product type")
	cmd.Flags().BoolVar(&available, "available", true, "filter by availability")
	addPagingFlags(cmd, &page, &size)

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				product, err := client.Products().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get product: %w", err)
				}

				return render(cmd.OutOrStdout(), product, renderProductDetails)
			})
		},
	}
}

func newProductsCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Long:  "List every category in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				categories, err := client.Products().Categories(ctx)
				if err != nil {
					return fmt.Errorf("failed to list categories: %w", err)
				}

				return render(cmd.OutOrStdout(), categories, func(out io.Writer, data []string) error {
					rows := make([][]string, 0, len(data))
					for _, category := range data {
						rows = append(rows, []string{category})
					}

					return renderRows(out, "No categories found", []string{"Category"}, rows)
				})
			})
		},
	}
}

func newProductsPricingCommand() *cobra.Command {
	opts := lulu.PricingOptions{}

	cmd := &cobra.Command{
		Use:   "pricing PRODUCT_ID",
		Short: "Quote a product configuration",
		Long:  "Get the price of a product for a size, page count and quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				pricing, err := client.Products().Pricing(ctx, args[0], &opts)
				if err != nil {
					return fmt.Errorf("failed to get pricing: %w", err)
				}

				return render(cmd.OutOrStdout(), pricing, renderPricing)
			})
		},
	}

	cmd.Flags().StringVar(&opts.SizeID, "size-id", "", "trim size id")
	cmd.Flags().IntVar(&opts.PageCount, "pages", 0, "interior page count")
	cmd.Flags().IntVar(&opts.Quantity, "quantity", 1, "number of copies")
	cmd.Flags().StringVar(&opts.PaperType, "paper", "", "paper type")
	cmd.Flags().StringVar(&opts.BindingType, "binding", "", "binding type")
	_ = cmd.MarkFlagRequired("size-id")
	_ = cmd.MarkFlagRequired("pages")

	return cmd
}

func newProductsSizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes PRODUCT_ID",
		Short: "List product sizes",
		Long:  "List the trim sizes offered for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				sizes, err := client.Products().Sizes(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to list sizes: %w", err)
				}

				return render(cmd.OutOrStdout(), sizes, renderSizes)
			})
		},
	}
}

func newProductsSearchCommand() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search products",
		Long:  "Search the catalog by free text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				products, err := client.Products().Search(ctx, args[0], &lulu.ListOptions{Page: page, Size: size})
				if err != nil {
					return fmt.Errorf("failed to search products: %w", err)
				}

				return render(cmd.OutOrStdout(), products, renderProductPage)
			})
		},
	}

	addPagingFlags(cmd, &page, &size)

	return cmd
}

func renderProductPage(out io.Writer, page *lulu.PagedResponse[lulu.Product]) error {
	rows := make([][]string, 0, len(page.Items))
	for _, product := range page.Items {
		rows = append(rows, []string{product.ID, product.Name, product.Category, text(product.Type), yesNo(product.Available)})
	}

	err := renderRows(out, "No products found", []string{"ID", "Name", "Category", "Type", "Available"}, rows)
	if err == nil && len(rows) > 0 {
		renderPageFooter(out, page)
	}

	return err
}

func renderProductDetails(out io.Writer, product *lulu.Product) error {
	pairs := [][2]string{
		{"ID", product.ID},
		{"Name", product.Name},
		{"Description", optional(product.Description)},
		{"Category", product.Category},
		{"Type", text(product.Type)},
		{"Pages", fmt.Sprintf("%d-%d", product.MinPages, product.MaxPages)},
		{"Paper Types", joinOr(product.PaperTypes)},
		{"Binding Types", joinOr(product.BindingTypes)},
		{"Available", yesNo(product.Available)},
	}

	if product.Pricing != nil {
		pairs = append(pairs,
			[2]string{"Base Price", money(product.Pricing.BasePrice, product.Pricing.Currency)},
			[2]string{"Price Per Page", money(product.Pricing.PricePerPage, product.Pricing.Currency)},
		)
	}

	return renderProperties(out, pairs)
}

func renderPricing(out io.Writer, pricing *lulu.ProductPricing) error {
	pairs := [][2]string{
		{"Base Price", money(pricing.BasePrice, pricing.Currency)},
		{"Price Per Page", money(pricing.PricePerPage, pricing.Currency)},
	}

	for _, discount := range pricing.QuantityDiscounts {
		pairs = append(pairs, [2]string{
			"Discount from " + strconv.Itoa(discount.MinQuantity),
			strconv.FormatFloat(discount.DiscountPercentage, 'f', -1, 64) + "%",
		})
	}

	return renderProperties(out, pairs)
}

func renderSizes(out io.Writer, sizes []lulu.ProductSize) error {
	rows := make([][]string, 0, len(sizes))
	for _, size := range sizes {
		rows = append(rows, []string{
			size.ID,
			size.Name,
			fmt.Sprintf("%g x %g in", size.WidthInches, size.HeightInches),
			fmt.Sprintf("%g x %g mm", size.WidthMM, size.HeightMM),
		})
	}

	return renderRows(out, "No sizes found", []string{"ID", "Name", "Inches", "Millimetres"}, rows)
}
