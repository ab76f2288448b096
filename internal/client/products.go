package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/retznutz/lulu-client/internal/constants"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// ProductsClient implements lulu.ProductsClient.
type ProductsClient struct {
	httpClient *internalhttp.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *internalhttp.Client) *ProductsClient {
	return &ProductsClient{httpClient: httpClient}
}

// List implements lulu.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, opts *lulu.ProductListOptions) (*lulu.PagedResponse[lulu.Product], error) {
	var paging *lulu.ListOptions
	if opts != nil {
		paging = &opts.ListOptions
	}

	q := pageQuery(paging)

	if opts != nil {
		if opts.Category != nil && strings.TrimSpace(*opts.Category) != "" {
			q.add("category", *opts.Category)
		}

		if opts.Type != nil {
			q.addText("type", *opts.Type)
		}

		if opts.Available != nil {
			q.addBool("available", *opts.Available)
		}
	}

	products, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.Product]](ctx, c.httpClient, http.MethodGet, constants.ProductsPath+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return products, nil
}

// Get implements lulu.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, productID string) (*lulu.Product, error) {
	err := requireID("product id", productID)
	if err != nil {
		return nil, err
	}

	product, err := internalhttp.DoJSON[lulu.Product](ctx, c.httpClient, http.MethodGet, resourcePath(constants.ProductsPath, productID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return product, nil
}

// Categories implements lulu.ProductsClient.Categories.
func (c *ProductsClient) Categories(ctx context.Context) ([]string, error) {
	categories, err := internalhttp.DoJSON[[]string](ctx, c.httpClient, http.MethodGet, constants.ProductsPath+"/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("listing product categories: %w", err)
	}

	if categories == nil {
		return nil, nil
	}

	return *categories, nil
}

// Pricing implements lulu.ProductsClient.Pricing.
func (c *ProductsClient) Pricing(ctx context.Context, productID string, opts *lulu.PricingOptions) (*lulu.ProductPricing, error) {
	err := requireID("product id", productID)
	if err != nil {
		return nil, err
	}

	err = requireRequest("pricing options", opts)
	if err != nil {
		return nil, err
	}

	quantity := opts.Quantity
	if quantity == 0 {
		quantity = constants.DefaultQuantity
	}

	q := newQuery().
		add("size_id", opts.SizeID).
		addInt("page_count", opts.PageCount).
		addInt("quantity", quantity)

	if strings.TrimSpace(opts.PaperType) != "" {
		q.add("paper_type", opts.PaperType)
	}

	if strings.TrimSpace(opts.BindingType) != "" {
		q.add("binding_type", opts.BindingType)
	}

	path := resourcePath(constants.ProductsPath, productID, "pricing") + q.String()

	pricing, err := internalhttp.DoJSON[lulu.ProductPricing](ctx, c.httpClient, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting product pricing: %w", err)
	}

	return pricing, nil
}

// Sizes implements lulu.ProductsClient.Sizes.
func (c *ProductsClient) Sizes(ctx context.Context, productID string) ([]lulu.ProductSize, error) {
	err := requireID("product id", productID)
	if err != nil {
		return nil, err
	}

	sizes, err := internalhttp.DoJSON[[]lulu.ProductSize](ctx, c.httpClient, http.MethodGet, resourcePath(constants.ProductsPath, productID, "sizes"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing product sizes: %w", err)
	}

	if sizes == nil {
		return nil, nil
	}

	return *sizes, nil
}

// Search implements lulu.ProductsClient.Search.
func (c *ProductsClient) Search(ctx context.Context, query string, opts *lulu.ListOptions) (*lulu.PagedResponse[lulu.Product], error) {
	err := requireID("search query", query)
	if err != nil {
		return nil, err
	}

	page, size := constants.DefaultPage, constants.DefaultPageSize
	if opts != nil {
		page, size = opts.Page, opts.Size
	}

	q := newQuery().add("q", query).addInt("page", page).addInt("size", size)

	products, err := internalhttp.DoJSON[lulu.PagedResponse[lulu.Product]](ctx, c.httpClient, http.MethodGet, constants.ProductsPath+"/search"+q.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	return products, nil
}
