package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

// Cache lifetimes for the shared catalog. The catalog changes rarely, so
// responses are publicly cacheable.
const (
	productListCacheControl = "public, max-age=3600"
	productShowCacheControl = "public, max-age=7200"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns one page of the shared product catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Items per page (max 100)"
// @Param        brand  query     string  false  "Substring filter on brand"
// @Success      200    {object}  productListResponse
// @Failure      401    {object}  errorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit := queryLimit(c)
	brand := c.QueryParam("brand")

	result, err := h.productService.List(c.Request().Context(), ports.ListProductsInput{
		Brand: brand,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	extra := url.Values{}
	if brand != "" {
		extra.Set("brand", brand)
	}
	if limit > 0 {
		extra.Set("limit", strconv.Itoa(result.Limit))
	}

	base := baseURL(c)
	links := pageLinks(base, "/api/products", result.Page, result.TotalPages, extra)

	c.Response().Header().Set("Cache-Control", productListCacheControl)
	return c.JSON(http.StatusOK, toProductListResponse(base, result, links))
}

// Show returns the detail of a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) Show(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrProductNotFound
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", productShowCacheControl)
	return c.JSON(http.StatusOK, toProductResponse(baseURL(c), product))
}
