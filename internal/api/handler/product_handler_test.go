package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

type stubProductService struct {
	listFn func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error)
	getFn  func(ctx context.Context, id int64) (*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	return s.listFn(ctx, in)
}

func (s *stubProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func sampleProduct(id int64) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      "iPhone 15 Pro",
		Brand:     "Apple",
		Model:     "A3102",
		Price:     "1199.99",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProductHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		listFn: func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Page != 2 || in.Limit != 5 || in.Brand != "Apple" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ProductPage{
				Items:      []domain.Product{sampleProduct(7)},
				Total:      11,
				Page:       2,
				Limit:      5,
				TotalPages: 3,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&limit=5&brand=Apple", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Fatalf("unexpected Cache-Control: %q", got)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
		Meta map[string]any   `json:"meta"`
		Links map[string]any  `json:"_links"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Data))
	}
	if resp.Data[0]["formatted_price"] != "1 199,99 €" {
		t.Fatalf("unexpected formatted_price: %v", resp.Data[0]["formatted_price"])
	}
	if resp.Meta["current_page"].(float64) != 2 || resp.Meta["total_items"].(float64) != 11 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
	prev, _ := resp.Links["prev"].(string)
	next, _ := resp.Links["next"].(string)
	if prev == "" || next == "" {
		t.Fatalf("expected prev and next links on a middle page: %+v", resp.Links)
	}
}

func TestProductHandler_List_DefaultsPassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		listFn: func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Page != 0 || in.Limit != 0 {
				t.Fatalf("expected zero values for absent params, got %+v", in)
			}
			return &ports.ProductPage{Items: []domain.Product{}, Page: 1, Limit: 20}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data == nil {
		t.Fatalf("data must be an empty array, not null")
	}
}

func TestProductHandler_List_ExplicitZeroLimitFloorsToOne(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		listFn: func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Limit != 1 {
				t.Fatalf("limit = %d, want explicit 0 floored to 1", in.Limit)
			}
			return &ports.ProductPage{
				Items:      []domain.Product{sampleProduct(1)},
				Total:      25,
				Page:       1,
				Limit:      1,
				TotalPages: 25,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []any          `json:"data"`
		Meta map[string]any `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected a single item for limit=0, got %d", len(resp.Data))
	}
	if resp.Meta["items_per_page"].(float64) != 1 {
		t.Fatalf("unexpected items_per_page: %v", resp.Meta["items_per_page"])
	}
}

func TestProductHandler_List_NonNumericLimitCoercesToOne(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		listFn: func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Limit != 1 {
				t.Fatalf("limit = %d, want non-numeric input coerced to 1", in.Limit)
			}
			return &ports.ProductPage{Items: []domain.Product{}, Page: 1, Limit: 1}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProductHandler_Show(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			p := sampleProduct(7)
			p.Description = "Latest flagship"
			return &p, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=7200" {
		t.Fatalf("unexpected Cache-Control: %q", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["description"] != "Latest flagship" {
		t.Fatalf("unexpected description: %v", resp["description"])
	}
	links, _ := resp["_links"].(map[string]any)
	if links["self"] != "http://example.com/api/products/7" {
		t.Fatalf("unexpected self link: %v", links["self"])
	}
}

func TestProductHandler_Show_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.Show(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Show_NonNumericID(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Show(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
