package handler

import (
	"fmt"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

func toProductListItem(base string, p domain.Product) productListItem {
	return productListItem{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Model:          p.Model,
		Price:          p.Price,
		FormattedPrice: p.FormattedPrice(),
		Links: itemLinks{
			Self: fmt.Sprintf("%s/api/products/%d", base, p.ID),
		},
	}
}

func toProductResponse(base string, p *domain.Product) productResponse {
	return productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Model:          p.Model,
		Price:          p.Price,
		FormattedPrice: p.FormattedPrice(),
		Description:    p.Description,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Links: itemLinks{
			Self: fmt.Sprintf("%s/api/products/%d", base, p.ID),
			List: base + "/api/products",
		},
	}
}

func toProductListResponse(base string, page *ports.ProductPage, links collectionLinks) productListResponse {
	items := make([]productListItem, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toProductListItem(base, p))
	}
	return productListResponse{
		Data: items,
		Meta: paginationMeta{
			CurrentPage:  page.Page,
			TotalPages:   page.TotalPages,
			TotalItems:   page.Total,
			ItemsPerPage: page.Limit,
		},
		Links: links,
	}
}

func toUserListItem(base string, u domain.User) userListItem {
	self := fmt.Sprintf("%s/api/users/%d", base, u.ID)
	return userListItem{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Links: itemLinks{
			Self:   self,
			Delete: self,
		},
	}
}

func toUserResponse(base string, u *domain.User) userResponse {
	self := fmt.Sprintf("%s/api/users/%d", base, u.ID)
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Links: itemLinks{
			Self:   self,
			List:   base + "/api/users",
			Delete: self,
		},
	}
}

func toUserListResponse(base string, page *ports.UserPage, links collectionLinks) userListResponse {
	items := make([]userListItem, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, toUserListItem(base, u))
	}
	return userListResponse{
		Data: items,
		Meta: paginationMeta{
			CurrentPage:  page.Page,
			TotalPages:   page.TotalPages,
			TotalItems:   page.Total,
			ItemsPerPage: page.Limit,
		},
		Links: links,
	}
}
