package handler

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo/v4"
)

// baseURL reconstructs the external base URL of the request so links are
// absolute. Scheme() honours X-Forwarded-Proto when set by a proxy.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// pageLinks builds the navigation links for a paginated collection. extra
// carries query parameters besides page (search, brand, limit) so they are
// preserved across navigation.
func pageLinks(base, path string, page, totalPages int, extra url.Values) collectionLinks {
	link := func(p int) string {
		q := url.Values{}
		for k, vs := range extra {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		q.Set("page", fmt.Sprintf("%d", p))
		return base + path + "?" + q.Encode()
	}

	links := collectionLinks{
		Self:  link(page),
		First: link(1),
		Last:  link(totalPages),
	}
	if page > 1 {
		links.Prev = link(page - 1)
	}
	if page < totalPages {
		links.Next = link(page + 1)
	}
	return links
}
