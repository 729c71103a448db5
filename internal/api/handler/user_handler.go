package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bilemo/catalog-api/internal/api/metrics"
	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

// Cache lifetimes for tenant user listings. Responses are private: they are
// scoped to the authenticated client and must not land in shared caches.
const (
	userListCacheControl = "private, max-age=300"
	userShowCacheControl = "private, max-age=600"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns one page of the authenticated client's users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Items per page (max 100)"
// @Param        search  query     string  false  "Substring filter on name or email"
// @Success      200     {object}  userListResponse
// @Failure      401     {object}  errorResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	clientID, err := ctxClientID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit := queryLimit(c)
	search := c.QueryParam("search")

	result, err := h.userService.List(c.Request().Context(), ports.ListUsersInput{
		ClientID: clientID,
		Search:   search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	extra := url.Values{}
	if search != "" {
		extra.Set("search", search)
	}
	if limit > 0 {
		extra.Set("limit", strconv.Itoa(result.Limit))
	}

	base := baseURL(c)
	links := pageLinks(base, "/api/users", result.Page, result.TotalPages, extra)

	c.Response().Header().Set("Cache-Control", userListCacheControl)
	return c.JSON(http.StatusOK, toUserListResponse(base, result, links))
}

// Show returns the detail of one of the client's users.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	clientID, err := ctxClientID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user, err := h.userService.Get(c.Request().Context(), clientID, id)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", userShowCacheControl)
	return c.JSON(http.StatusOK, toUserResponse(baseURL(c), user))
}

// Create registers a new user under the authenticated client.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	clientID, err := ctxClientID(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		metrics.UsersCreatedTotal.WithLabelValues("invalid").Inc()
		return err
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		ClientID:  clientID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.UsersCreatedTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(baseURL(c), user))
}

// Delete removes one of the client's users.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	clientID, err := ctxClientID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := h.userService.Delete(c.Request().Context(), clientID, id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
