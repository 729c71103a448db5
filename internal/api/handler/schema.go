package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100,person_name"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=100,person_name"`
	Email     string `json:"email"     validate:"required,email,max=180"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type loginResponse struct {
	Token string `json:"token"`
}

// paginationMeta is the meta object of every paginated envelope.
type paginationMeta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// collectionLinks is the _links object of every paginated envelope. prev and
// next are present only when the respective page exists.
type collectionLinks struct {
	Self  string `json:"self"`
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// itemLinks is the _links object attached to a single resource.
type itemLinks struct {
	Self   string `json:"self"`
	List   string `json:"list,omitempty"`
	Delete string `json:"delete,omitempty"`
}

type productListItem struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Price          string    `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Links          itemLinks `json:"_links"`
}

type productResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Price          string            `json:"price"`
	FormattedPrice string            `json:"formatted_price"`
	Description    string            `json:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Links          itemLinks         `json:"_links"`
}

type productListResponse struct {
	Data  []productListItem `json:"data"`
	Meta  paginationMeta    `json:"meta"`
	Links collectionLinks   `json:"_links"`
}

type userListItem struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Links     itemLinks `json:"_links"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Links     itemLinks `json:"_links"`
}

type userListResponse struct {
	Data  []userListItem  `json:"data"`
	Meta  paginationMeta  `json:"meta"`
	Links collectionLinks `json:"_links"`
}
