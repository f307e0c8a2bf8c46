package apiclient

import "time"

// ErrorResponse mirrors the JSON error body.
type ErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// SignInRequest is the body of POST /api/auth/v1/signin.
type SignInRequest struct {
	UserName string `json:"userName" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is returned by sign-in and refresh and posted back to refresh.
type TokenPair struct {
	Authenticated bool   `json:"authenticated"`
	Created       string `json:"created"`
	Expiration    string `json:"expiration"`
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
}

// Link is a hypermedia control.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Type   string `json:"type"`
	Action string `json:"action"`
}

type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Gender    string `json:"gender"`
	Enabled   bool   `json:"enabled"`
	Links     []Link `json:"links,omitempty"`
}

type Book struct {
	ID         int64     `json:"id"`
	Author     string    `json:"author"`
	Title      string    `json:"title"`
	LaunchDate time.Time `json:"launchDate"`
	Price      float64   `json:"price"`
	Links      []Link    `json:"links,omitempty"`
}

// Page is one page of a paged search.
type Page[T any] struct {
	CurrentPage    int            `json:"currentPage"`
	PageSize       int            `json:"pageSize"`
	TotalResults   int64          `json:"totalResults"`
	SortFields     string         `json:"sortFields,omitempty"`
	SortDirections string         `json:"sortDirections"`
	Filters        map[string]any `json:"filters,omitempty"`
	List           []T            `json:"list"`
}

// FileDetail describes an uploaded document.
type FileDetail struct {
	DocumentName string `json:"documentName"`
	DocType      string `json:"docType"`
	DocURL       string `json:"docUrl"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Storage  string `json:"storage,omitempty"`
}
