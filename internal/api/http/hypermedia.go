package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
)

const (
	typeJSON = "application/json"
	typeInt  = "int"
)

// PersonResource is a person with its hypermedia controls.
type PersonResource struct {
	domain.Person
	Links []domain.Link `json:"links"`
}

// BookResource is a book with its hypermedia controls.
type BookResource struct {
	domain.Book
	Links []domain.Link `json:"links"`
}

// baseURL is scheme://host of the incoming request. X-Forwarded-Proto wins
// when a proxy terminated TLS.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}

func resourceLinks(base, resource string, id int64, verbs ...string) []domain.Link {
	href := base + "/api/" + resource + "/v1/" + strconv.FormatInt(id, 10)

	links := make([]domain.Link, 0, len(verbs))
	for _, verb := range verbs {
		typ := typeJSON
		if verb == http.MethodDelete {
			typ = typeInt
		}
		links = append(links, domain.Link{
			Rel:    domain.RelSelf,
			Href:   href,
			Type:   typ,
			Action: strings.ToUpper(verb),
		})
	}
	return links
}

func personResource(base string, p domain.Person) PersonResource {
	return PersonResource{
		Person: p,
		Links: resourceLinks(base, "person", p.ID,
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete),
	}
}

func bookResource(base string, b domain.Book) BookResource {
	return BookResource{
		Book: b,
		Links: resourceLinks(base, "book", b.ID,
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete),
	}
}

func personResources(base string, ps []domain.Person) []PersonResource {
	out := make([]PersonResource, 0, len(ps))
	for _, p := range ps {
		out = append(out, personResource(base, p))
	}
	return out
}

func bookResources(base string, bs []domain.Book) []BookResource {
	out := make([]BookResource, 0, len(bs))
	for _, b := range bs {
		out = append(out, bookResource(base, b))
	}
	return out
}

// enrichPage swaps the list of a page for its hypermedia form.
func enrichPage[T, R any](p domain.Page[T], fn func(T) R) domain.Page[R] {
	list := make([]R, 0, len(p.List))
	for _, item := range p.List {
		list = append(list, fn(item))
	}
	return domain.Page[R]{
		CurrentPage:    p.CurrentPage,
		PageSize:       p.PageSize,
		TotalResults:   p.TotalResults,
		SortFields:     p.SortFields,
		SortDirections: p.SortDirections,
		Filters:        p.Filters,
		List:           list,
	}
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// pageParams parses {sortDirection}/{pageSize}/{page}.
func pageParams(r *http.Request) (dir string, size, page int, ok bool) {
	size, err := strconv.Atoi(r.PathValue("pageSize"))
	if err != nil {
		return "", 0, 0, false
	}
	page, err = strconv.Atoi(r.PathValue("page"))
	if err != nil {
		return "", 0, 0, false
	}
	return r.PathValue("sortDirection"), size, page, true
}
