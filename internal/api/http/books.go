package http

import (
	"net/http"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
)

type BookHandler struct {
	BookService *service.BookService
}

// HandleList godoc
//
//	@Summary	List books
//	@Tags		Book
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	BookResource
//	@Router		/api/book/v1 [get]
func (h *BookHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookService.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResources(baseURL(r), books))
}

// HandleGet godoc
//
//	@Summary	Get a book
//	@Tags		Book
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"book id"
//	@Success	200	{object}	BookResource
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/book/v1/{id} [get]
func (h *BookHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid id").WriteError(w)
		return
	}

	b, err := h.BookService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResource(baseURL(r), b))
}

// HandleCreate godoc
//
//	@Summary	Create a book
//	@Tags		Book
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Book	true	"book"
//	@Success	200		{object}	BookResource
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Router		/api/book/v1 [post]
func (h *BookHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var b domain.Book
	if err := httpx.DecodeAndValidate(r, &b); err != nil {
		httpx.WriteDecodeError(w, err)
		return
	}

	created, err := h.BookService.Create(r.Context(), b)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResource(baseURL(r), created))
}

// HandleUpdate godoc
//
//	@Summary	Update a book
//	@Tags		Book
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Book	true	"book"
//	@Success	200		{object}	BookResource
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Failure	404		{object}	apiclient.ErrorResponse
//	@Router		/api/book/v1 [put]
func (h *BookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var b domain.Book
	if err := httpx.DecodeAndValidate(r, &b); err != nil {
		httpx.WriteDecodeError(w, err)
		return
	}

	updated, err := h.BookService.Update(r.Context(), b)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResource(baseURL(r), updated))
}

// HandleDelete godoc
//
//	@Summary	Delete a book
//	@Tags		Book
//	@Security	BearerAuth
//	@Param		id	path	int	true	"book id"
//	@Success	204
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/book/v1/{id} [delete]
func (h *BookHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid id").WriteError(w)
		return
	}

	if err := h.BookService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSearch godoc
//
//	@Summary	Paged search over titles
//	@Tags		Book
//	@Security	BearerAuth
//	@Produce	json
//	@Param		sortDirection	path		string	true	"asc or desc"
//	@Param		pageSize		path		int		true	"page size"
//	@Param		page			path		int		true	"1-based page"
//	@Param		name			query		string	false	"title substring"
//	@Success	200				{object}	domain.Page[BookResource]
//	@Router		/api/book/v1/{sortDirection}/{pageSize}/{page} [get]
func (h *BookHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	dir, size, page, ok := pageParams(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid paging parameters").WriteError(w)
		return
	}

	result, err := h.BookService.Search(r.Context(), r.URL.Query().Get("title"), dir, size, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	base := baseURL(r)
	httpx.WriteJSON(w, http.StatusOK, enrichPage(result, func(b domain.Book) BookResource {
		return bookResource(base, b)
	}))
}
