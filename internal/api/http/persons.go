package http

import (
	"net/http"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
)

type PersonHandler struct {
	PersonService *service.PersonService
}

// HandleList godoc
//
//	@Summary	List people
//	@Tags		Person
//	@Produce	json
//	@Success	200	{array}	PersonResource
//	@Router		/api/person/v1 [get]
func (h *PersonHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	people, err := h.PersonService.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResources(baseURL(r), people))
}

// HandleGet godoc
//
//	@Summary	Get a person
//	@Tags		Person
//	@Produce	json
//	@Param		id	path		int	true	"person id"
//	@Success	200	{object}	PersonResource
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1/{id} [get]
func (h *PersonHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid id").WriteError(w)
		return
	}

	p, err := h.PersonService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResource(baseURL(r), p))
}

// HandleCreate godoc
//
//	@Summary	Create a person
//	@Tags		Person
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Person	true	"person"
//	@Success	200		{object}	PersonResource
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1 [post]
func (h *PersonHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p domain.Person
	if err := httpx.DecodeAndValidate(r, &p); err != nil {
		httpx.WriteDecodeError(w, err)
		return
	}

	created, err := h.PersonService.Create(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResource(baseURL(r), created))
}

// HandleUpdate godoc
//
//	@Summary	Update a person
//	@Tags		Person
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Person	true	"person"
//	@Success	200		{object}	PersonResource
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Failure	404		{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1 [put]
func (h *PersonHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p domain.Person
	if err := httpx.DecodeAndValidate(r, &p); err != nil {
		httpx.WriteDecodeError(w, err)
		return
	}

	updated, err := h.PersonService.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResource(baseURL(r), updated))
}

// HandleDisable godoc
//
//	@Summary	Toggle a person's enabled flag
//	@Tags		Person
//	@Produce	json
//	@Param		id	path		int	true	"person id"
//	@Success	200	{object}	PersonResource
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1/{id} [patch]
func (h *PersonHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid id").WriteError(w)
		return
	}

	p, err := h.PersonService.Disable(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResource(baseURL(r), p))
}

// HandleDelete godoc
//
//	@Summary	Delete a person
//	@Tags		Person
//	@Param		id	path	int	true	"person id"
//	@Success	204
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1/{id} [delete]
func (h *PersonHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid id").WriteError(w)
		return
	}

	if err := h.PersonService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFindByName godoc
//
//	@Summary	Find people by name
//	@Tags		Person
//	@Produce	json
//	@Param		firstName	query	string	false	"first name substring"
//	@Param		lastName	query	string	false	"last name substring"
//	@Success	200			{array}		PersonResource
//	@Failure	400			{object}	apiclient.ErrorResponse
//	@Router		/api/person/v1/findPersonByName [get]
func (h *PersonHandler) HandleFindByName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	people, err := h.PersonService.FindByName(r.Context(), q.Get("firstName"), q.Get("lastName"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, personResources(baseURL(r), people))
}

// HandleSearch godoc
//
//	@Summary	Paged search over first names
//	@Tags		Person
//	@Produce	json
//	@Param		sortDirection	path		string	true	"asc or desc"
//	@Param		pageSize		path		int		true	"page size"
//	@Param		page			path		int		true	"1-based page"
//	@Param		name			query		string	false	"first name substring"
//	@Success	200				{object}	domain.Page[PersonResource]
//	@Router		/api/person/v1/{sortDirection}/{pageSize}/{page} [get]
func (h *PersonHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	dir, size, page, ok := pageParams(r)
	if !ok {
		apiclient.ErrInvalidRequest.WithDescription("invalid paging parameters").WriteError(w)
		return
	}

	result, err := h.PersonService.Search(r.Context(), r.URL.Query().Get("name"), dir, size, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	base := baseURL(r)
	httpx.WriteJSON(w, http.StatusOK, enrichPage(result, func(p domain.Person) PersonResource {
		return personResource(base, p)
	}))
}
