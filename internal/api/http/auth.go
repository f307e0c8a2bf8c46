package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

// AuthHandler serves sign-in, refresh and revoke.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignIn godoc
//
//	@Summary		Sign in
//	@Description	Verifies the username and password and returns a new token pair
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.SignInRequest	true	"credentials"
//	@Success		200		{object}	apiclient.TokenPair
//	@Failure		400		{object}	apiclient.ErrorResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Router			/api/auth/v1/signin [post]
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req apiclient.SignInRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteDecodeError(w, err)
		return
	}

	pair, err := h.AuthService.SignIn(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apiclient.ErrInvalidCredentials.WriteError(w)
			return
		}
		writeServerError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleRefresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Exchanges the last token pair for a new one. The access token may be expired.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.TokenPair	true	"current token pair"
//	@Success		200		{object}	apiclient.TokenPair
//	@Failure		400		{object}	apiclient.ErrorResponse	"Invalid client request"
//	@Router			/api/auth/v1/refresh [post]
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req apiclient.TokenPair
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		apiclient.ErrInvalidClientRequest.WriteError(w)
		return
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		apiclient.ErrInvalidClientRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshRejected) || errors.Is(err, jwtx.ErrInvalidToken) {
			apiclient.ErrInvalidClientRequest.WriteError(w)
			return
		}
		writeServerError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleRevoke godoc
//
//	@Summary		Revoke refresh token
//	@Description	Clears the caller's stored refresh token. Issued access tokens remain valid until they expire.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	apiclient.ErrorResponse	"Invalid client request"
//	@Failure		401	{object}	apiclient.ErrorResponse
//	@Router			/api/auth/v1/revoke [get]
func (h *AuthHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok || claims.Username() == "" {
		apiclient.ErrInvalidClientRequest.WriteError(w)
		return
	}
	username := claims.Username()

	slogx.FromContext(r.Context()).Debug("revoke requested", "username", username, "jti", claims.ID)

	revoked, err := h.AuthService.Revoke(r.Context(), username)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if !revoked {
		apiclient.ErrInvalidClientRequest.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServerError logs the cause and returns a generic 500.
func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "error", err)
	apiclient.ErrServerError.WriteError(w)
}

// writeServiceError maps the service error taxonomy onto responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		apiclient.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrMissingSearchTerm):
		apiclient.ErrInvalidRequest.WithDescription("firstName or lastName is required").WriteError(w)
	case errors.Is(err, service.ErrUnsupportedFileType):
		apiclient.ErrUnsupportedFileType.WriteError(w)
	case errors.Is(err, service.ErrEmptyFile):
		apiclient.ErrInvalidRequest.WithDescription("file is empty").WriteError(w)
	case errors.Is(err, service.ErrInvalidFileName):
		apiclient.ErrInvalidRequest.WithDescription("invalid file name").WriteError(w)
	default:
		writeServerError(w, r, err)
	}
}
