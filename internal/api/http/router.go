package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/aussiebroadwan/restbook/pkg/slogx"

	_ "github.com/aussiebroadwan/restbook/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultMaxUploadBytes caps multipart uploads when MaxUploadBytes is unset.
const DefaultMaxUploadBytes = 32 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux     *http.ServeMux
	handler http.Handler

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Optional, set before ApplyRoutes.
	Metrics        *httpx.Metrics
	CORSOrigins    []string
	MaxUploadBytes int64

	AuthService   *service.AuthService
	PersonService *service.PersonService
	BookService   *service.BookService
	FileService   *service.FileService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}
}

// ApplyRoutes registers every route and builds the global middleware chain.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPersons()
	r.registerBooks()
	r.registerFiles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Metrics sits directly on the mux so it sees the matched pattern.
	var inner http.Handler = r.Mux
	if r.Metrics != nil {
		inner = r.Metrics.Middleware()(inner)
	}

	r.handler = httpx.Chain(inner,
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.CORSOrigins),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			restbook API
//	@version		1
//	@description	REST API for people, books and documents with JWT sign-in, refresh and revoke.
//	@description	Access tokens are HS256 signed JWTs sent as "Authorization: Bearer {token}".
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.handler == nil {
		r.ApplyRoutes()
	}
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Sign-in and refresh are credential guessing targets.
	r.Mux.Handle("POST /api/auth/v1/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/v1/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /api/auth/v1/revoke",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPersons() {
	h := &PersonHandler{PersonService: r.PersonService}
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /api/person/v1", public(h.HandleList))
	r.Mux.Handle("GET /api/person/v1/{id}", public(h.HandleGet))
	r.Mux.Handle("GET /api/person/v1/findPersonByName", public(h.HandleFindByName))
	r.Mux.Handle("GET /api/person/v1/{sortDirection}/{pageSize}/{page}", public(h.HandleSearch))
	r.Mux.Handle("POST /api/person/v1", public(h.HandleCreate))
	r.Mux.Handle("PUT /api/person/v1", public(h.HandleUpdate))
	r.Mux.Handle("PATCH /api/person/v1/{id}", public(h.HandleDisable))
	r.Mux.Handle("DELETE /api/person/v1/{id}", public(h.HandleDelete))
}

func (r *Router) registerBooks() {
	h := &BookHandler{BookService: r.BookService}
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /api/book/v1", secured(h.HandleList))
	r.Mux.Handle("GET /api/book/v1/{id}", secured(h.HandleGet))
	r.Mux.Handle("GET /api/book/v1/{sortDirection}/{pageSize}/{page}", secured(h.HandleSearch))
	r.Mux.Handle("POST /api/book/v1", secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/book/v1", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/book/v1/{id}", secured(h.HandleDelete))
}

func (r *Router) registerFiles() {
	maxBytes := r.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	h := &FileHandler{FileService: r.FileService, MaxUploadBytes: maxBytes}
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/file/v1/uploadFile", secured(h.HandleUpload))
	r.Mux.Handle("POST /api/file/v1/uploadMultipleFiles", secured(h.HandleUploadMultiple))
	r.Mux.Handle("POST /api/file/v1/uploadFileToDatabase", secured(h.HandleUploadToDatabase))
	r.Mux.Handle("GET /api/file/v1/downloadFile/{fileName}", secured(h.HandleDownload))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
	}
}
