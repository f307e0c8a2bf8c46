package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	apihttp "github.com/aussiebroadwan/restbook/internal/api/http"
	"github.com/aussiebroadwan/restbook/internal/api/filestore"
	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/aussiebroadwan/restbook/pkg/cryptox"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "alice"
	testPassword = "correct horse"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "api-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	router *apihttp.Router
	signer *jwtx.HMACSigner
}

func newTestServer(t *testing.T, opts ...func(*apihttp.Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewHMACSigner(jwtx.HMACConfig{
		Secret:   []byte("0123456789abcdef0123456789abcdef"),
		Issuer:   "restbook-test",
		Audience: []string{"restbook-test"},
	})
	require.NoError(t, err)

	_, err = (&service.UserService{Store: st}).EnsureUser(context.Background(), testUser, "Alice Example", testPassword)
	require.NoError(t, err)

	disk, err := filestore.NewDisk(t.TempDir())
	require.NoError(t, err)

	r := apihttp.NewRouter(signer, "test", st, slogx.Discard())
	r.Metrics = httpx.NewMetrics("restbook", prometheus.NewRegistry())
	r.AuthService = &service.AuthService{
		Store:      st,
		Signer:     signer,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	r.PersonService = &service.PersonService{Store: st}
	r.BookService = &service.BookService{Store: st}
	r.FileService = &service.FileService{Store: st, Backend: disk}
	for _, opt := range opts {
		opt(r)
	}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, router: r, signer: signer}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, s.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *testServer) signIn(t *testing.T) apiclient.TokenPair {
	t.Helper()

	resp := s.do(t, http.MethodPost, "/api/auth/v1/signin", "", apiclient.SignInRequest{
		UserName: testUser,
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[apiclient.TokenPair](t, resp)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func requireErrorCode(t *testing.T, resp *http.Response, status int, code string) {
	t.Helper()

	require.Equal(t, status, resp.StatusCode)
	body := decode[apiclient.ErrorResponse](t, resp)
	require.Equal(t, code, body.Error)
}

func TestSignIn(t *testing.T) {
	srv := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/api/auth/v1/signin", "", apiclient.SignInRequest{
			UserName: testUser,
			Password: testPassword,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

		pair := decode[apiclient.TokenPair](t, resp)
		require.True(t, pair.Authenticated)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
		require.NotEmpty(t, pair.Created)
		require.NotEmpty(t, pair.Expiration)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/api/auth/v1/signin", "", apiclient.SignInRequest{
			UserName: testUser,
			Password: "nope",
		})
		requireErrorCode(t, resp, http.StatusUnauthorized, apiclient.ErrInvalidCredentials.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/api/auth/v1/signin", "", apiclient.SignInRequest{
			UserName: "mallory",
			Password: testPassword,
		})
		requireErrorCode(t, resp, http.StatusUnauthorized, apiclient.ErrInvalidCredentials.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/api/auth/v1/signin", "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshAndRevoke(t *testing.T) {
	srv := newTestServer(t)
	first := srv.signIn(t)

	resp := srv.do(t, http.MethodPost, "/api/auth/v1/refresh", "", first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[apiclient.TokenPair](t, resp)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out refresh token is no longer accepted.
	resp = srv.do(t, http.MethodPost, "/api/auth/v1/refresh", "", first)
	requireErrorCode(t, resp, http.StatusBadRequest, apiclient.ErrInvalidClientRequest.Code)

	resp = srv.do(t, http.MethodPost, "/api/auth/v1/refresh", "", apiclient.TokenPair{AccessToken: "garbage", RefreshToken: "x"})
	requireErrorCode(t, resp, http.StatusBadRequest, apiclient.ErrInvalidClientRequest.Code)

	resp = srv.do(t, http.MethodGet, "/api/auth/v1/revoke", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/api/auth/v1/revoke", second.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = srv.do(t, http.MethodPost, "/api/auth/v1/refresh", "", second)
	requireErrorCode(t, resp, http.StatusBadRequest, apiclient.ErrInvalidClientRequest.Code)

	// A valid token whose subject has no account revokes nothing.
	ghost, err := srv.signer.IssueAccessToken(jwtx.NewClaims("ghost"), time.Minute)
	require.NoError(t, err)
	resp = srv.do(t, http.MethodGet, "/api/auth/v1/revoke", ghost, nil)
	requireErrorCode(t, resp, http.StatusBadRequest, apiclient.ErrInvalidClientRequest.Code)
}

func TestPersonEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/person/v1", "", apiclient.Person{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "London",
		Gender:    "Female",
		Enabled:   true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ada := decode[apiclient.Person](t, resp)
	require.NotZero(t, ada.ID)
	require.Len(t, ada.Links, 5)

	self := srv.URL + "/api/person/v1/" + itoa(ada.ID)
	actions := make(map[string]string)
	for _, l := range ada.Links {
		require.Equal(t, "self", l.Rel)
		require.Equal(t, self, l.Href)
		actions[l.Action] = l.Type
	}
	require.Equal(t, map[string]string{
		"GET":    "application/json",
		"POST":   "application/json",
		"PUT":    "application/json",
		"PATCH":  "application/json",
		"DELETE": "int",
	}, actions)

	t.Run("get", func(t *testing.T) {
		resp := srv.do(t, http.MethodGet, "/api/person/v1/"+itoa(ada.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Ada", decode[apiclient.Person](t, resp).FirstName)

		resp = srv.do(t, http.MethodGet, "/api/person/v1/9999", "", nil)
		requireErrorCode(t, resp, http.StatusNotFound, apiclient.ErrNotFound.Code)

		resp = srv.do(t, http.MethodGet, "/api/person/v1/abc", "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/api/person/v1", "", apiclient.Person{
			FirstName: " ",
			LastName:  "Nobody",
			Gender:    "Male",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update", func(t *testing.T) {
		upd := ada
		upd.Address = "Marylebone"
		upd.Links = nil
		resp := srv.do(t, http.MethodPut, "/api/person/v1", "", upd)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Marylebone", decode[apiclient.Person](t, resp).Address)

		upd.ID = 9999
		resp = srv.do(t, http.MethodPut, "/api/person/v1", "", upd)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("patch toggles enabled", func(t *testing.T) {
		resp := srv.do(t, http.MethodPatch, "/api/person/v1/"+itoa(ada.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.False(t, decode[apiclient.Person](t, resp).Enabled)

		resp = srv.do(t, http.MethodPatch, "/api/person/v1/"+itoa(ada.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, decode[apiclient.Person](t, resp).Enabled)
	})

	t.Run("find by name", func(t *testing.T) {
		resp := srv.do(t, http.MethodGet, "/api/person/v1/findPersonByName?firstName=ad", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		found := decode[[]apiclient.Person](t, resp)
		require.Len(t, found, 1)
		require.Equal(t, ada.ID, found[0].ID)

		resp = srv.do(t, http.MethodGet, "/api/person/v1/findPersonByName", "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		resp := srv.do(t, http.MethodDelete, "/api/person/v1/"+itoa(ada.ID), "", nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = srv.do(t, http.MethodDelete, "/api/person/v1/"+itoa(ada.ID), "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPersonPaging(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"Ada", "Alan", "Grace", "Linus", "Barbara"} {
		resp := srv.do(t, http.MethodPost, "/api/person/v1", "", apiclient.Person{
			FirstName: name,
			LastName:  "Test",
			Gender:    "Other",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	tests := []struct {
		name      string
		path      string
		wantTotal int64
		wantNames []string
		wantDir   string
	}{
		{"asc first page", "/api/person/v1/asc/2/1", 5, []string{"Ada", "Alan"}, "asc"},
		{"asc second page", "/api/person/v1/asc/2/2", 5, []string{"Barbara", "Grace"}, "asc"},
		{"desc", "/api/person/v1/desc/2/1", 5, []string{"Linus", "Grace"}, "desc"},
		{"unknown direction sorts ascending", "/api/person/v1/sideways/1/1", 5, []string{"Ada"}, "asc"},
		{"filtered", "/api/person/v1/asc/10/1?name=a", 4, []string{"Ada", "Alan", "Barbara", "Grace"}, "asc"},
		{"past the end", "/api/person/v1/asc/10/3", 5, nil, "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.do(t, http.MethodGet, tt.path, "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			page := decode[apiclient.Page[apiclient.Person]](t, resp)
			require.Equal(t, tt.wantTotal, page.TotalResults)
			require.Equal(t, tt.wantDir, page.SortDirections)

			var names []string
			for _, p := range page.List {
				names = append(names, p.FirstName)
				require.NotEmpty(t, p.Links)
			}
			require.Equal(t, tt.wantNames, names)
		})
	}

	resp := srv.do(t, http.MethodGet, "/api/person/v1/asc/two/1", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/api/book/v1", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

	token := srv.signIn(t).AccessToken

	resp = srv.do(t, http.MethodPost, "/api/book/v1", token, apiclient.Book{
		Author:     "Donald Knuth",
		Title:      "The Art of Computer Programming",
		LaunchDate: time.Date(1968, 1, 1, 0, 0, 0, 0, time.UTC),
		Price:      199.99,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	book := decode[apiclient.Book](t, resp)
	require.NotZero(t, book.ID)
	require.Len(t, book.Links, 4)
	require.True(t, book.LaunchDate.Equal(time.Date(1968, 1, 1, 0, 0, 0, 0, time.UTC)))

	resp = srv.do(t, http.MethodPost, "/api/book/v1", token, apiclient.Book{Author: "", Title: "Untitled"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/api/book/v1/desc/10/1?title=art", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[apiclient.Page[apiclient.Book]](t, resp)
	require.EqualValues(t, 1, page.TotalResults)
	require.Equal(t, map[string]any{"title": "art"}, page.Filters)

	book.Price = 150
	book.Links = nil
	resp = srv.do(t, http.MethodPut, "/api/book/v1", token, book)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.InDelta(t, 150, decode[apiclient.Book](t, resp).Price, 0.001)

	resp = srv.do(t, http.MethodDelete, "/api/book/v1/"+itoa(book.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/api/book/v1/"+itoa(book.ID), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (s *testServer) upload(t *testing.T, path, token, field string, files map[string][]byte) *http.Response {
	t.Helper()

	body, contentType := multipartBody(t, field, files)
	req, err := http.NewRequest(http.MethodPost, s.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestFileEndpoints(t *testing.T) {
	srv := newTestServer(t, func(r *apihttp.Router) { r.MaxUploadBytes = 4096 })
	token := srv.signIn(t).AccessToken
	pdf := []byte("%PDF-1.4 test document")

	t.Run("upload and download", func(t *testing.T) {
		resp := srv.upload(t, "/api/file/v1/uploadFile", token, "file", map[string][]byte{"my report.pdf": pdf})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		detail := decode[apiclient.FileDetail](t, resp)
		require.Equal(t, "my-report.pdf", detail.DocumentName)
		require.Equal(t, ".pdf", detail.DocType)
		require.Equal(t, srv.URL+"/api/file/v1/downloadFile/my-report.pdf", detail.DocURL)

		resp = srv.do(t, http.MethodGet, "/api/file/v1/downloadFile/my-report.pdf", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, pdf, got)
	})

	t.Run("upload many", func(t *testing.T) {
		resp := srv.upload(t, "/api/file/v1/uploadMultipleFiles", token, "files", map[string][]byte{
			"a.png": []byte("png"),
			"b.jpg": []byte("jpg"),
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, decode[[]apiclient.FileDetail](t, resp), 2)
	})

	t.Run("database fallback", func(t *testing.T) {
		resp := srv.upload(t, "/api/file/v1/uploadFileToDatabase", token, "file", map[string][]byte{"scan.jpeg": []byte("jpeg bytes")})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = srv.do(t, http.MethodGet, "/api/file/v1/downloadFile/scan.jpeg", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/jpeg", resp.Header.Get("Content-Type"))
		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "jpeg bytes", string(got))
	})

	t.Run("unsupported type", func(t *testing.T) {
		resp := srv.upload(t, "/api/file/v1/uploadFile", token, "file", map[string][]byte{"tool.exe": []byte("MZ")})
		requireErrorCode(t, resp, http.StatusBadRequest, apiclient.ErrUnsupportedFileType.Code)
	})

	t.Run("too large", func(t *testing.T) {
		big := bytes.Repeat([]byte("x"), 64*1024)
		resp := srv.upload(t, "/api/file/v1/uploadFile", token, "file", map[string][]byte{"big.pdf": big})
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("missing file", func(t *testing.T) {
		resp := srv.do(t, http.MethodGet, "/api/file/v1/downloadFile/nothing.pdf", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("requires bearer", func(t *testing.T) {
		resp := srv.do(t, http.MethodGet, "/api/file/v1/downloadFile/my-report.pdf", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	live := decode[apiclient.HealthResponse](t, resp)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	resp = srv.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decode[apiclient.HealthResponse](t, resp)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	// The counter is bumped after the response is flushed.
	require.Eventually(t, func() bool {
		resp, err := srv.Client().Get(srv.URL + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK &&
			strings.Contains(string(body), `route="GET /livez"`)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestHypermediaHonoursForwardedProto(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(apiclient.Person{FirstName: "Ada", LastName: "Lovelace", Gender: "Female"})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/person/v1", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-Proto", "https")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	p := decode[apiclient.Person](t, resp)
	require.True(t, strings.HasPrefix(p.Links[0].Href, "https://"), p.Links[0].Href)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
