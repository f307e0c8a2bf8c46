package http

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
)

type FileHandler struct {
	FileService    *service.FileService
	MaxUploadBytes int64
}

// HandleUpload godoc
//
//	@Summary	Upload a document to file storage
//	@Tags		File
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"document (.pdf, .jpg, .jpeg, .png)"
//	@Success	200		{object}	domain.FileDetail
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Failure	413		{object}	apiclient.ErrorResponse
//	@Router		/api/file/v1/uploadFile [post]
func (h *FileHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	headers, ok := h.parseForm(w, r, "file")
	if !ok {
		return
	}

	up, closer, err := openUpload(headers[0])
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	defer closer.Close()

	detail, err := h.FileService.SaveToStorage(r.Context(), baseURL(r), up)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, detail)
}

// HandleUploadMultiple godoc
//
//	@Summary	Upload several documents to file storage
//	@Tags		File
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		files	formData	file	true	"documents"
//	@Success	200		{array}		domain.FileDetail
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Failure	413		{object}	apiclient.ErrorResponse
//	@Router		/api/file/v1/uploadMultipleFiles [post]
func (h *FileHandler) HandleUploadMultiple(w http.ResponseWriter, r *http.Request) {
	headers, ok := h.parseForm(w, r, "files")
	if !ok {
		return
	}

	ups := make([]service.Upload, 0, len(headers))
	for _, fh := range headers {
		up, closer, err := openUpload(fh)
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		defer closer.Close()
		ups = append(ups, up)
	}

	details, err := h.FileService.SaveManyToStorage(r.Context(), baseURL(r), ups)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, details)
}

// HandleUploadToDatabase godoc
//
//	@Summary	Upload a document into the database
//	@Tags		File
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"document (.pdf, .jpg, .jpeg, .png)"
//	@Success	200		{object}	domain.FileDetail
//	@Failure	400		{object}	apiclient.ErrorResponse
//	@Failure	413		{object}	apiclient.ErrorResponse
//	@Router		/api/file/v1/uploadFileToDatabase [post]
func (h *FileHandler) HandleUploadToDatabase(w http.ResponseWriter, r *http.Request) {
	headers, ok := h.parseForm(w, r, "file")
	if !ok {
		return
	}

	up, closer, err := openUpload(headers[0])
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	defer closer.Close()

	detail, err := h.FileService.SaveToDatabase(r.Context(), baseURL(r), up)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, detail)
}

// HandleDownload godoc
//
//	@Summary	Download a document
//	@Tags		File
//	@Security	BearerAuth
//	@Produce	application/octet-stream
//	@Param		fileName	path	string	true	"document name"
//	@Success	200
//	@Failure	400	{object}	apiclient.ErrorResponse
//	@Failure	404	{object}	apiclient.ErrorResponse
//	@Router		/api/file/v1/downloadFile/{fileName} [get]
func (h *FileHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("fileName")

	rc, contentType, err := h.FileService.Open(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	if s, ok := rc.(interface{ Stat() (fs.FileInfo, error) }); ok {
		if fi, err := s.Stat(); err == nil {
			w.Header().Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

// parseForm reads the multipart body, capped at MaxUploadBytes, and returns
// the file parts under field. It writes the error response itself.
func (h *FileHandler) parseForm(w http.ResponseWriter, r *http.Request, field string) ([]*multipart.FileHeader, bool) {
	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiclient.ErrPayloadTooLarge.WriteError(w)
			return nil, false
		}
		apiclient.ErrInvalidRequest.WithDescription("expected multipart/form-data body").WriteError(w)
		return nil, false
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		apiclient.ErrInvalidRequest.WithDescription("missing form field " + strconv.Quote(field)).WriteError(w)
		return nil, false
	}
	return headers, true
}

func openUpload(fh *multipart.FileHeader) (service.Upload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return service.Upload{}, nil, err
	}
	return service.Upload{Name: fh.Filename, Size: fh.Size, Body: f}, f, nil
}
