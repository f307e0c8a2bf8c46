package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// FileUpload is one document to send.
type FileUpload struct {
	Name string
	Data []byte
}

// UploadFile stores a document in the server's file storage.
func (s *Session) UploadFile(ctx context.Context, f FileUpload) (*FileDetail, error) {
	return s.uploadOne(ctx, "/api/file/v1/uploadFile", f)
}

// UploadFileToDatabase stores a document in the server's database.
func (s *Session) UploadFileToDatabase(ctx context.Context, f FileUpload) (*FileDetail, error) {
	return s.uploadOne(ctx, "/api/file/v1/uploadFileToDatabase", f)
}

// UploadFiles stores several documents in one request.
func (s *Session) UploadFiles(ctx context.Context, files ...FileUpload) ([]FileDetail, error) {
	body, contentType, err := multipartBody("files", files)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/file/v1/uploadMultipleFiles", body,
		map[string]string{"Content-Type": contentType})
	if err != nil {
		return nil, err
	}

	var out []FileDetail
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadFile fetches a document by its stored name and returns its bytes
// and content type.
func (s *Session) DownloadFile(ctx context.Context, name string) ([]byte, string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/file/v1/downloadFile/"+url.PathEscape(name), nil, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", parseErrorResponse(resp, data)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (s *Session) uploadOne(ctx context.Context, path string, f FileUpload) (*FileDetail, error) {
	body, contentType, err := multipartBody("file", []FileUpload{f})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body,
		map[string]string{"Content-Type": contentType})
	if err != nil {
		return nil, err
	}

	var out FileDetail
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func multipartBody(field string, files []FileUpload) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		fw, err := mw.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build form: %w", err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to build form: %w", err)
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
