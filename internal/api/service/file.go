package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/filestore"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported_file_type")
	ErrEmptyFile           = errors.New("empty_file")
	ErrInvalidFileName     = errors.New("invalid_file_name")
)

// DownloadPath is the route prefix documents are served from.
const DownloadPath = "/api/file/v1/downloadFile/"

var allowedFileTypes = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Upload is one file received from a client.
type Upload struct {
	Name string
	Size int64
	Body io.Reader
}

type FileService struct {
	Store   store.Store
	Backend filestore.Backend
}

// DocumentName validates a client supplied file name and returns the name it
// is stored under: the base name with spaces replaced by dashes.
func DocumentName(raw string) (name, ext string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, `/\`) || strings.Contains(raw, "..") {
		return "", "", ErrInvalidFileName
	}

	ext = strings.ToLower(filepath.Ext(raw))
	if _, ok := allowedFileTypes[ext]; !ok {
		return "", "", ErrUnsupportedFileType
	}
	return strings.ReplaceAll(raw, " ", "-"), ext, nil
}

// ContentType is the media type a document is served with.
func ContentType(name string) string {
	return "application/" + strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// SaveToStorage writes one upload to the file storage backend.
func (s *FileService) SaveToStorage(ctx context.Context, baseURL string, up Upload) (domain.FileDetail, error) {
	name, ext, err := checkUpload(up)
	if err != nil {
		return domain.FileDetail{}, err
	}
	return s.put(ctx, baseURL, up, name, ext)
}

// SaveManyToStorage checks every upload before writing any of them, so a bad
// name or empty file leaves the backend untouched. A backend failure midway
// still leaves the earlier files written.
func (s *FileService) SaveManyToStorage(ctx context.Context, baseURL string, ups []Upload) ([]domain.FileDetail, error) {
	if len(ups) == 0 {
		return nil, ErrEmptyFile
	}

	names := make([]string, len(ups))
	exts := make([]string, len(ups))
	for i, up := range ups {
		name, ext, err := checkUpload(up)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", up.Name, err)
		}
		names[i], exts[i] = name, ext
	}

	out := make([]domain.FileDetail, 0, len(ups))
	for i, up := range ups {
		d, err := s.put(ctx, baseURL, up, names[i], exts[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", up.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func checkUpload(up Upload) (name, ext string, err error) {
	name, ext, err = DocumentName(up.Name)
	if err != nil {
		return "", "", err
	}
	if up.Size <= 0 {
		return "", "", ErrEmptyFile
	}
	return name, ext, nil
}

func (s *FileService) put(ctx context.Context, baseURL string, up Upload, name, ext string) (domain.FileDetail, error) {
	if err := s.Backend.Put(ctx, name, up.Body, up.Size, ContentType(name)); err != nil {
		return domain.FileDetail{}, fmt.Errorf("store upload: %w", err)
	}

	slogx.FromContext(ctx).Info("file uploaded", slog.String("name", name), slog.Int64("size", up.Size))
	return detail(baseURL, name, ext), nil
}

// SaveToDatabase keeps the document bytes in the file_details table.
func (s *FileService) SaveToDatabase(ctx context.Context, baseURL string, up Upload) (domain.FileDetail, error) {
	name, ext, err := DocumentName(up.Name)
	if err != nil {
		return domain.FileDetail{}, err
	}

	data, err := io.ReadAll(up.Body)
	if err != nil {
		return domain.FileDetail{}, err
	}
	if len(data) == 0 {
		return domain.FileDetail{}, ErrEmptyFile
	}

	if err := s.Store.Files().Save(ctx, domain.StoredFile{
		DocumentName: name,
		DocType:      ext,
		Data:         data,
	}); err != nil {
		return domain.FileDetail{}, err
	}

	slogx.FromContext(ctx).Info("file stored in database", slog.String("name", name), slog.Int("size", len(data)))
	return detail(baseURL, name, ext), nil
}

// Open finds a document in the storage backend, falling back to the
// database. The caller closes the returned reader.
func (s *FileService) Open(ctx context.Context, rawName string) (io.ReadCloser, string, error) {
	name, _, err := DocumentName(rawName)
	if err != nil {
		return nil, "", err
	}

	rc, err := s.Backend.Open(ctx, name)
	if err == nil {
		return rc, ContentType(name), nil
	}
	if !errors.Is(err, filestore.ErrNotFound) {
		return nil, "", err
	}

	f, err := s.Store.Files().GetByName(ctx, name)
	if err != nil {
		return nil, "", mapStoreErr(err)
	}
	return io.NopCloser(bytes.NewReader(f.Data)), ContentType(name), nil
}

func detail(baseURL, name, ext string) domain.FileDetail {
	return domain.FileDetail{
		DocumentName: name,
		DocType:      ext,
		DocURL:       strings.TrimRight(baseURL, "/") + DownloadPath + name,
	}
}
