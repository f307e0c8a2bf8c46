package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aussiebroadwan/restbook/internal/api/filestore"
	"github.com/stretchr/testify/require"
)

func TestDocumentName(t *testing.T) {
	tests := []struct {
		raw      string
		wantName string
		wantExt  string
		wantErr  error
	}{
		{"report.pdf", "report.pdf", ".pdf", nil},
		{"My Holiday Photo.JPG", "My-Holiday-Photo.JPG", ".jpg", nil},
		{"scan.jpeg", "scan.jpeg", ".jpeg", nil},
		{"logo.PNG", "logo.PNG", ".png", nil},
		{"notes.txt", "", "", ErrUnsupportedFileType},
		{"archive", "", "", ErrUnsupportedFileType},
		{"../etc/passwd.png", "", "", ErrInvalidFileName},
		{`dir\file.pdf`, "", "", ErrInvalidFileName},
		{"  ", "", "", ErrInvalidFileName},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, ext, err := DocumentName(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantName, name)
			require.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "application/pdf", ContentType("a.pdf"))
	require.Equal(t, "application/jpeg", ContentType("a.JPEG"))
}

func newFileService(t *testing.T) *FileService {
	t.Helper()
	disk, err := filestore.NewDisk(t.TempDir())
	require.NoError(t, err)
	return &FileService{Store: newTestStore(t), Backend: disk}
}

func upload(name, body string) Upload {
	return Upload{Name: name, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestFileService(t *testing.T) {
	ctx := context.Background()
	svc := newFileService(t)
	base := "http://localhost:8080"

	t.Run("storage round trip", func(t *testing.T) {
		d, err := svc.SaveToStorage(ctx, base, upload("annual report.pdf", "%PDF-1.7"))
		require.NoError(t, err)
		require.Equal(t, "annual-report.pdf", d.DocumentName)
		require.Equal(t, ".pdf", d.DocType)
		require.Equal(t, base+"/api/file/v1/downloadFile/annual-report.pdf", d.DocURL)

		rc, ct, err := svc.Open(ctx, "annual-report.pdf")
		require.NoError(t, err)
		require.Equal(t, "application/pdf", ct)
		require.Equal(t, "%PDF-1.7", readAll(t, rc))
	})

	t.Run("database fallback", func(t *testing.T) {
		_, err := svc.SaveToDatabase(ctx, base, Upload{Name: "db.png", Body: bytes.NewReader([]byte{0x89, 'P', 'N', 'G'})})
		require.NoError(t, err)

		rc, ct, err := svc.Open(ctx, "db.png")
		require.NoError(t, err)
		require.Equal(t, "application/png", ct)
		require.Equal(t, "\x89PNG", readAll(t, rc))
	})

	t.Run("multiple", func(t *testing.T) {
		ds, err := svc.SaveManyToStorage(ctx, base, []Upload{upload("a.jpg", "1"), upload("b.png", "2")})
		require.NoError(t, err)
		require.Len(t, ds, 2)

		_, err = svc.SaveManyToStorage(ctx, base, []Upload{upload("c.jpg", "1"), upload("d.exe", "2")})
		require.ErrorIs(t, err, ErrUnsupportedFileType)
		_, _, err = svc.Open(ctx, "c.jpg")
		require.ErrorIs(t, err, ErrNotFound, "nothing is written when a later upload is rejected")

		_, err = svc.SaveManyToStorage(ctx, base, []Upload{upload("e.png", "1"), upload("f.pdf", "")})
		require.ErrorIs(t, err, ErrEmptyFile)
		_, _, err = svc.Open(ctx, "e.png")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.SaveManyToStorage(ctx, base, nil)
		require.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := svc.SaveToStorage(ctx, base, upload("script.sh", "echo"))
		require.ErrorIs(t, err, ErrUnsupportedFileType)

		_, err = svc.SaveToStorage(ctx, base, upload("empty.pdf", ""))
		require.ErrorIs(t, err, ErrEmptyFile)

		_, err = svc.SaveToDatabase(ctx, base, upload("empty.pdf", ""))
		require.ErrorIs(t, err, ErrEmptyFile)

		_, _, err = svc.Open(ctx, "missing.pdf")
		require.ErrorIs(t, err, ErrNotFound)

		_, _, err = svc.Open(ctx, "..%2f..%2fsecret.pdf")
		require.ErrorIs(t, err, ErrInvalidFileName)
	})
}
