package blob

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalStore(t.TempDir(), "/storage"))
}

// fileHeader membangun *multipart.FileHeader dari isi mentah,
// seperti yang diterima handler dari form upload.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< >>\n%%EOF\n")

func TestSanitizeBaseName(t *testing.T) {
	assert.Equal(t, "A-001", SanitizeBaseName("A-001"))
	assert.Equal(t, "laporan_2026", SanitizeBaseName("laporan_2026"))
	assert.Equal(t, "abc", SanitizeBaseName("a b/c!"))
	assert.Equal(t, "", SanitizeBaseName("../../"))
}

func TestResolveKeyProbesSequentially(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	key, err := svc.ResolveKey(ctx, "docs", "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "docs/report.pdf", key)

	require.NoError(t, svc.Store.Put(ctx, key, bytes.NewReader(pdfBytes), "application/pdf"))

	key, err = svc.ResolveKey(ctx, "docs", "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "docs/report(1).pdf", key)

	require.NoError(t, svc.Store.Put(ctx, key, bytes.NewReader(pdfBytes), "application/pdf"))

	key, err = svc.ResolveKey(ctx, "docs", "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "docs/report(2).pdf", key)
}

func TestUploadDocumentCollision(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	url1, err := svc.UploadDocument(ctx, "pdfs", "PO-2026-001", fileHeader(t, "po.pdf", pdfBytes), PDFMIMEs)
	require.NoError(t, err)
	assert.Equal(t, "/storage/pdfs/PO-2026-001.pdf", url1)

	url2, err := svc.UploadDocument(ctx, "pdfs", "PO-2026-001", fileHeader(t, "po.pdf", pdfBytes), PDFMIMEs)
	require.NoError(t, err)
	assert.Equal(t, "/storage/pdfs/PO-2026-001(1).pdf", url2)

	// dua-duanya harus bisa diambil kembali
	for _, u := range []string{url1, url2} {
		rc, err := svc.Store.Get(ctx, svc.Store.KeyFromPublicURL(u))
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		assert.Equal(t, pdfBytes, got)
	}
}

func TestUploadDocumentRejectsWrongMIME(t *testing.T) {
	svc := newTestService(t)

	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	_, err := svc.UploadDocument(context.Background(), "pdfs", "bukan-pdf", fileHeader(t, "img.png", pngBytes), PDFMIMEs)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, fe.Code)

	// tidak ada objek tertulis
	exists, err := svc.Store.Exists(context.Background(), "pdfs/bukan-pdf.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteByPublicURLRemovesThumb(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Store.Put(ctx, "assets/A-001.webp", bytes.NewReader([]byte("x")), "image/webp"))
	require.NoError(t, svc.Store.Put(ctx, "assets/A-001_thumb.webp", bytes.NewReader([]byte("y")), "image/webp"))

	require.NoError(t, svc.DeleteByPublicURL(ctx, "/storage/assets/A-001.webp"))

	exists, _ := svc.Store.Exists(ctx, "assets/A-001.webp")
	assert.False(t, exists)
	exists, _ = svc.Store.Exists(ctx, "assets/A-001_thumb.webp")
	assert.False(t, exists)
}
