// Package blob menangani berkas terasosiasi resource (gambar & dokumen):
// sanitasi nama, probing anti-tabrakan, allowlist MIME, upload/hapus.
package blob

import (
	"context"
	"io"
)

// ObjectStore adalah port ke penyimpanan objek. Implementasi: Aliyun OSS
// (produksi) dan LocalStore (dev/test).
type ObjectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	// KeyFromPublicURL kebalikan PublicURL; "" jika URL bukan milik store ini.
	KeyFromPublicURL(publicURL string) string
}

// Allowlist MIME per jenis field (spec: image = JPEG/PNG/WEBP/GIF, dokumen = PDF).
var (
	ImageMIMEs = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	PDFMIMEs   = []string{"application/pdf"}
)
