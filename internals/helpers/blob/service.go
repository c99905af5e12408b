package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// batas ukuran upload (guard ringan di atas limit body parser)
const maxUploadSize = int64(5 * 1024 * 1024)

// Service adalah facade upload/hapus yang seragam untuk controller.
type Service struct {
	Store ObjectStore
}

func NewService(store ObjectStore) *Service { return &Service{Store: store} }

// SanitizeBaseName: buang semua karakter di luar [A-Za-z0-9_-].
// Dipakai saat nama berkas diturunkan dari teks identitas user (mis. asset tag).
func SanitizeBaseName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GeneratedBaseName: nama ber-prefix timestamp untuk upload tanpa tag.
func GeneratedBaseName() string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}

// ResolveKey menjalankan probing anti-tabrakan:
// base.ext → base(1).ext → base(2).ext → ... sampai kosong.
// Probing sekuensial, bukan hash konten; dua upload serentak dengan base sama
// bisa balapan melewati probe (limitation terdokumentasi, bukan jaminan).
func (s *Service) ResolveKey(ctx context.Context, dir, base, ext string) (string, error) {
	if base == "" {
		base = GeneratedBaseName()
	}
	candidate := dir + "/" + base + ext
	for i := 1; ; i++ {
		exists, err := s.Store.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s/%s(%d)%s", dir, base, i, ext)
	}
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > maxUploadSize {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Berkas terlalu besar (maks %d bytes)", maxUploadSize))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()
	return io.ReadAll(src)
}

// checkMIME: deteksi MIME dari isi berkas, cocokkan dengan allowlist field.
// Mismatch → 415, tidak ada yang ditulis.
func checkMIME(data []byte, allow []string) (string, error) {
	mt := mimetype.Detect(data)
	for _, a := range allow {
		if mt.Is(a) {
			return mt.String(), nil
		}
	}
	return "", fiber.NewError(fiber.StatusUnsupportedMediaType,
		fmt.Sprintf("Tipe berkas %s tidak diizinkan", mt.String()))
}

// UploadImage: cek allowlist image → re-encode WebP → tulis ke store.
// Mengembalikan URL publik + URL thumbnail (thumbnail best-effort).
func (s *Service) UploadImage(ctx context.Context, dir, base string, fh *multipart.FileHeader) (publicURL, thumbURL string, err error) {
	data, err := readAll(fh)
	if err != nil {
		return "", "", err
	}
	if _, err := checkMIME(data, ImageMIMEs); err != nil {
		return "", "", err
	}

	webpData, err := convertToWebP(data, fh.Filename)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Gambar tidak bisa diproses (pakai jpg/png/webp/gif)")
	}

	key, err := s.ResolveKey(ctx, dir, base, ".webp")
	if err != nil {
		return "", "", err
	}
	if err := s.Store.Put(ctx, key, bytes.NewReader(webpData), "image/webp"); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke storage")
	}

	// thumbnail: gagal encode/tulis tidak membatalkan upload utama
	if thumbData, terr := makeThumbWebP(data, fh.Filename); terr == nil {
		thumbKey := strings.TrimSuffix(key, ".webp") + "_thumb.webp"
		if perr := s.Store.Put(ctx, thumbKey, bytes.NewReader(thumbData), "image/webp"); perr == nil {
			thumbURL = s.Store.PublicURL(thumbKey)
		} else {
			log.Printf("[BLOB] thumb put gagal key=%s err=%v", thumbKey, perr)
		}
	}

	return s.Store.PublicURL(key), thumbURL, nil
}

// UploadDocument: cek allowlist (mis. PDF) → tulis apa adanya.
func (s *Service) UploadDocument(ctx context.Context, dir, base string, fh *multipart.FileHeader, allow []string) (string, error) {
	data, err := readAll(fh)
	if err != nil {
		return "", err
	}
	ct, err := checkMIME(data, allow)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".bin"
	}
	key, err := s.ResolveKey(ctx, dir, base, ext)
	if err != nil {
		return "", err
	}
	if err := s.Store.Put(ctx, key, bytes.NewReader(data), ct); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke storage")
	}
	return s.Store.PublicURL(key), nil
}

// DeleteByPublicURL: hapus objek (plus pasangan thumbnail-nya kalau ada).
// Best-effort: error dilaporkan ke caller, caller yang memutuskan fatal/tidak.
func (s *Service) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key := s.Store.KeyFromPublicURL(strings.TrimSpace(publicURL))
	if key == "" {
		return nil
	}
	if strings.HasSuffix(key, ".webp") && !strings.HasSuffix(key, "_thumb.webp") {
		thumbKey := strings.TrimSuffix(key, ".webp") + "_thumb.webp"
		if err := s.Store.Delete(ctx, thumbKey); err != nil {
			log.Printf("[BLOB] hapus thumb gagal key=%s err=%v", thumbKey, err)
		}
	}
	return s.Store.Delete(ctx, key)
}

// CleanupBestEffort: dipakai saat replace file lama / kompensasi saga.
// Kegagalan hanya dicatat, tidak menggagalkan operasi induk.
func (s *Service) CleanupBestEffort(ctx context.Context, publicURLs ...string) {
	for _, u := range publicURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if err := s.DeleteByPublicURL(ctx, u); err != nil {
			log.Printf("[BLOB] cleanup gagal url=%s err=%v", u, err)
		}
	}
}
