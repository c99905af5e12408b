package helper

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locale dipilih per-request (?lang= atau Accept-Language), default "id".
const (
	LocaleID      = "id"
	LocaleEN      = "en"
	DefaultLocale = LocaleID

	LocLocale = "locale" // fiber locals key
)

var messages = map[string]map[string]string{
	LocaleID: {
		"created":          "%s berhasil dibuat",
		"updated":          "%s berhasil diperbarui",
		"soft_deleted":     "%s dipindahkan ke sampah",
		"deleted":          "%s berhasil dihapus permanen",
		"restored":         "%s berhasil dipulihkan",
		"not_found":        "Data tidak ditemukan",
		"forbidden":        "Akses ditolak",
		"invalid_payload":  "Payload tidak valid",
		"invalid_id":       "ID tidak valid",
		"value_taken":      "%s sudah digunakan",
		"ref_missing":      "%s tidak ditemukan",
		"fetch_failed":     "Gagal mengambil data",
		"create_failed":    "Gagal membuat data, coba lagi",
		"update_failed":    "Gagal memperbarui data, coba lagi",
		"delete_failed":    "Gagal menghapus data",
		"upload_failed":    "Gagal mengunggah berkas",
		"unsupported_file": "Tipe berkas tidak didukung untuk %s",
		"not_trashed":      "Data tidak berada di sampah",
	},
	LocaleEN: {
		"created":          "%s created",
		"updated":          "%s updated",
		"soft_deleted":     "%s moved to trash",
		"deleted":          "%s permanently deleted",
		"restored":         "%s restored",
		"not_found":        "Not found",
		"forbidden":        "Access denied",
		"invalid_payload":  "Invalid payload",
		"invalid_id":       "Invalid ID",
		"value_taken":      "%s is already in use",
		"ref_missing":      "%s does not exist",
		"fetch_failed":     "Failed to fetch data",
		"create_failed":    "Failed to create, please try again",
		"update_failed":    "Failed to update, please try again",
		"delete_failed":    "Failed to delete",
		"upload_failed":    "File upload failed",
		"unsupported_file": "Unsupported file type for %s",
		"not_trashed":      "Record is not in trash",
	},
}

// ResolveLocale: ?lang= menang, lalu Accept-Language, lalu default.
func ResolveLocale(c *fiber.Ctx) string {
	if l := normalizeLocale(c.Query("lang")); l != "" {
		return l
	}
	if l := normalizeLocale(c.Get(fiber.HeaderAcceptLanguage)); l != "" {
		return l
	}
	return DefaultLocale
}

func normalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	// "en-US,en;q=0.9" → "en"
	if i := strings.IndexAny(raw, ",;-"); i > 0 {
		raw = raw[:i]
	}
	if _, ok := messages[raw]; ok {
		return raw
	}
	return ""
}

// LocaleFrom mengambil locale yang sudah di-set middleware; fallback resolve ulang.
func LocaleFrom(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocLocale).(string); ok && v != "" {
		return v
	}
	return ResolveLocale(c)
}

// T: ambil pesan terlokalisasi; args di-format ke placeholder.
func T(locale, key string, args ...any) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[DefaultLocale]
	}
	msg, ok := table[key]
	if !ok {
		msg = messages[DefaultLocale][key]
	}
	if msg == "" {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
