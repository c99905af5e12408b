// Package resource adalah mesin CRUD generik: satu controller terparametrisasi
// yang dikonfigurasi deklarasi per-tipe (kolom, filter, sort, page size,
// soft delete, berkas, uniqueness, referensi). Semua entity back office
// (asset, buku, ruangan, dst.) dipakai lewat mesin ini.
package resource

import "sekolahku_backend/internals/helpers"

// UniqueRule: field yang tidak boleh bentrok dengan record hidup lain.
type UniqueRule struct {
	Key    string // nama field di payload/error map, mis. "asset_tag"
	Column string
}

// RefRule: kolom FK yang wajib menunjuk row hidup di tabel target.
type RefRule struct {
	Key       string // nama field di error map
	Column    string // kolom FK di tabel ini
	Table     string // tabel target
	RefColumn string // PK tabel target
	AliveCol  string // kolom deleted_at target; "" = target tanpa soft delete
	Optional  bool   // nilai kosong dilewati
}

// FileRule: satu field berkas (maksimal satu objek per field per record).
type FileRule struct {
	Field    string   // nama field multipart, mis. "asset_image"
	Column   string   // kolom model penyimpan URL publik
	ThumbCol string   // kolom thumbnail; "" = tanpa thumbnail
	Dir      string   // namespace storage: "assets" | "covers" | "pdfs"
	Image    bool     // true → pipeline WebP; false → dokumen raw
	Allow    []string // allowlist MIME untuk dokumen (diabaikan saat Image)
	NameFrom string   // kolom yang nilainya (disanitasi) jadi nama berkas; "" = generated
}

// FormRef: daftar referensi untuk form picker (create/edit).
type FormRef struct {
	Key      string // key di "includes", mis. "categories"
	Table    string
	IDCol    string
	LabelCol string
	AliveCol string // "" = tanpa soft delete
	ScopeCol string // "" = daftar global; else difilter campus actor
}

// Descriptor: deklarasi lengkap satu tipe resource.
type Descriptor struct {
	Name   string            // "asset", "book", ...
	Labels map[string]string // label per locale untuk pesan status

	Table        string
	IDCol        string
	ScopeCol     string // kolom tenant campus; "" = resource global
	DeletedAtCol string // wajib terisi saat SoftDelete

	Searchable  []string          // kolom teks untuk pencarian substring (OR)
	Filters     map[string]string // query key → kolom exact-match
	Sortable    map[string]string // sort key → kolom
	DefaultSort string            // key di Sortable
	DefaultDir  string            // "asc" | "desc"
	PerPage     int               // fixed per tipe (10 / 15)

	SoftDelete bool // true → lifecycle dua langkah Live→SoftDeleted→Gone

	Unique   []UniqueRule
	Refs     []RefRule
	Files    []FileRule
	FormRefs []FormRef
}

// Label mengembalikan label resource untuk locale tertentu.
func (d *Descriptor) Label(locale string) string {
	if v, ok := d.Labels[locale]; ok {
		return v
	}
	if v, ok := d.Labels[helper.DefaultLocale]; ok {
		return v
	}
	return d.Name
}
