package resource

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
)

// ListParams: state efektif search/filter/sort/paging sebuah request list.
// Di-echo kembali di response supaya klien bisa mempertahankan state
// antar halaman.
type ListParams struct {
	Search  string
	Filters map[string]string // hanya filter yang hadir & non-kosong
	Sort    string
	Dir     string
	Page    int
	PerPage int
}

// ParseList membaca query params sesuai deklarasi tipe.
// - search (alias q): substring case-insensitive
// - filter: hanya key yang dideklarasikan; kosong = tanpa constraint
// - sort + direction (alias order): key tak dikenal → fallback default, tidak error
// - page: per_page fixed per tipe
func (d *Descriptor) ParseList(c *fiber.Ctx) ListParams {
	pg := helper.ResolvePaging(c, d.PerPage, d.PerPage)

	search := strings.TrimSpace(c.Query("search"))
	if search == "" {
		search = strings.TrimSpace(c.Query("q"))
	}

	filters := map[string]string{}
	for key := range d.Filters {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			filters[key] = v
		}
	}

	sort := strings.ToLower(strings.TrimSpace(c.Query("sort")))
	if _, ok := d.Sortable[sort]; !ok {
		sort = d.DefaultSort
	}

	dir := strings.ToLower(strings.TrimSpace(c.Query("direction")))
	if dir == "" {
		dir = strings.ToLower(strings.TrimSpace(c.Query("order")))
	}
	if dir != "asc" && dir != "desc" {
		dir = d.DefaultDir
		if dir == "" {
			dir = "asc"
		}
	}

	return ListParams{
		Search:  search,
		Filters: filters,
		Sort:    sort,
		Dir:     dir,
		Page:    pg.Page,
		PerPage: pg.PerPage,
	}
}

// ApplyFilters menempelkan search + filter exact-match ke query.
func (d *Descriptor) ApplyFilters(db *gorm.DB, p ListParams) *gorm.DB {
	if p.Search != "" && len(d.Searchable) > 0 {
		pat := "%" + strings.ToLower(p.Search) + "%"
		conds := make([]string, 0, len(d.Searchable))
		args := make([]any, 0, len(d.Searchable))
		for _, col := range d.Searchable {
			conds = append(conds, fmt.Sprintf("LOWER(COALESCE(%s, '')) LIKE ?", pq.QuoteIdentifier(col)))
			args = append(args, pat)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}

	for key, val := range p.Filters {
		col, ok := d.Filters[key]
		if !ok {
			continue
		}
		db = db.Where(fmt.Sprintf("%s = ?", pq.QuoteIdentifier(col)), val)
	}
	return db
}

// ApplyOrder menempelkan ORDER BY sesuai sort key + arah.
func (d *Descriptor) ApplyOrder(db *gorm.DB, p ListParams) *gorm.DB {
	dir := "ASC"
	if p.Dir == "desc" {
		dir = "DESC"
	}
	col := d.Sortable[p.Sort]
	if col == "" {
		col = d.IDCol
	}
	// secondary order by id: urutan deterministik saat nilai sort seri,
	// ikut arah supaya asc dan desc persis saling kebalikan
	order := fmt.Sprintf("%s %s", pq.QuoteIdentifier(col), dir)
	if col != d.IDCol {
		order += fmt.Sprintf(", %s %s", pq.QuoteIdentifier(d.IDCol), dir)
	}
	return db.Order(order)
}

// Echo: state efektif untuk field "includes" di response list.
func (p ListParams) Echo() fiber.Map {
	return fiber.Map{
		"search":    p.Search,
		"filters":   p.Filters,
		"sort":      p.Sort,
		"direction": p.Dir,
	}
}
