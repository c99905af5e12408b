package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	campusModel "sekolahku_backend/internals/features/campus/model"

	"sekolahku_backend/internals/constants"
	m "sekolahku_backend/internals/features/library/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
)

type bookTestEnv struct {
	app      *fiber.App
	db       *gorm.DB
	campusID uuid.UUID
}

func newBookTestEnv(t *testing.T) *bookTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&campusModel.CampusModel{},
		&m.BookcaseModel{},
		&m.ShelfModel{},
		&m.BookModel{},
	))

	campus := campusModel.CampusModel{CampusCode: "SKL", CampusName: "Kampus Pusat", CampusIsActive: true}
	require.NoError(t, db.Create(&campus).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocLocale, helper.LocaleEN)
		return c.Next()
	})

	bs := blob.NewService(blob.NewLocalStore(t.TempDir(), "/storage"))
	book := NewBookController(db, bs)

	// jalur publik tanpa actor, jalur admin dengan actor librarian
	pub := app.Group("/public/books")
	pub.Get("/", book.PublicList)
	pub.Get("/:id", book.PublicShow)

	adm := app.Group("/books", func(c *fiber.Ctx) error {
		helperAuth.SetActor(c, &helperAuth.Actor{
			UserID:   uuid.New(),
			Roles:    []string{constants.RoleLibrarian},
			CampusID: campus.CampusID,
			Locale:   helper.LocaleEN,
		})
		return c.Next()
	})
	adm.Get("/", book.List)
	adm.Post("/", book.Create)
	adm.Get("/:id", book.Show)
	adm.Put("/:id", book.Update)
	adm.Delete("/:id", book.Destroy)
	adm.Post("/:id/restore", book.Restore)

	return &bookTestEnv{app: app, db: db, campusID: campus.CampusID}
}

func (e *bookTestEnv) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func (e *bookTestEnv) seedBook(t *testing.T, isbn, title string) uuid.UUID {
	t.Helper()
	row := m.BookModel{
		BookCampusID: e.campusID,
		BookISBN:     isbn,
		BookTitle:    title,
		BookCopies:   1,
	}
	require.NoError(t, e.db.Create(&row).Error)
	return row.BookID
}

func listIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	items, ok := body["data"].([]any)
	require.True(t, ok, "body: %v", body)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.(map[string]any)["book_id"].(string))
	}
	return ids
}

func TestBookPublicShowHidesTrashed(t *testing.T) {
	e := newBookTestEnv(t)
	id := e.seedBook(t, "978-1", "Laskar Pelangi")

	status, _ := e.doJSON(t, http.MethodGet, "/public/books/"+id.String(), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = e.doJSON(t, http.MethodDelete, "/books/"+id.String(), nil)
	require.Equal(t, http.StatusOK, status)

	// publik: record di sampah tidak ada
	status, _ = e.doJSON(t, http.MethodGet, "/public/books/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	// admin tanpa flag juga 404, dengan with_deleted tetap kelihatan
	status, _ = e.doJSON(t, http.MethodGet, "/books/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = e.doJSON(t, http.MethodGet, "/books/"+id.String()+"?with_deleted=1", nil)
	assert.Equal(t, http.StatusOK, status)

	// restore mengembalikan visibilitas publik
	status, _ = e.doJSON(t, http.MethodPost, "/books/"+id.String()+"/restore", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = e.doJSON(t, http.MethodGet, "/public/books/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestBookListPaginationDisjoint(t *testing.T) {
	e := newBookTestEnv(t)
	for i := 0; i < 20; i++ {
		e.seedBook(t, fmt.Sprintf("978-%03d", i), fmt.Sprintf("Buku %03d", i))
	}

	status, page1 := e.doJSON(t, http.MethodGet, "/public/books/?page=1", nil)
	require.Equal(t, http.StatusOK, status)
	status, page2 := e.doJSON(t, http.MethodGet, "/public/books/?page=2", nil)
	require.Equal(t, http.StatusOK, status)

	ids1 := listIDs(t, page1)
	ids2 := listIDs(t, page2)
	assert.Len(t, ids1, 15)
	assert.Len(t, ids2, 5)
	for _, id := range ids2 {
		assert.NotContains(t, ids1, id)
	}

	pg := page1["pagination"].(map[string]any)
	assert.EqualValues(t, 20, pg["total"])
	assert.EqualValues(t, 2, pg["total_pages"])
	assert.Equal(t, true, pg["has_next"])
	assert.Equal(t, false, pg["has_prev"])
}

func TestBookListSearchMatchesAnyColumn(t *testing.T) {
	e := newBookTestEnv(t)
	byTitle := e.seedBook(t, "978-001", "Laskar Pelangi")
	byISBN := e.seedBook(t, "LASKAR-2", "Bumi Manusia")
	e.seedBook(t, "978-003", "Negeri 5 Menara")

	// substring case-insensitive, cocok di kolom mana pun yang searchable
	status, body := e.doJSON(t, http.MethodGet, "/public/books/?search=lAsKaR", nil)
	require.Equal(t, http.StatusOK, status)

	ids := listIDs(t, body)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, byTitle.String())
	assert.Contains(t, ids, byISBN.String())
	assert.Equal(t, "lAsKaR", body["includes"].(map[string]any)["search"])

	// alias q berperilaku sama
	status, body = e.doJSON(t, http.MethodGet, "/public/books/?q=laskar", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listIDs(t, body), 2)
}

func TestBookListDeclaredFilters(t *testing.T) {
	e := newBookTestEnv(t)
	gramedia := "Gramedia"
	mizan := "Mizan"

	a := m.BookModel{BookCampusID: e.campusID, BookISBN: "978-a", BookTitle: "Satu", BookPublisher: &gramedia, BookCopies: 1}
	b := m.BookModel{BookCampusID: e.campusID, BookISBN: "978-b", BookTitle: "Dua", BookPublisher: &mizan, BookCopies: 1}
	require.NoError(t, e.db.Create(&a).Error)
	require.NoError(t, e.db.Create(&b).Error)

	status, body := e.doJSON(t, http.MethodGet, "/public/books/?publisher=Gramedia", nil)
	require.Equal(t, http.StatusOK, status)
	ids := listIDs(t, body)
	require.Len(t, ids, 1)
	assert.Equal(t, a.BookID.String(), ids[0])

	filters := body["includes"].(map[string]any)["filters"].(map[string]any)
	assert.Equal(t, "Gramedia", filters["publisher"])

	// key yang tidak dideklarasikan diabaikan, bukan error
	status, body = e.doJSON(t, http.MethodGet, "/public/books/?warna=merah", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listIDs(t, body), 2)
}

func TestBookListSortReversal(t *testing.T) {
	e := newBookTestEnv(t)
	// judul sengaja seri supaya tie-break ikut teruji
	e.seedBook(t, "978-a", "Algoritma")
	e.seedBook(t, "978-b", "Algoritma")
	e.seedBook(t, "978-c", "Basis Data")
	e.seedBook(t, "978-d", "Basis Data")
	e.seedBook(t, "978-e", "Jaringan")

	status, ascBody := e.doJSON(t, http.MethodGet, "/public/books/?sort=title&direction=asc", nil)
	require.Equal(t, http.StatusOK, status)
	status, descBody := e.doJSON(t, http.MethodGet, "/public/books/?sort=title&direction=desc", nil)
	require.Equal(t, http.StatusOK, status)

	asc := listIDs(t, ascBody)
	desc := listIDs(t, descBody)
	require.Len(t, asc, 5)
	require.Len(t, desc, 5)
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestBookListUnknownSortFallsBack(t *testing.T) {
	e := newBookTestEnv(t)
	e.seedBook(t, "978-a", "Zebra")
	e.seedBook(t, "978-b", "Anoa")

	status, bogus := e.doJSON(t, http.MethodGet, "/public/books/?sort=harga_diri", nil)
	require.Equal(t, http.StatusOK, status)
	status, dflt := e.doJSON(t, http.MethodGet, "/public/books/?sort=title", nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, listIDs(t, dflt), listIDs(t, bogus))
	assert.Equal(t, "title", bogus["includes"].(map[string]any)["sort"])
}

func TestBookListOutOfRangePageEmpty(t *testing.T) {
	e := newBookTestEnv(t)
	e.seedBook(t, "978-a", "Satu")

	status, body := e.doJSON(t, http.MethodGet, "/public/books/?page=99", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, listIDs(t, body))

	pg := body["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pg["total"])
	assert.EqualValues(t, 0, pg["count"])
}

func TestBookSoftDeleteFreesISBN(t *testing.T) {
	e := newBookTestEnv(t)
	id := e.seedBook(t, "978-x", "Edisi Lama")

	status, _ := e.doJSON(t, http.MethodDelete, "/books/"+id.String(), nil)
	require.Equal(t, http.StatusOK, status)

	status, body := e.doJSON(t, http.MethodPost, "/books/", fiber.Map{
		"book_isbn":  "978-x",
		"book_title": "Edisi Baru",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
}
