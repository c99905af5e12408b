package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(20, 1, 15)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(20, 2, 15)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// total pas kelipatan per_page tidak menambah halaman kosong
	p = BuildPaginationFromPage(30, 2, 15)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)

	// tabel kosong tetap satu halaman
	p = BuildPaginationFromPage(0, 1, 15)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 15, 15)
		return c.SendString("ok")
	})

	do := func(qs string) Paging {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", "/x"+qs, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		return got
	}

	p := do("")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = do("?page=3")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 30, p.Offset)

	// request boleh menurunkan per_page, tidak menaikkan melewati batas
	p = do("?per_page=5")
	assert.Equal(t, 5, p.PerPage)
	p = do("?per_page=500")
	assert.Equal(t, 15, p.PerPage)

	// nilai rusak jatuh ke default
	p = do("?page=-2&per_page=abc")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestValidationErrorMap(t *testing.T) {
	type form struct {
		Tag  string `validate:"required"`
		Name string `validate:"required,max=3"`
	}
	v := validator.New()

	err := v.Struct(form{Name: "terlalu panjang"})
	require.Error(t, err)

	out := ValidationErrorMap(err)
	assert.Contains(t, out, "Tag")
	assert.Equal(t, []string{"required"}, out["Tag"])
	assert.Equal(t, []string{"max"}, out["Name"])
}
