package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
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
	procurementModel "sekolahku_backend/internals/features/procurement/model"

	"sekolahku_backend/internals/constants"
	m "sekolahku_backend/internals/features/assets/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	actor    *helperAuth.Actor
	campusID uuid.UUID
	catID    uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&campusModel.CampusModel{},
		&campusModel.BuildingModel{},
		&campusModel.RoomModel{},
		&campusModel.DepartmentModel{},
		&procurementModel.SupplierModel{},
		&m.AssetCategoryModel{},
		&m.AssetSubcategoryModel{},
		&m.AssetModel{},
	))

	campus := campusModel.CampusModel{CampusCode: "SKL", CampusName: "Kampus Pusat", CampusIsActive: true}
	require.NoError(t, db.Create(&campus).Error)

	cat := m.AssetCategoryModel{CategoryCampusID: campus.CampusID, CategoryCode: "ELK", CategoryName: "Elektronik"}
	require.NoError(t, db.Create(&cat).Error)

	env := &testEnv{campusID: campus.CampusID, catID: cat.CategoryID}
	env.actor = &helperAuth.Actor{
		UserID:   uuid.New(),
		Roles:    []string{constants.RoleAdmin},
		CampusID: campus.CampusID,
		Locale:   helper.LocaleEN,
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocLocale, helper.LocaleEN)
		helperAuth.SetActor(c, env.actor)
		return c.Next()
	})

	bs := blob.NewService(blob.NewLocalStore(t.TempDir(), "/storage"))

	asset := NewAssetController(db, bs)
	g := app.Group("/assets")
	g.Get("/", asset.List)
	g.Get("/form", asset.FormData)
	g.Post("/", asset.Create)
	g.Get("/:id", asset.Show)
	g.Get("/:id/edit", asset.EditData)
	g.Put("/:id", asset.Update)
	g.Delete("/:id", asset.Destroy)
	g.Post("/:id/restore", asset.Restore)

	env.app = app
	env.db = db
	return env
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
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

func (e *testEnv) createAsset(t *testing.T, tag string) map[string]any {
	t.Helper()
	status, body := e.doJSON(t, http.MethodPost, "/assets/", fiber.Map{
		"asset_tag":         tag,
		"asset_name":        "Proyektor " + tag,
		"asset_category_id": e.catID,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body["data"].(map[string]any)
}

func TestAssetCreateDefaultsStatus(t *testing.T) {
	e := newTestEnv(t)

	data := e.createAsset(t, "A-001")
	assert.Equal(t, "A-001", data["asset_tag"])
	assert.Equal(t, m.AssetStatusAvailable, data["asset_status"])
	assert.NotEmpty(t, data["asset_id"])

	var row m.AssetModel
	require.NoError(t, e.db.First(&row, "asset_tag = ?", "A-001").Error)
	assert.Equal(t, e.campusID, row.AssetCampusID)
}

func TestAssetDuplicateTagRejected(t *testing.T) {
	e := newTestEnv(t)
	e.createAsset(t, "A-001")

	status, body := e.doJSON(t, http.MethodPost, "/assets/", fiber.Map{
		"asset_tag":         "A-001",
		"asset_name":        "Proyektor kedua",
		"asset_category_id": e.catID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "asset_tag")
}

func TestAssetTagUniqueAcrossCampuses(t *testing.T) {
	e := newTestEnv(t)
	e.createAsset(t, "A-001")

	campus2 := campusModel.CampusModel{CampusCode: "SKL-2", CampusName: "Kampus Dua", CampusIsActive: true}
	require.NoError(t, e.db.Create(&campus2).Error)

	// owner global menulis ke campus lain: tag tetap bentrok lintas campus
	e.actor = &helperAuth.Actor{
		UserID: uuid.New(),
		Roles:  []string{constants.RoleOwner},
		Locale: helper.LocaleEN,
	}
	status, body := e.doJSON(t, http.MethodPost, "/assets/", fiber.Map{
		"asset_campus_id":   campus2.CampusID,
		"asset_tag":         "A-001",
		"asset_name":        "Proyektor kampus dua",
		"asset_category_id": e.catID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status, "body: %v", body)
	assert.Contains(t, body["errors"].(map[string]any), "asset_tag")
}

func TestAssetMissingRequiredFields(t *testing.T) {
	e := newTestEnv(t)

	status, body := e.doJSON(t, http.MethodPost, "/assets/", fiber.Map{
		"asset_name": "Tanpa tag dan kategori",
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, body["errors"])
}

func TestAssetImageFieldRejectsPDF(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("asset_tag", "A-010"))
	require.NoError(t, w.WriteField("asset_name", "Scanner"))
	require.NoError(t, w.WriteField("asset_category_id", e.catID.String()))
	fw, err := w.CreateFormFile("asset_image", "manual.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4\nisi dokumen\n%%EOF\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/assets/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	// row tidak boleh ikut tertulis
	var cnt int64
	e.db.Model(&m.AssetModel{}).Where("asset_tag = ?", "A-010").Count(&cnt)
	assert.EqualValues(t, 0, cnt)
}

func TestAssetPartialUpdateKeepsOmittedFields(t *testing.T) {
	e := newTestEnv(t)
	data := e.createAsset(t, "A-020")
	id := data["asset_id"].(string)

	status, body := e.doJSON(t, http.MethodPut, "/assets/"+id, fiber.Map{
		"asset_name": "Proyektor ruang rapat",
	})
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	updated := body["data"].(map[string]any)
	assert.Equal(t, "Proyektor ruang rapat", updated["asset_name"])
	assert.Equal(t, "A-020", updated["asset_tag"])
	assert.Equal(t, m.AssetStatusAvailable, updated["asset_status"])
}

func TestAssetDeleteLifecycle(t *testing.T) {
	e := newTestEnv(t)
	data := e.createAsset(t, "A-030")
	id := data["asset_id"].(string)

	// delete pertama: soft
	status, body := e.doJSON(t, http.MethodDelete, "/assets/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "soft_deleted", body["data"].(map[string]any)["state"])

	// masih ada di DB (unscoped), hilang dari list default
	var cnt int64
	e.db.Unscoped().Model(&m.AssetModel{}).Where("asset_id = ?", id).Count(&cnt)
	assert.EqualValues(t, 1, cnt)
	e.db.Model(&m.AssetModel{}).Where("asset_id = ?", id).Count(&cnt)
	assert.EqualValues(t, 0, cnt)

	// delete kedua: hard
	status, body = e.doJSON(t, http.MethodDelete, "/assets/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "gone", body["data"].(map[string]any)["state"])

	e.db.Unscoped().Model(&m.AssetModel{}).Where("asset_id = ?", id).Count(&cnt)
	assert.EqualValues(t, 0, cnt)

	// delete ketiga: not found
	status, _ = e.doJSON(t, http.MethodDelete, "/assets/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAssetTagReusableAfterSoftDelete(t *testing.T) {
	e := newTestEnv(t)
	data := e.createAsset(t, "A-040")
	id := data["asset_id"].(string)

	status, _ := e.doJSON(t, http.MethodDelete, "/assets/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	// tag bekas record di sampah boleh dipakai record baru
	e.createAsset(t, "A-040")
}

func TestAssetRestore(t *testing.T) {
	e := newTestEnv(t)
	data := e.createAsset(t, "A-050")
	id := data["asset_id"].(string)

	// restore record hidup → conflict
	status, _ := e.doJSON(t, http.MethodPost, fmt.Sprintf("/assets/%s/restore", id), nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = e.doJSON(t, http.MethodDelete, "/assets/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := e.doJSON(t, http.MethodPost, fmt.Sprintf("/assets/%s/restore", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "live", body["data"].(map[string]any)["state"])

	// kembali tampil di show admin
	status, _ = e.doJSON(t, http.MethodGet, "/assets/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAssetFormReferences(t *testing.T) {
	e := newTestEnv(t)

	status, body := e.doJSON(t, http.MethodGet, "/assets/form", nil)
	require.Equal(t, http.StatusOK, status)

	refs := body["data"].(map[string]any)["references"].(map[string]any)
	cats := refs["categories"].([]any)
	require.Len(t, cats, 1)
	assert.Equal(t, "Elektronik", cats[0].(map[string]any)["label"])
}

func TestAssetShowInvalidID(t *testing.T) {
	e := newTestEnv(t)
	status, _ := e.doJSON(t, http.MethodGet, "/assets/bukan-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
