package resource

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
)

var validate = validator.New()

// Normalizable: DTO yang merapikan payload sebelum validasi (trim dsb).
type Normalizable interface{ Normalize() }

// Hooks: akses typed per-entity yang tidak bisa digenerikkan lewat Descriptor.
type Hooks[M, C, U any] struct {
	NewFromCreate func(req *C, actor *helperAuth.Actor) *M
	ApplyUpdate   func(req *U, m *M) // partial: hanya field non-nil yang di-apply
	Response      func(m *M) any
	ColumnValue   func(m *M, column string) any
	SetFileURL    func(m *M, column, url string)
	IsDeleted     func(m *M) bool // nil untuk tipe tanpa soft delete
}

// Controller: handler CRUD generik untuk satu tipe resource.
type Controller[M, C, U any] struct {
	DB    *gorm.DB
	Blob  *blob.Service
	Desc  Descriptor
	Hooks Hooks[M, C, U]
}

/* =========================================================
   Small helpers
========================================================= */

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, helper.T(helper.LocaleFrom(c), "invalid_id"))
	}
	return id, nil
}

func asUUID(v any) uuid.UUID {
	switch t := v.(type) {
	case uuid.UUID:
		return t
	case *uuid.UUID:
		if t != nil {
			return *t
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func strOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case *string:
		if t != nil {
			return *t
		}
	case uuid.UUID:
		if t == uuid.Nil {
			return ""
		}
		return t.String()
	case *uuid.UUID:
		if t != nil && *t != uuid.Nil {
			return t.String()
		}
	case fmt.Stringer:
		return t.String()
	}
	return ""
}

func isZeroVal(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case *string:
		return t == nil || strings.TrimSpace(*t) == ""
	case uuid.UUID:
		return t == uuid.Nil
	case *uuid.UUID:
		return t == nil || *t == uuid.Nil
	}
	return false
}

func (ctl *Controller[M, C, U]) locale(c *fiber.Ctx) string { return helper.LocaleFrom(c) }

func (ctl *Controller[M, C, U]) deleted(m *M) bool {
	return ctl.Hooks.IsDeleted != nil && ctl.Hooks.IsDeleted(m)
}

// guardScope: actor non-owner hanya boleh menyentuh row campus-nya sendiri.
func (ctl *Controller[M, C, U]) guardScope(actor *helperAuth.Actor, m *M) error {
	if ctl.Desc.ScopeCol == "" {
		return nil
	}
	return helperAuth.EnsureCampusAccess(actor, asUUID(ctl.Hooks.ColumnValue(m, ctl.Desc.ScopeCol)))
}

func (ctl *Controller[M, C, U]) scopeList(db *gorm.DB, actor *helperAuth.Actor) *gorm.DB {
	if ctl.Desc.ScopeCol == "" || actor == nil || actor.IsOwner() || !actor.Scoped() {
		return db
	}
	return db.Where(fmt.Sprintf("%s = ?", pq.QuoteIdentifier(ctl.Desc.ScopeCol)), actor.CampusID)
}

/* =========================================================
   LIST - GET /<res>
========================================================= */

func (ctl *Controller[M, C, U]) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctl.list(c, actor)
}

// PublicList: listing tanpa actor (katalog publik). Scope hanya lewat
// filter yang dideklarasikan.
func (ctl *Controller[M, C, U]) PublicList(c *fiber.Ctx) error {
	return ctl.list(c, nil)
}

func (ctl *Controller[M, C, U]) list(c *fiber.Ctx, actor *helperAuth.Actor) error {
	locale := ctl.locale(c)
	p := ctl.Desc.ParseList(c)

	db := ctl.Desc.ApplyFilters(ctl.DB.Model(new(M)), p)
	db = ctl.scopeList(db, actor)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[%s] list count err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}

	var rows []M
	q := ctl.Desc.ApplyOrder(db, p).
		Limit(p.PerPage).
		Offset((p.Page - 1) * p.PerPage)
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("[%s] list find err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}

	out := make([]any, 0, len(rows))
	for i := range rows {
		out = append(out, ctl.Hooks.Response(&rows[i]))
	}

	return helper.JsonListEx(c, "",
		out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
		p.Echo(),
	)
}

/* =========================================================
   FORM DATA - GET /<res>/form  &  GET /<res>/:id/edit
========================================================= */

type refOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (ctl *Controller[M, C, U]) formRefs(actor *helperAuth.Actor) (fiber.Map, error) {
	out := fiber.Map{}
	for _, fr := range ctl.Desc.FormRefs {
		q := ctl.DB.Table(fr.Table).
			Select(fmt.Sprintf("%s AS id, %s AS label",
				pq.QuoteIdentifier(fr.IDCol), pq.QuoteIdentifier(fr.LabelCol)))
		if fr.AliveCol != "" {
			q = q.Where(fmt.Sprintf("%s IS NULL", pq.QuoteIdentifier(fr.AliveCol)))
		}
		if fr.ScopeCol != "" && actor != nil && actor.Scoped() && !actor.IsOwner() {
			q = q.Where(fmt.Sprintf("%s = ?", pq.QuoteIdentifier(fr.ScopeCol)), actor.CampusID)
		}
		var opts []refOption
		if err := q.Order("label ASC").Scan(&opts).Error; err != nil {
			return nil, err
		}
		out[fr.Key] = opts
	}
	return out, nil
}

func (ctl *Controller[M, C, U]) FormData(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refs, err := ctl.formRefs(actor)
	if err != nil {
		log.Printf("[%s] form refs err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(ctl.locale(c), "fetch_failed"))
	}
	return helper.JsonOK(c, "", fiber.Map{"references": refs})
}

func (ctl *Controller[M, C, U]) EditData(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	locale := ctl.locale(c)

	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := new(M)
	if err := ctl.DB.Where(fmt.Sprintf("%s = ?", ctl.Desc.IDCol), id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
		}
		log.Printf("[%s] edit fetch err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	if err := ctl.guardScope(actor, m); err != nil {
		return helper.FromFiberError(c, err)
	}

	refs, err := ctl.formRefs(actor)
	if err != nil {
		log.Printf("[%s] form refs err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"item":       ctl.Hooks.Response(m),
		"references": refs,
	})
}

/* =========================================================
   Validation helpers (refs + uniques)
========================================================= */

func (ctl *Controller[M, C, U]) checkRefs(m *M, locale string) (map[string][]string, error) {
	errs := map[string][]string{}
	for _, r := range ctl.Desc.Refs {
		v := ctl.Hooks.ColumnValue(m, r.Column)
		if isZeroVal(v) {
			if !r.Optional {
				errs[r.Key] = append(errs[r.Key], helper.T(locale, "ref_missing", r.Key))
			}
			continue
		}
		q := ctl.DB.Table(r.Table).
			Where(fmt.Sprintf("%s = ?", pq.QuoteIdentifier(r.RefColumn)), asUUID(v))
		if r.AliveCol != "" {
			q = q.Where(fmt.Sprintf("%s IS NULL", pq.QuoteIdentifier(r.AliveCol)))
		}
		var cnt int64
		if err := q.Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt == 0 {
			errs[r.Key] = append(errs[r.Key], helper.T(locale, "ref_missing", r.Key))
		}
	}
	return errs, nil
}

// checkUnique: bentrok hanya dihitung terhadap record hidup, lintas campus;
// saat update, record sendiri dikecualikan.
func (ctl *Controller[M, C, U]) checkUnique(m *M, excludeID uuid.UUID, locale string) (map[string][]string, error) {
	errs := map[string][]string{}
	for _, u := range ctl.Desc.Unique {
		v := strOf(ctl.Hooks.ColumnValue(m, u.Column))
		if v == "" {
			continue
		}
		q := ctl.DB.Model(new(M)).
			Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", pq.QuoteIdentifier(u.Column)), v)
		if excludeID != uuid.Nil {
			q = q.Where(fmt.Sprintf("%s <> ?", ctl.Desc.IDCol), excludeID)
		}
		var cnt int64
		if err := q.Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt > 0 {
			errs[u.Key] = append(errs[u.Key], helper.T(locale, "value_taken", u.Key))
		}
	}
	return errs, nil
}

func mergeErrs(dst, src map[string][]string) map[string][]string {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
	return dst
}

/* =========================================================
   File upload (saga: upload dulu, row gagal → kompensasi hapus)
========================================================= */

func (ctl *Controller[M, C, U]) uploadFiles(c *fiber.Ctx, m *M) (uploaded []string, err error) {
	for _, f := range ctl.Desc.Files {
		fh, ferr := c.FormFile(f.Field)
		if ferr != nil || fh == nil {
			continue // field berkas selalu opsional
		}

		base := ""
		if f.NameFrom != "" {
			base = blob.SanitizeBaseName(strOf(ctl.Hooks.ColumnValue(m, f.NameFrom)))
		}
		if base == "" {
			base = blob.GeneratedBaseName()
		}

		ctx := c.UserContext()
		if f.Image {
			url, thumb, uerr := ctl.Blob.UploadImage(ctx, f.Dir, base, fh)
			if uerr != nil {
				return uploaded, uerr
			}
			uploaded = append(uploaded, url)
			ctl.Hooks.SetFileURL(m, f.Column, url)
			if f.ThumbCol != "" && thumb != "" {
				ctl.Hooks.SetFileURL(m, f.ThumbCol, thumb)
			}
		} else {
			allow := f.Allow
			if len(allow) == 0 {
				allow = blob.PDFMIMEs
			}
			url, uerr := ctl.Blob.UploadDocument(ctx, f.Dir, base, fh, allow)
			if uerr != nil {
				return uploaded, uerr
			}
			uploaded = append(uploaded, url)
			ctl.Hooks.SetFileURL(m, f.Column, url)
		}
	}
	return uploaded, nil
}

// fileURLs: semua URL berkas yang tersimpan di record (untuk cleanup).
func (ctl *Controller[M, C, U]) fileURLs(m *M) []string {
	var out []string
	for _, f := range ctl.Desc.Files {
		if u := strOf(ctl.Hooks.ColumnValue(m, f.Column)); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// dbWriteError: error tulis DB → pesan user generic; duplicate unik dikenali
// dan diberi pesan spesifik (satu-satunya kasus yang dibedakan).
func (ctl *Controller[M, C, U]) dbWriteError(c *fiber.Ctx, locale string, err error, genericKey string) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
		if len(ctl.Desc.Unique) > 0 {
			return helper.JsonError(c, fiber.StatusConflict,
				helper.T(locale, "value_taken", ctl.Desc.Unique[0].Key))
		}
		return helper.JsonError(c, fiber.StatusConflict, helper.T(locale, genericKey))
	}
	log.Printf("[%s] db write err: %v", ctl.Desc.Name, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, genericKey))
}

/* =========================================================
   CREATE - POST /<res>
========================================================= */

func (ctl *Controller[M, C, U]) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	locale := ctl.locale(c)

	req := new(C)
	if err := c.BodyParser(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.T(locale, "invalid_payload"))
	}
	if n, ok := any(req).(Normalizable); ok {
		n.Normalize()
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := ctl.Hooks.NewFromCreate(req, actor)
	if err := ctl.guardScope(actor, m); err != nil {
		return helper.FromFiberError(c, err)
	}

	fieldErrs := map[string][]string{}
	if errs, err := ctl.checkRefs(m, locale); err != nil {
		log.Printf("[%s] ref check err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "create_failed"))
	} else {
		mergeErrs(fieldErrs, errs)
	}
	if errs, err := ctl.checkUnique(m, uuid.Nil, locale); err != nil {
		log.Printf("[%s] unique check err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "create_failed"))
	} else {
		mergeErrs(fieldErrs, errs)
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// Berkas ditulis dulu; kalau row gagal, berkas yang barusan ditulis
	// dihapus lagi (kompensasi, bukan transaksi).
	uploaded, err := ctl.uploadFiles(c, m)
	if err != nil {
		ctl.Blob.CleanupBestEffort(c.UserContext(), uploaded...)
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		ctl.Blob.CleanupBestEffort(c.UserContext(), uploaded...)
		return ctl.dbWriteError(c, locale, err, "create_failed")
	}

	return helper.JsonCreated(c,
		helper.T(locale, "created", ctl.Desc.Label(locale)),
		ctl.Hooks.Response(m))
}

/* =========================================================
   SHOW - GET /<res>/:id
========================================================= */

// Show (admin): default hanya record hidup; ?with_deleted=1 menyertakan
// yang ada di sampah.
func (ctl *Controller[M, C, U]) Show(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	withDeleted := c.Query("with_deleted") == "1" || strings.EqualFold(c.Query("with_deleted"), "true")
	return ctl.show(c, actor, withDeleted)
}

// PublicShow: path publik, record di sampah = not found.
func (ctl *Controller[M, C, U]) PublicShow(c *fiber.Ctx) error {
	return ctl.show(c, nil, false)
}

func (ctl *Controller[M, C, U]) show(c *fiber.Ctx, actor *helperAuth.Actor, withDeleted bool) error {
	locale := ctl.locale(c)
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB
	if withDeleted && ctl.Desc.SoftDelete {
		db = db.Unscoped()
	}
	m := new(M)
	if err := db.Where(fmt.Sprintf("%s = ?", ctl.Desc.IDCol), id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
		}
		log.Printf("[%s] show err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	if actor != nil {
		if err := ctl.guardScope(actor, m); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	return helper.JsonOK(c, "", ctl.Hooks.Response(m))
}

/* =========================================================
   UPDATE - PUT /<res>/:id
========================================================= */

func (ctl *Controller[M, C, U]) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	locale := ctl.locale(c)

	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := new(M)
	if err := ctl.DB.Where(fmt.Sprintf("%s = ?", ctl.Desc.IDCol), id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
		}
		log.Printf("[%s] update fetch err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	if err := ctl.guardScope(actor, m); err != nil {
		return helper.FromFiberError(c, err)
	}

	req := new(U)
	if err := c.BodyParser(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.T(locale, "invalid_payload"))
	}
	if n, ok := any(req).(Normalizable); ok {
		n.Normalize()
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// snapshot URL lama sebelum field berkas diganti
	oldURLs := map[string]string{}
	for _, f := range ctl.Desc.Files {
		oldURLs[f.Column] = strOf(ctl.Hooks.ColumnValue(m, f.Column))
		if f.ThumbCol != "" {
			oldURLs[f.ThumbCol] = strOf(ctl.Hooks.ColumnValue(m, f.ThumbCol))
		}
	}

	ctl.Hooks.ApplyUpdate(req, m)

	fieldErrs := map[string][]string{}
	if errs, err := ctl.checkRefs(m, locale); err != nil {
		log.Printf("[%s] ref check err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "update_failed"))
	} else {
		mergeErrs(fieldErrs, errs)
	}
	if errs, err := ctl.checkUnique(m, id, locale); err != nil {
		log.Printf("[%s] unique check err: %v", ctl.Desc.Name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "update_failed"))
	} else {
		mergeErrs(fieldErrs, errs)
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	uploaded, err := ctl.uploadFiles(c, m)
	if err != nil {
		ctl.Blob.CleanupBestEffort(c.UserContext(), uploaded...)
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		ctl.Blob.CleanupBestEffort(c.UserContext(), uploaded...)
		return ctl.dbWriteError(c, locale, err, "update_failed")
	}

	// file lama dihapus hanya setelah file baru + row tersimpan;
	// gagalnya penghapusan tidak menggagalkan update (best-effort)
	var stale []string
	for col, old := range oldURLs {
		if old == "" {
			continue
		}
		if strOf(ctl.Hooks.ColumnValue(m, col)) != old {
			stale = append(stale, old)
		}
	}
	ctl.Blob.CleanupBestEffort(c.UserContext(), stale...)

	return helper.JsonUpdated(c,
		helper.T(locale, "updated", ctl.Desc.Label(locale)),
		ctl.Hooks.Response(m))
}

/* =========================================================
   DESTROY - DELETE /<res>/:id
========================================================= */

func (ctl *Controller[M, C, U]) Destroy(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	locale := ctl.locale(c)

	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := new(M)
	if err := ctl.DB.Unscoped().Where(fmt.Sprintf("%s = ?", ctl.Desc.IDCol), id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// delete ketiga pada record Gone jatuh ke sini: 404, bukan crash
			return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
		}
		log.Printf("[%s] destroy fetch err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	if err := ctl.guardScope(actor, m); err != nil {
		return helper.FromFiberError(c, err)
	}

	outcome, err := destroy(ctl.DB, m, ctl.Desc.SoftDelete, ctl.deleted(m), func() {
		ctl.Blob.CleanupBestEffort(c.UserContext(), ctl.fileURLs(m)...)
	})
	if err != nil {
		log.Printf("[%s] destroy err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "delete_failed"))
	}

	msgKey := "deleted"
	if outcome == OutcomeSoftDeleted {
		msgKey = "soft_deleted"
	}
	return helper.JsonDeleted(c,
		helper.T(locale, msgKey, ctl.Desc.Label(locale)),
		fiber.Map{"id": id, "state": stateAfter(outcome).String()})
}

func stateAfter(o Outcome) State {
	if o == OutcomeSoftDeleted {
		return SoftDeleted
	}
	return Gone
}

/* =========================================================
   RESTORE - POST /<res>/:id/restore (hanya tipe soft-delete)
========================================================= */

func (ctl *Controller[M, C, U]) Restore(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	locale := ctl.locale(c)

	if !ctl.Desc.SoftDelete {
		return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
	}

	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := new(M)
	if err := ctl.DB.Unscoped().Where(fmt.Sprintf("%s = ?", ctl.Desc.IDCol), id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.T(locale, "not_found"))
		}
		log.Printf("[%s] restore fetch err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "fetch_failed"))
	}
	if err := ctl.guardScope(actor, m); err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctl.deleted(m) {
		return helper.JsonError(c, fiber.StatusConflict, helper.T(locale, "not_trashed"))
	}

	if err := restore(ctl.DB, m, ctl.Desc.DeletedAtCol); err != nil {
		log.Printf("[%s] restore err id=%s: %v", ctl.Desc.Name, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, helper.T(locale, "update_failed"))
	}

	return helper.JsonOK(c,
		helper.T(locale, "restored", ctl.Desc.Label(locale)),
		fiber.Map{"id": id, "state": Live.String()})
}
