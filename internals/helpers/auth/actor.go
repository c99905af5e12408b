// Actor adalah konteks request eksplisit: siapa yang login, role apa,
// campus scope mana, locale apa. Semua handler membaca dari sini,
// tidak ada state global.
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Locals keys (diisi middleware AuthJWT + locale middleware)
const (
	LocActor = "actor"
)

type Actor struct {
	UserID   uuid.UUID
	Roles    []string
	CampusID uuid.UUID // uuid.Nil = tanpa scope campus (owner global)
	Locale   string
}

func (a *Actor) HasRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range a.Roles {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

func (a *Actor) IsOwner() bool { return a.HasRole(constants.RoleOwner) }

// Scoped: true jika actor terikat ke satu campus.
func (a *Actor) Scoped() bool { return a.CampusID != uuid.Nil }

// ActorFrom mengambil actor dari locals. Error 401 kalau belum di-set
// (route tanpa AuthJWT tidak boleh memanggil ini).
func ActorFrom(c *fiber.Ctx) (*Actor, error) {
	if v, ok := c.Locals(LocActor).(*Actor); ok && v != nil {
		return v, nil
	}
	return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}

func SetActor(c *fiber.Ctx, a *Actor) { c.Locals(LocActor, a) }

// EnsureRoles: guard role; 403 JSON konsisten (bukan redirect).
func EnsureRoles(c *fiber.Ctx, roles ...string) (*Actor, error) {
	actor, err := ActorFrom(c)
	if err != nil {
		return nil, err
	}
	if !actor.HasRole(roles...) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	return actor, nil
}

// EnsureCampusAccess: actor harus owner global atau ber-scope ke campus target.
func EnsureCampusAccess(actor *Actor, campusID uuid.UUID) error {
	if actor.IsOwner() {
		return nil
	}
	if !actor.Scoped() || actor.CampusID != campusID {
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	return nil
}
