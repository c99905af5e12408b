package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

func rolesTestApp(actor *helperAuth.Actor, required ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actor != nil {
			helperAuth.SetActor(c, actor)
		}
		return c.Next()
	})
	app.Get("/x", RequireRoles(required...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doRoles(t *testing.T, app *fiber.App) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestRequireRolesAllows(t *testing.T) {
	actor := &helperAuth.Actor{UserID: uuid.New(), Roles: []string{constants.RoleLibrarian}}
	status, _ := doRoles(t, rolesTestApp(actor, constants.LibrarianAndAbove...))
	assert.Equal(t, http.StatusOK, status)
}

func TestRequireRolesForbidsAsJSON(t *testing.T) {
	actor := &helperAuth.Actor{UserID: uuid.New(), Roles: []string{constants.RoleStaff}}
	status, body := doRoles(t, rolesTestApp(actor, constants.AdminAndAbove...))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "FORBIDDEN", body["error_code"])
}

func TestRequireRolesNoActor(t *testing.T) {
	status, body := doRoles(t, rolesTestApp(nil, constants.AdminAndAbove...))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])
}
