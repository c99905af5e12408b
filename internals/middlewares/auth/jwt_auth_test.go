package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const testSecret = "rahasia-test"

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	app.Get("/me", func(c *fiber.Ctx) error {
		if _, err := helperAuth.ActorFrom(c); err != nil {
			return err
		}
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func doAuth(t *testing.T, app *fiber.App, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestAuthJWTMissingTokenIsJSONEnvelope(t *testing.T) {
	app := newAuthTestApp(t)

	status, body := doAuth(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])
}

func TestAuthJWTBadSignatureIsJSONEnvelope(t *testing.T) {
	app := newAuthTestApp(t)
	tok := signToken(t, jwt.MapClaims{"sub": uuid.NewString()}, "secret-yang-salah")

	status, body := doAuth(t, app, tok)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])
}

func TestAuthJWTUnparsableUserID(t *testing.T) {
	app := newAuthTestApp(t)
	tok := signToken(t, jwt.MapClaims{"sub": "bukan-uuid"}, testSecret)

	status, body := doAuth(t, app, tok)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])
}

func TestAuthJWTValidTokenBuildsActor(t *testing.T) {
	userID := uuid.New()
	campusID := uuid.New()

	var seen *helperAuth.Actor
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	app.Get("/me", func(c *fiber.Ctx) error {
		a, err := helperAuth.ActorFrom(c)
		if err != nil {
			return err
		}
		seen = a
		return c.SendString("ok")
	})

	tok := signToken(t, jwt.MapClaims{
		"sub":       userID.String(),
		"roles":     []string{"librarian"},
		"campus_id": campusID.String(),
	}, testSecret)

	status, _ := doAuth(t, app, tok)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, campusID, seen.CampusID)
	assert.True(t, seen.HasRole("librarian"))
}
