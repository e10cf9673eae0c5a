package middleware

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/internal/testutil"
	"FoodHub/pkg/jwt"
	"FoodHub/pkg/user"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, jwt.JWTService, user.UserRepository) {
	t.Helper()
	db := testutil.NewDB(t)
	repo := user.NewUserRepository(db)
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	m := NewMiddleware()

	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(jwtService, repo), func(c *fiber.Ctx) error {
		auth := c.Locals(LocalsAuth).(domain.AuthContext)
		return c.JSON(fiber.Map{"userId": auth.UserID, "admin": auth.IsAdmin})
	})
	app.Get("/admin", m.AuthMiddleware(jwtService, repo), m.AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, jwtService, repo
}

func createUser(t *testing.T, repo user.UserRepository, email string, admin bool) *entities.User {
	t.Helper()
	u := &entities.User{Fullname: "x", Email: email, Password: "x", Admin: admin}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService, repo := setup(t)
	u := createUser(t, repo, "ana@example.com", false)
	token, err := jwtService.GenerateTokenUser(u.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	app, jwtService, repo := setup(t)
	customer := createUser(t, repo, "ana@example.com", false)
	admin := createUser(t, repo, "admin@example.com", true)

	call := func(id string) int {
		token, err := jwtService.GenerateTokenUser(id)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusForbidden, call(customer.ID.String()))
	assert.Equal(t, fiber.StatusNoContent, call(admin.ID.String()))

	// the flag is read per request, so a demotion applies immediately
	admin.Admin = false
	require.NoError(t, repo.UpdateUser(context.Background(), admin))
	assert.Equal(t, fiber.StatusForbidden, call(admin.ID.String()))

	// a token for a deleted user is rejected
	assert.Equal(t, fiber.StatusUnauthorized, call("4b1f0c4e-7a8b-4e55-9d1c-000000000000"))
}
