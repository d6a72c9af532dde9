package auth_test

import (
	"net/http/httptest"
	"testing"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestProtectedMiddleware(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	u := testutils.CreateTestUser(t, database.DB, "guard@example.com", "password123", models.RoleUser)

	t.Run("Error - Missing Authorization header", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/api/prompts/", map[string]interface{}{
			"title": "x",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("Error - Malformed header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/prompts/", nil)
		req.Header.Set("Authorization", "NotBearer something")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Error - Invalid token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/api/prompts/", map[string]interface{}{
			"title": "x",
		}, "not.a.token")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "INVALID_TOKEN")
	})

	t.Run("Success - Valid token binds identity", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, u.ID)

		resp, err := testutils.MakeRequest(app, "POST", "/api/prompts/", map[string]interface{}{
			"title":       "My prompt",
			"description": "A prompt",
			"tags":        []string{"go"},
			"category":    "coding",
		}, tok)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var p models.Prompt
		assert.NoError(t, database.DB.Where("title = ?", "My prompt").First(&p).Error)
		assert.Equal(t, u.ID, p.UserID, "owner must be the authenticated identity")
	})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	regular := testutils.CreateTestUser(t, database.DB, "user@example.com", "password123", models.RoleUser)
	admin := testutils.CreateTestUser(t, database.DB, "admin@example.com", "password123", models.RoleAdmin)

	t.Run("Error - Unauthenticated request never reaches role check", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})

	t.Run("Error - Non-admin gets forbidden", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, regular.ID)

		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, tok)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Success - Admin passes", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, admin.ID)

		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, tok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})

	t.Run("Success - Promotion takes effect with the same token", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, regular.ID)

		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, tok)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		// role is read from the store per request, not from the token
		err = database.DB.Model(&models.User{}).
			Where("id = ?", regular.ID).
			Update("role", models.RoleAdmin).Error
		assert.NoError(t, err)

		resp, err = testutils.MakeRequest(app, "GET", "/api/users/", nil, tok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})
}
