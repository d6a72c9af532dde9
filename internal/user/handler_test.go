package user_test

import (
	"fmt"
	"testing"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestUserHandlers(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "admin@example.com", "password123", models.RoleAdmin)
	target := testutils.CreateTestUser(t, database.DB, "target@example.com", "password123", models.RoleUser)

	adminTok := testutils.GetAuthToken(t, admin.ID)
	targetTok := testutils.GetAuthToken(t, target.ID)

	t.Run("Error - Regular user cannot list users", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, targetTok)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("Success - Admin lists users without password hashes", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		users := result.Data.([]interface{})
		assert.Len(t, users, 2)
		for _, raw := range users {
			u := raw.(map[string]interface{})
			_, hasPassword := u["password"]
			assert.False(t, hasPassword, "password hash must not be serialized")
		}
	})

	t.Run("Success - Admin gets single user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/users/%d", target.ID), nil, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "target@example.com", data["email"])
	})

	t.Run("Error - Unknown user is 404", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/99999", nil, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("Error - Invalid role value rejected", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/users/%d", target.ID), map[string]interface{}{
			"role": "superuser",
		}, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Success - Admin promotes user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/users/%d", target.ID), map[string]interface{}{
			"role": models.RoleAdmin,
		}, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var u models.User
		assert.NoError(t, database.DB.First(&u, target.ID).Error)
		assert.Equal(t, models.RoleAdmin, u.Role)

		// promotion is visible on the next request with the old token
		resp, err = testutils.MakeRequest(app, "GET", "/api/users/", nil, targetTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})

	t.Run("Success - Admin deletes user", func(t *testing.T) {
		victim := testutils.CreateTestUser(t, database.DB, "victim@example.com", "password123", models.RoleUser)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/users/%d", victim.ID), nil, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		resp, err = testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/users/%d", victim.ID), nil, adminTok)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}
