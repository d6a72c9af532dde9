package middleware_test

import (
	"fmt"
	"testing"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestPromptOwner(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	owner := testutils.CreateTestUser(t, database.DB, "owner@example.com", "password123", models.RoleUser)
	other := testutils.CreateTestUser(t, database.DB, "other@example.com", "password123", models.RoleUser)

	p := models.Prompt{
		UserID:      owner.ID,
		Title:       "Owned prompt",
		Description: "Mine",
		Tags:        []byte(`["test"]`),
		Category:    "other",
	}
	assert.NoError(t, database.DB.Create(&p).Error)

	url := fmt.Sprintf("/api/prompts/%d", p.ID)
	update := map[string]interface{}{"title": "Renamed"}

	t.Run("Error - Unauthenticated fails before ownership is evaluated", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", url, update, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})

	t.Run("Error - Non-owner gets forbidden", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, other.ID)

		resp, err := testutils.MakeRequest(app, "PUT", url, update, tok)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Error - Nonexistent prompt is 404 for non-owner", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, other.ID)

		resp, err := testutils.MakeRequest(app, "PUT", "/api/prompts/99999", update, tok)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code, "existence is checked before ownership")
		testutils.AssertError(t, resp, "NOT_FOUND")
	})

	t.Run("Error - Nonexistent prompt is 404 for owner too", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, owner.ID)

		resp, err := testutils.MakeRequest(app, "PUT", "/api/prompts/99999", update, tok)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("Success - Owner may update", func(t *testing.T) {
		tok := testutils.GetAuthToken(t, owner.ID)

		resp, err := testutils.MakeRequest(app, "PUT", url, update, tok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.Prompt
		assert.NoError(t, database.DB.First(&updated, p.ID).Error)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, owner.ID, updated.UserID, "ownership never reassigned")
	})

	t.Run("Success - Owner may delete, non-owner may not", func(t *testing.T) {
		otherTok := testutils.GetAuthToken(t, other.ID)
		resp, err := testutils.MakeRequest(app, "DELETE", url, nil, otherTok)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		ownerTok := testutils.GetAuthToken(t, owner.ID)
		resp, err = testutils.MakeRequest(app, "DELETE", url, nil, ownerTok)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var count int64
		database.DB.Model(&models.Prompt{}).Where("id = ?", p.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
