package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/akash012-ctrl/prompt-library-backend/internal/auth"
	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/server"
	"github.com/akash012-ctrl/prompt-library-backend/internal/token"
	"github.com/akash012-ctrl/prompt-library-backend/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const TestSecret = "test_secret_key_minimum_32_characters_long_for_testing"

const TestBaseURL = "http://localhost:3000"

// Tokens signs test tokens with the same key SetupTestApp wires into the
// app, so tokens minted here verify against the app under test.
var Tokens = token.New(TestSecret)

// SentMail is one message captured by RecordingMailer.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// RecordingMailer stands in for SMTP in tests and keeps every message.
type RecordingMailer struct {
	Sent []SentMail
}

func (m *RecordingMailer) Send(to, subject, body string) error {
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Prompt{},
		&models.Report{},
	)
	assert.NoError(t, err, "Failed to migrate test database")

	return db
}

func SetupTestApp(t *testing.T) (*fiber.App, *RecordingMailer) {
	db := TestDB(t)
	database.DB = db

	mail := &RecordingMailer{}
	h := auth.NewHandler(Tokens, mail, TestBaseURL)

	app := server.New(db, h)
	return app, mail
}

func CreateTestUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	hashed, err := utils.HashPassword(password)
	assert.NoError(t, err, "Failed to hash test password")

	u := &models.User{
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	err = db.Create(u).Error
	assert.NoError(t, err, "Failed to create test user")

	return u
}

func GetAuthToken(t *testing.T, userID uint) string {
	tok, err := Tokens.IssueSessionToken(userID)
	assert.NoError(t, err, "Failed to generate test token")
	return tok
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data"`
	Error   *ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	assert.NotNil(t, result.Error, "Expected error object")
	if result.Error != nil {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}
