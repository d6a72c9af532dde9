package auth

import (
	"errors"
	"fmt"
	"log"

	"github.com/akash012-ctrl/prompt-library-backend/internal/mailer"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"
	"github.com/akash012-ctrl/prompt-library-backend/internal/token"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the auth flow dependencies. The token service owns the
// signing key (injected at startup) and the mailer is an interface so
// tests can capture outgoing reset mail.
type Handler struct {
	Tokens  *token.Service
	Mail    mailer.Mailer
	BaseURL string
}

func NewHandler(tokens *token.Service, mail mailer.Mailer, baseURL string) *Handler {
	return &Handler{Tokens: tokens, Mail: mail, BaseURL: baseURL}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	if len(body.Password) < 6 {
		return response.ValidationError(c, map[string]string{
			"password": "password must be at least 6 characters",
		})
	}

	u, err := RegisterUser(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return response.Conflict(c, "Email already registered")
		}
		log.Printf("register failed for %s: %v", body.Email, err)
		return response.InternalError(c, "Failed to create user")
	}

	accessToken, err := h.Tokens.IssueSessionToken(u.ID)
	if err != nil {
		log.Printf("token issue failed for user %d: %v", u.ID, err)
		return response.InternalError(c, "Failed to issue token")
	}

	return response.Created(c, fiber.Map{
		"token": accessToken,
		"user":  u,
	}, "Registration successful")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	u, err := LoginUser(body.Email, body.Password)
	if err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	accessToken, err := h.Tokens.IssueSessionToken(u.ID)
	if err != nil {
		log.Printf("token issue failed for user %d: %v", u.ID, err)
		return response.InternalError(c, "Failed to issue token")
	}

	return response.Success(c, fiber.Map{
		"token":      accessToken,
		"expires_in": int(token.SessionTTL.Seconds()),
	}, "Login successful")
}

func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.CurrentPassword == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"current_password": "current_password is required",
			"new_password":     "new_password is required",
		})
	}

	if len(body.NewPassword) < 6 {
		return response.ValidationError(c, map[string]string{
			"new_password": "new_password must be at least 6 characters",
		})
	}

	if err := UpdatePassword(userID, body.CurrentPassword, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return response.NotFound(c, "User")
		case errors.Is(err, ErrInvalidCredentials):
			return response.BadRequest(c, "Invalid current password", nil)
		default:
			log.Printf("password update failed for user %d: %v", userID, err)
			return response.InternalError(c, "Failed to update password")
		}
	}

	return response.Success(c, nil, "Password updated successfully")
}

// ForgotPassword starts the reset flow: mint a token, persist it on the
// user row and mail a link embedding it. A missing account is reported as
// such; revealing existence here is carried over from the source design.
func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" {
		return response.ValidationError(c, map[string]string{
			"email": "email is required",
		})
	}

	u, plainToken, _, err := CreateResetToken(body.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return response.NotFound(c, "Account with that email")
		}
		log.Printf("reset token issue failed for %s: %v", body.Email, err)
		return response.InternalError(c, "Failed to generate reset token")
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", h.BaseURL, plainToken)
	mailBody := fmt.Sprintf(
		"You are receiving this because a password reset was requested for your account.\n\n"+
			"Click the following link to complete the process:\n\n%s\n\n"+
			"If you did not request this, ignore this email and your password will remain unchanged.\n",
		resetURL,
	)

	if err := h.Mail.Send(u.Email, "Password Reset Request", mailBody); err != nil {
		log.Printf("reset mail to %s failed: %v", u.Email, err)
		return response.InternalError(c, "Failed to send reset email")
	}

	return response.Success(c, nil, "Password reset email sent")
}

// ResetPassword consumes the token from the reset link. The token is a
// bearer credential: whoever presents it within the expiry window may set
// a new password, exactly once.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	tokenStr := c.Params("token")

	var body struct {
		NewPassword string `json:"new_password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if tokenStr == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"token":        "token is required",
			"new_password": "new_password is required",
		})
	}

	if len(body.NewPassword) < 6 {
		return response.ValidationError(c, map[string]string{
			"new_password": "new_password must be at least 6 characters",
		})
	}

	if err := ConsumePasswordReset(tokenStr, body.NewPassword); err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			return response.BadRequest(c, "Password reset token is invalid or has expired", nil)
		}
		log.Printf("password reset failed: %v", err)
		return response.InternalError(c, "Failed to reset password")
	}

	return response.Success(c, nil, "Password reset successful")
}
