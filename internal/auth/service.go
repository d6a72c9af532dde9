package auth

import (
	"errors"
	"time"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/token"
	"github.com/akash012-ctrl/prompt-library-backend/internal/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	// ErrInvalidResetToken merges "wrong token", "expired token" and
	// "already consumed" into one outcome so callers cannot tell which.
	ErrInvalidResetToken = errors.New("reset token is invalid or has expired")
)

func RegisterUser(email, password string) (*models.User, error) {
	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := database.DB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func LoginUser(email, password string) (*models.User, error) {
	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	return &u, nil
}

func UpdatePassword(userID uint, currentPassword, newPassword string) error {
	var u models.User
	if err := database.DB.First(&u, userID).Error; err != nil {
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(currentPassword, u.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return database.DB.Model(&u).Update("password", hashed).Error
}

// CreateResetToken mints a reset token for the account behind email and
// persists it on the user row, overwriting any prior pending token so at
// most one reset is active per user.
func CreateResetToken(email string) (*models.User, string, time.Time, error) {
	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, "", time.Time{}, ErrUserNotFound
	}

	plain, expiresAt, err := token.IssueResetToken()
	if err != nil {
		return nil, "", time.Time{}, err
	}

	err = database.DB.Model(&u).Updates(map[string]interface{}{
		"reset_token":            plain,
		"reset_token_expires_at": expiresAt,
	}).Error
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return &u, plain, expiresAt, nil
}

// ConsumePasswordReset redeems a reset token: the password hash is
// replaced and both reset fields are cleared in one conditional UPDATE
// keyed on the token still being present and unexpired. A replay, an
// expired token and a wrong token all hit zero rows, so two concurrent
// calls with the same token cannot both succeed.
func ConsumePasswordReset(tokenStr, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	res := database.DB.Model(&models.User{}).
		Where("reset_token = ? AND reset_token_expires_at > ?", tokenStr, time.Now()).
		Updates(map[string]interface{}{
			"password":               hashed,
			"reset_token":            gorm.Expr("NULL"),
			"reset_token_expires_at": gorm.Expr("NULL"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidResetToken
	}

	return nil
}
