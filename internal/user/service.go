package user

import (
	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
)

func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies the admin-editable fields. Role changes land here
// and become visible to the role guard on the user's next request.
func UpdateUser(id uint, email, role string) (*models.User, error) {
	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if email != "" {
		updates["email"] = email
	}
	if role != "" {
		updates["role"] = role
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&u).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &u, nil
}

func DeleteUser(id uint) (int64, error) {
	res := database.DB.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}
