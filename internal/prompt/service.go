package prompt

import (
	"strings"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
)

const searchLimit = 10

func ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := database.DB.Preload("User").Order("created_at DESC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func GetPrompt(id uint) (*models.Prompt, error) {
	var p models.Prompt
	if err := database.DB.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func ListPromptsByCategory(category string) ([]models.Prompt, error) {
	var prompts []models.Prompt
	err := database.DB.Preload("User").
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// SearchPrompts matches the query case-insensitively against title and
// tags. Results are capped at searchLimit.
func SearchPrompts(query string) ([]models.Prompt, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var prompts []models.Prompt
	err := database.DB.Preload("User").
		Where("LOWER(title) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?", pattern, pattern).
		Limit(searchLimit).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func CreatePrompt(p *models.Prompt) error {
	return database.DB.Create(p).Error
}

func UpdatePrompt(p *models.Prompt) error {
	return database.DB.Save(p).Error
}

func DeletePrompt(id uint) error {
	return database.DB.Delete(&models.Prompt{}, id).Error
}
