package report

import (
	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
)

func ListReports() ([]models.Report, error) {
	var reports []models.Report
	err := database.DB.Preload("Prompt").Preload("Reporter").
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport files a report and flags the prompt so moderators can
// filter on it.
func CreateReport(r *models.Report) error {
	if err := database.DB.Create(r).Error; err != nil {
		return err
	}

	return database.DB.Model(&models.Prompt{}).
		Where("id = ?", r.PromptID).
		Update("is_reported", true).Error
}

func DeleteReport(id uint) (int64, error) {
	res := database.DB.Delete(&models.Report{}, id)
	return res.RowsAffected, res.Error
}
