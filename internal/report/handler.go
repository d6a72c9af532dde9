package report

import (
	"errors"
	"log"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateReportRequest struct {
	PromptID uint   `json:"prompt_id"`
	Reason   string `json:"reason"`
}

func ListReportsHandler(c *fiber.Ctx) error {
	reports, err := ListReports()
	if err != nil {
		log.Printf("list reports failed: %v", err)
		return response.InternalError(c, "Failed to list reports")
	}
	return response.Success(c, reports, "")
}

func CreateReportHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body CreateReportRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.PromptID == 0 || body.Reason == "" {
		return response.ValidationError(c, map[string]string{
			"prompt_id": "prompt_id is required",
			"reason":    "reason is required",
		})
	}

	var p models.Prompt
	if err := database.DB.First(&p, body.PromptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Prompt")
		}
		log.Printf("load prompt %d failed: %v", body.PromptID, err)
		return response.InternalError(c, "Failed to load prompt")
	}

	r := models.Report{
		PromptID:   body.PromptID,
		ReportedBy: userID,
		Reason:     body.Reason,
	}

	if err := CreateReport(&r); err != nil {
		log.Printf("create report failed for user %d: %v", userID, err)
		return response.InternalError(c, "Failed to create report")
	}

	return response.Created(c, r, "Report created successfully")
}

func DeleteReportHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID", nil)
	}

	affected, err := DeleteReport(uint(id))
	if err != nil {
		log.Printf("delete report %d failed: %v", id, err)
		return response.InternalError(c, "Failed to delete report")
	}
	if affected == 0 {
		return response.NotFound(c, "Report")
	}

	return response.Success(c, nil, "Report deleted successfully")
}
