package prompt

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Prompt text is shown to every visitor, so markup is stripped on the
// way in.
var sanitizer = bluemonday.StrictPolicy()

type CreatePromptRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

type UpdatePromptRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
}

func ListPromptsHandler(c *fiber.Ctx) error {
	prompts, err := ListPrompts()
	if err != nil {
		log.Printf("list prompts failed: %v", err)
		return response.InternalError(c, "Failed to list prompts")
	}
	return response.Success(c, prompts, "")
}

func GetPromptHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid prompt ID", nil)
	}

	p, err := GetPrompt(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Prompt")
		}
		log.Printf("get prompt %d failed: %v", id, err)
		return response.InternalError(c, "Failed to load prompt")
	}

	return response.Success(c, p, "")
}

func ListByCategoryHandler(c *fiber.Ctx) error {
	category := c.Params("category")

	if !models.IsValidCategory(category) {
		return response.BadRequest(c, "Invalid category", fiber.Map{
			"valid_categories": models.ValidCategories,
		})
	}

	prompts, err := ListPromptsByCategory(category)
	if err != nil {
		log.Printf("list prompts by category %s failed: %v", category, err)
		return response.InternalError(c, "Failed to list prompts")
	}

	return response.Success(c, fiber.Map{
		"category": category,
		"count":    len(prompts),
		"prompts":  prompts,
	}, "")
}

func SearchPromptsHandler(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return response.Success(c, []models.Prompt{}, "")
	}

	prompts, err := SearchPrompts(query)
	if err != nil {
		log.Printf("prompt search %q failed: %v", query, err)
		return response.InternalError(c, "Failed to search prompts")
	}

	return response.Success(c, prompts, "")
}

func CreatePromptHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body CreatePromptRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Title == "" || body.Description == "" || body.Category == "" {
		return response.ValidationError(c, map[string]string{
			"title":       "title is required",
			"description": "description is required",
			"category":    "category is required",
		})
	}

	if !models.IsValidCategory(body.Category) {
		return response.BadRequest(c, "Invalid category", fiber.Map{
			"valid_categories": models.ValidCategories,
		})
	}

	tags := body.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)

	p := models.Prompt{
		UserID:      userID,
		Title:       sanitizer.Sanitize(body.Title),
		Description: sanitizer.Sanitize(body.Description),
		Tags:        tagsJSON,
		Category:    body.Category,
	}

	if err := CreatePrompt(&p); err != nil {
		log.Printf("create prompt failed for user %d: %v", userID, err)
		return response.InternalError(c, "Failed to create prompt")
	}

	return response.Created(c, p, "Prompt created successfully")
}

func UpdatePromptHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid prompt ID", nil)
	}

	var body UpdatePromptRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	p, err := GetPrompt(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Prompt")
		}
		log.Printf("get prompt %d failed: %v", id, err)
		return response.InternalError(c, "Failed to load prompt")
	}

	if body.Title != nil {
		if *body.Title == "" {
			return response.ValidationError(c, map[string]string{"title": "title cannot be empty"})
		}
		p.Title = sanitizer.Sanitize(*body.Title)
	}
	if body.Description != nil {
		if *body.Description == "" {
			return response.ValidationError(c, map[string]string{"description": "description cannot be empty"})
		}
		p.Description = sanitizer.Sanitize(*body.Description)
	}
	if body.Tags != nil {
		tagsJSON, _ := json.Marshal(*body.Tags)
		p.Tags = tagsJSON
	}
	if body.Category != nil {
		if !models.IsValidCategory(*body.Category) {
			return response.BadRequest(c, "Invalid category", fiber.Map{
				"valid_categories": models.ValidCategories,
			})
		}
		p.Category = *body.Category
	}

	if err := UpdatePrompt(p); err != nil {
		log.Printf("update prompt %d failed: %v", id, err)
		return response.InternalError(c, "Failed to update prompt")
	}

	return response.Success(c, p, "Prompt updated successfully")
}

func DeletePromptHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid prompt ID", nil)
	}

	if err := DeletePrompt(uint(id)); err != nil {
		log.Printf("delete prompt %d failed: %v", id, err)
		return response.InternalError(c, "Failed to delete prompt")
	}

	return response.Success(c, nil, "Prompt deleted successfully")
}
