package content

import (
	"errors"

	"agency-backend/logger"
	contentModel "agency-backend/models/content"
	"agency-backend/types"
	contentTypes "agency-backend/types/content"
	"agency-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CaseStudyController handles case study CRUD for the public site and admin dashboard
type CaseStudyController struct {
	DB *gorm.DB
}

func NewCaseStudyController(db *gorm.DB) *CaseStudyController {
	return &CaseStudyController{DB: db}
}

// Index lists published case studies, newest first
func (cc *CaseStudyController) Index(c *fiber.Ctx) error {
	var studies []contentModel.CaseStudy
	query := cc.DB.Where("published = ?", true)
	if industry := c.Query("industry"); industry != "" {
		query = query.Where("industry = ?", industry)
	}
	if err := query.Order("created_at DESC").Find(&studies).Error; err != nil {
		logger.Error("Failed to list case studies", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Case studies retrieved successfully",
		Data:    studies,
	})
}

// Show returns a single published case study by slug
func (cc *CaseStudyController) Show(c *fiber.Ctx) error {
	var study contentModel.CaseStudy
	err := cc.DB.Where("slug = ? AND published = ?", c.Params("slug"), true).First(&study).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Case study not found")
		}
		logger.Error("Failed to load case study", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Case study retrieved successfully",
		Data:    study,
	})
}

// Store creates a case study (admin)
func (cc *CaseStudyController) Store(c *fiber.Ctx) error {
	var req contentTypes.CaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse case study request", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Validation failed: "+err.Error())
	}

	study := contentModel.CaseStudy{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		ClientName:    req.ClientName,
		Industry:      req.Industry,
		Summary:       req.Summary,
		Body:          req.Body,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
	}

	if err := cc.DB.Create(&study).Error; err != nil {
		logger.Error("Failed to create case study", err)
		return dbError(c)
	}

	logger.Success("Case study created: " + study.Slug)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Case study created successfully",
		Data:    study,
	})
}

// Update modifies a case study (admin)
func (cc *CaseStudyController) Update(c *fiber.Ctx) error {
	var study contentModel.CaseStudy
	if err := cc.DB.First(&study, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Case study not found")
		}
		logger.Error("Failed to load case study", err)
		return dbError(c)
	}

	var req contentTypes.CaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse case study request", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Validation failed: "+err.Error())
	}

	study.Title = req.Title
	study.Slug = utils.Slugify(req.Title)
	study.ClientName = req.ClientName
	study.Industry = req.Industry
	study.Summary = req.Summary
	study.Body = req.Body
	study.CoverImageURL = req.CoverImageURL
	study.Published = req.Published

	if err := cc.DB.Save(&study).Error; err != nil {
		logger.Error("Failed to update case study", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Case study updated successfully",
		Data:    study,
	})
}

// Destroy soft-deletes a case study (admin)
func (cc *CaseStudyController) Destroy(c *fiber.Ctx) error {
	res := cc.DB.Delete(&contentModel.CaseStudy{}, c.Params("id"))
	if res.Error != nil {
		logger.Error("Failed to delete case study", res.Error)
		return dbError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c, "Case study not found")
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Case study deleted successfully",
		Data:    nil,
	})
}
