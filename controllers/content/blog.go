package content

import (
	"errors"

	"agency-backend/logger"
	contentModel "agency-backend/models/content"
	"agency-backend/types"
	contentTypes "agency-backend/types/content"
	"agency-backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// BlogController handles blog post CRUD for the public site and admin dashboard
type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// Index lists published blog posts, newest first
func (bc *BlogController) Index(c *fiber.Ctx) error {
	var posts []contentModel.BlogPost
	query := bc.DB.Where("published = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		logger.Error("Failed to list blog posts", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blog posts retrieved successfully",
		Data:    posts,
	})
}

// Show returns a single published blog post by slug
func (bc *BlogController) Show(c *fiber.Ctx) error {
	var post contentModel.BlogPost
	err := bc.DB.Where("slug = ? AND published = ?", c.Params("slug"), true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Blog post not found")
		}
		logger.Error("Failed to load blog post", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blog post retrieved successfully",
		Data:    post,
	})
}

// Store creates a blog post (admin)
func (bc *BlogController) Store(c *fiber.Ctx) error {
	var req contentTypes.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse blog post request", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Validation failed: "+err.Error())
	}

	post := contentModel.BlogPost{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		Excerpt:       req.Excerpt,
		Body:          req.Body,
		Category:      req.Category,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
	}

	if err := bc.DB.Create(&post).Error; err != nil {
		logger.Error("Failed to create blog post", err)
		return dbError(c)
	}

	logger.Success("Blog post created: " + post.Slug)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Blog post created successfully",
		Data:    post,
	})
}

// Update modifies a blog post (admin)
func (bc *BlogController) Update(c *fiber.Ctx) error {
	var post contentModel.BlogPost
	if err := bc.DB.First(&post, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Blog post not found")
		}
		logger.Error("Failed to load blog post", err)
		return dbError(c)
	}

	var req contentTypes.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse blog post request", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Validation failed: "+err.Error())
	}

	post.Title = req.Title
	post.Slug = utils.Slugify(req.Title)
	post.Excerpt = req.Excerpt
	post.Body = req.Body
	post.Category = req.Category
	post.CoverImageURL = req.CoverImageURL
	post.Published = req.Published

	if err := bc.DB.Save(&post).Error; err != nil {
		logger.Error("Failed to update blog post", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blog post updated successfully",
		Data:    post,
	})
}

// Destroy soft-deletes a blog post (admin)
func (bc *BlogController) Destroy(c *fiber.Ctx) error {
	res := bc.DB.Delete(&contentModel.BlogPost{}, c.Params("id"))
	if res.Error != nil {
		logger.Error("Failed to delete blog post", res.Error)
		return dbError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c, "Blog post not found")
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blog post deleted successfully",
		Data:    nil,
	})
}
