package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type DocTypeController struct {
	DB *gorm.DB
}

func NewDocTypeController(db *gorm.DB) *DocTypeController {
	return &DocTypeController{DB: db}
}

type CreateDocTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	AddUserID   int    `json:"add_user_id" validate:"required"`
}

type UpdateDocTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	ModiUserID  int    `json:"modi_user_id" validate:"required"`
}

func (dc *DocTypeController) GetDocTypes(c *fiber.Ctx) error {
	var docTypes []Models.DocType
	if err := dc.DB.Order("code DESC").Find(&docTypes).Error; err != nil {
		return dbError(c, err, "Database error")
	}
	return c.JSON(docTypes)
}

func (dc *DocTypeController) GetDocType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document type code")
	}

	var docType Models.DocType
	if err := dc.DB.First(&docType, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Document type not found")
		}
		return dbError(c, err, "Database error")
	}
	return c.JSON(docType)
}

func (dc *DocTypeController) CreateDocType(c *fiber.Ctx) error {
	var req CreateDocTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Name, description, and add_user_id are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Name, description, and add_user_id are required")
	}

	// The legacy route stamps add_date with the date only.
	today := time.Now().Format("2006-01-02")
	docType := Models.DocType{
		Name:        req.Name,
		Description: req.Description,
		AddUserID:   req.AddUserID,
		AddDate:     &today,
	}
	if err := dc.DB.Create(&docType).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Document type added successfully",
		"code":    docType.Code,
	})
}

func (dc *DocTypeController) UpdateDocType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document type code")
	}

	var req UpdateDocTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Name, description, and modi_user_id are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Name, description, and modi_user_id are required")
	}

	var docType Models.DocType
	if err := dc.DB.First(&docType, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Document type not found")
		}
		return dbError(c, err, "Database error")
	}

	updates := map[string]interface{}{
		"name":         req.Name,
		"description":  req.Description,
		"modi_user_id": req.ModiUserID,
		"modi_date":    time.Now().Format("2006-01-02"),
	}
	if err := dc.DB.Model(&docType).Updates(updates).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Document type updated successfully"})
}

func (dc *DocTypeController) DeleteDocType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document type code")
	}

	result := dc.DB.Delete(&Models.DocType{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Database error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Document type not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Document type deleted successfully"})
}
