package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

type CreateDocumentRequest struct {
	TaskCode    *int               `json:"task_code" validate:"required"`
	DocName     string             `json:"doc_name" validate:"required"`
	Description *string            `json:"description"`
	AddUserID   Models.LooseUserID `json:"add_user_id"`
}

type UpdateDocumentRequest struct {
	TaskCode    *int               `json:"task_code" validate:"required"`
	DocName     string             `json:"doc_name" validate:"required"`
	Description *string            `json:"description"`
	ModiUserID  Models.LooseUserID `json:"modi_user_id"`
}

// DocumentRow is a document enriched with its parent task's display name.
// prime_taskname is null when the task reference no longer resolves.
type DocumentRow struct {
	Code          int     `json:"code"`
	TaskCode      int     `json:"task_code"`
	DocName       string  `json:"doc_name"`
	Description   *string `json:"description"`
	AddUserID     *int    `json:"add_user_id"`
	AddDate       *string `json:"add_date"`
	ModiUserID    *int    `json:"modi_user_id"`
	ModiDate      *string `json:"modi_date"`
	PrimeTaskname *string `json:"prime_taskname"`
}

func (dc *DocumentController) joined() *gorm.DB {
	return dc.DB.Table("documents").
		Select("documents.*, tasks_allotment_master.prime_taskname").
		Joins("LEFT JOIN tasks_allotment_master ON documents.task_code = tasks_allotment_master.code")
}

// GetDocuments lists every document with its parent task name
func (dc *DocumentController) GetDocuments(c *fiber.Ctx) error {
	var rows []DocumentRow
	if err := dc.joined().Order("documents.code DESC").Scan(&rows).Error; err != nil {
		return dbError(c, err, "Failed to fetch documents")
	}
	if rows == nil {
		rows = []DocumentRow{}
	}
	return c.JSON(rows)
}

// GetDocument retrieves one document with its parent task name
func (dc *DocumentController) GetDocument(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document code")
	}

	var rows []DocumentRow
	if err := dc.joined().Where("documents.code = ?", code).Scan(&rows).Error; err != nil {
		return dbError(c, err, "Failed to fetch document")
	}
	if len(rows) == 0 {
		return respondError(c, KindNotFound, "Document not found")
	}
	return c.JSON(rows[0])
}

// CreateDocument inserts a document. The user id is lenient by contract:
// numeric strings parse, anything else becomes NULL with a logged warning.
func (dc *DocumentController) CreateDocument(c *fiber.Ctx) error {
	var req CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "task_code and doc_name are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "task_code and doc_name are required")
	}

	document := Models.Document{
		TaskCode:    *req.TaskCode,
		DocName:     req.DocName,
		Description: req.Description,
		AddUserID:   req.AddUserID.Int(),
	}
	if err := dc.DB.Create(&document).Error; err != nil {
		return dbError(c, err, "Failed to create document")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Document created",
		"code":    document.Code,
	})
}

// UpdateDocument rewrites a document row by code
func (dc *DocumentController) UpdateDocument(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document code")
	}

	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "task_code and doc_name are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "task_code and doc_name are required")
	}

	var document Models.Document
	if err := dc.DB.First(&document, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Document not found")
		}
		return dbError(c, err, "Failed to update document")
	}

	updates := map[string]interface{}{
		"task_code":    *req.TaskCode,
		"doc_name":     req.DocName,
		"description":  req.Description,
		"modi_user_id": req.ModiUserID.Int(),
	}
	if err := dc.DB.Model(&document).Updates(updates).Error; err != nil {
		return dbError(c, err, "Failed to update document")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Document updated"})
}

// DeleteDocument removes a document by code
func (dc *DocumentController) DeleteDocument(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid document code")
	}

	result := dc.DB.Delete(&Models.Document{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Failed to delete document")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Document not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Document deleted"})
}
