package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

// SubAllotmentController serves /sub-allotment, the variant whose fileno and
// employee columns are foreign-key constrained.
type SubAllotmentController struct {
	DB *gorm.DB
}

func NewSubAllotmentController(db *gorm.DB) *SubAllotmentController {
	return &SubAllotmentController{DB: db}
}

type CreateSubAllotmentRequest struct {
	FileNo         string  `json:"fileno" validate:"required"`
	AllotedDate    string  `json:"alloted_date" validate:"required"`
	AllotedBy      *int    `json:"alloted_by"`
	AllotedTo      *int    `json:"alloted_to"`
	TaskName       string  `json:"task_name" validate:"required"`
	Description    *string `json:"description"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	AddUserID      *string `json:"add_user_id"`
	AddDate        *string `json:"add_date"`
}

type UpdateSubAllotmentRequest struct {
	FileNo         *string `json:"fileno"`
	AllotedDate    string  `json:"alloted_date" validate:"required"`
	AllotedBy      *int    `json:"alloted_by"`
	AllotedTo      *int    `json:"alloted_to"`
	TaskName       string  `json:"task_name" validate:"required"`
	Description    *string `json:"description"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	ModiUserID     *string `json:"modi_user_id"`
	ModiDate       *string `json:"modi_date"`
}

func (sc *SubAllotmentController) GetSubAllotments(c *fiber.Ctx) error {
	var entries []Models.SubAllotment
	if err := sc.DB.Order("code DESC").Find(&entries).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(entries)
}

func (sc *SubAllotmentController) GetSubAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid sub-allotment code")
	}

	var entry Models.SubAllotment
	if err := sc.DB.First(&entry, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Sub-allotment entry not found")
		}
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(entry)
}

// CreateSubAllotment inserts an entry. An unknown fileno or employee code is
// rejected by the foreign keys and surfaces as a conflict.
func (sc *SubAllotmentController) CreateSubAllotment(c *fiber.Ctx) error {
	var req CreateSubAllotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "File number, Task name, and Alloted date are required.")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "File number, Task name, and Alloted date are required.")
	}

	completed := 0
	if req.Completed {
		completed = 1
	}
	entry := Models.SubAllotment{
		FileNo:         &req.FileNo,
		AllotedDate:    req.AllotedDate,
		AllotedBy:      req.AllotedBy,
		AllotedTo:      req.AllotedTo,
		TaskName:       req.TaskName,
		Description:    req.Description,
		Completed:      completed,
		CompletionDate: req.CompletionDate,
		AddUserID:      req.AddUserID,
		AddDate:        req.AddDate,
	}
	if err := sc.DB.Create(&entry).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Sub-allotment entry added successfully",
		"code":    entry.Code,
	})
}

func (sc *SubAllotmentController) UpdateSubAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid sub-allotment code")
	}

	var req UpdateSubAllotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Alloted date and task name are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Alloted date and task name are required")
	}

	var entry Models.SubAllotment
	if err := sc.DB.First(&entry, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Sub-allotment entry not found")
		}
		return dbError(c, err, "Internal server error")
	}

	completed := 0
	if req.Completed {
		completed = 1
	}
	updates := map[string]interface{}{
		"fileno":          req.FileNo,
		"alloted_date":    req.AllotedDate,
		"alloted_by":      req.AllotedBy,
		"alloted_to":      req.AllotedTo,
		"task_name":       req.TaskName,
		"description":     req.Description,
		"completed":       completed,
		"completion_date": req.CompletionDate,
		"modi_user_id":    req.ModiUserID,
		"modi_date":       req.ModiDate,
	}
	if err := sc.DB.Model(&entry).Updates(updates).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Sub-allotment entry updated successfully"})
}

func (sc *SubAllotmentController) DeleteSubAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid sub-allotment code")
	}

	result := sc.DB.Delete(&Models.SubAllotment{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Internal server error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Sub-allotment entry not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Sub-allotment entry deleted successfully"})
}
