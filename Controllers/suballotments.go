package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

// SuballotmentController serves /sub-allotments, the free-text twin of the
// constrained sub-allotment table. Kept separate on purpose; see DESIGN.md.
type SuballotmentController struct {
	DB *gorm.DB
}

func NewSuballotmentController(db *gorm.DB) *SuballotmentController {
	return &SuballotmentController{DB: db}
}

type CreateSuballotmentRequest struct {
	FileName       string  `json:"file_name" validate:"required"`
	AllotedBy      *string `json:"alloted_by"`
	AllotedTo      *string `json:"alloted_to"`
	TaskName       string  `json:"task_name" validate:"required"`
	Description    *string `json:"description"`
	AllotedDate    string  `json:"alloted_date" validate:"required"`
	Completed      string  `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	AddUserID      *string `json:"add_user_id"`
	AddDate        *string `json:"add_date"`
}

type UpdateSuballotmentRequest struct {
	FileName       *string `json:"file_name"`
	AllotedBy      *string `json:"alloted_by"`
	AllotedTo      *string `json:"alloted_to"`
	TaskName       string  `json:"task_name" validate:"required"`
	Description    *string `json:"description"`
	AllotedDate    string  `json:"alloted_date" validate:"required"`
	Completed      string  `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	ModiUserID     *string `json:"modi_user_id"`
	ModiDate       *string `json:"modi_date"`
}

// Anything other than an explicit "yes" is "no".
func normalizeCompleted(v string) string {
	if v == "yes" {
		return "yes"
	}
	return "no"
}

func (sc *SuballotmentController) GetSuballotments(c *fiber.Ctx) error {
	var entries []Models.Suballotment
	if err := sc.DB.Order("code DESC").Find(&entries).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(entries)
}

func (sc *SuballotmentController) GetSuballotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid suballotment code")
	}

	var entry Models.Suballotment
	if err := sc.DB.First(&entry, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Suballotment not found")
		}
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(entry)
}

func (sc *SuballotmentController) CreateSuballotment(c *fiber.Ctx) error {
	var req CreateSuballotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "File name, Task name, and Alloted date are required.")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "File name, Task name, and Alloted date are required.")
	}

	entry := Models.Suballotment{
		FileName:       &req.FileName,
		AllotedBy:      req.AllotedBy,
		AllotedTo:      req.AllotedTo,
		TaskName:       &req.TaskName,
		Description:    req.Description,
		AllotedDate:    &req.AllotedDate,
		Completed:      normalizeCompleted(req.Completed),
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

func (sc *SuballotmentController) UpdateSuballotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid suballotment code")
	}

	var req UpdateSuballotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Alloted date and task name are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Alloted date and task name are required")
	}

	var entry Models.Suballotment
	if err := sc.DB.First(&entry, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Suballotment not found")
		}
		return dbError(c, err, "Internal server error")
	}

	updates := map[string]interface{}{
		"file_name":       req.FileName,
		"alloted_by":      req.AllotedBy,
		"alloted_to":      req.AllotedTo,
		"task_name":       req.TaskName,
		"description":     req.Description,
		"alloted_date":    req.AllotedDate,
		"completed":       normalizeCompleted(req.Completed),
		"completion_date": req.CompletionDate,
		"modi_user_id":    req.ModiUserID,
		"modi_date":       req.ModiDate,
	}
	if err := sc.DB.Model(&entry).Updates(updates).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Suballotment updated successfully"})
}

func (sc *SuballotmentController) DeleteSuballotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid suballotment code")
	}

	result := sc.DB.Delete(&Models.Suballotment{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Internal server error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Suballotment not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Suballotment deleted successfully"})
}
