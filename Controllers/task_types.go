package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type TaskTypeController struct {
	DB *gorm.DB
}

func NewTaskTypeController(db *gorm.DB) *TaskTypeController {
	return &TaskTypeController{DB: db}
}

type CreateTaskTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description_of_the_task" validate:"required"`
	AddUserID   int    `json:"add_user_id" validate:"required"`
}

type UpdateTaskTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description_of_the_task" validate:"required"`
	ModiUserID  int    `json:"modi_user_id" validate:"required"`
}

func (tc *TaskTypeController) GetTaskTypes(c *fiber.Ctx) error {
	var taskTypes []Models.TaskType
	if err := tc.DB.Order("code DESC").Find(&taskTypes).Error; err != nil {
		return dbError(c, err, "Database error")
	}
	return c.JSON(taskTypes)
}

func (tc *TaskTypeController) GetTaskType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task type code")
	}

	var taskType Models.TaskType
	if err := tc.DB.First(&taskType, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Task type not found")
		}
		return dbError(c, err, "Database error")
	}
	return c.JSON(taskType)
}

func (tc *TaskTypeController) CreateTaskType(c *fiber.Ctx) error {
	var req CreateTaskTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Name, description_of_the_task, and add_user_id are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Name, description_of_the_task, and add_user_id are required")
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	taskType := Models.TaskType{
		Name:        req.Name,
		Description: req.Description,
		AddUserID:   req.AddUserID,
		AddDate:     &now,
	}
	if err := tc.DB.Create(&taskType).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Task type added successfully",
		"code":    taskType.Code,
	})
}

func (tc *TaskTypeController) UpdateTaskType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task type code")
	}

	var req UpdateTaskTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Name, description_of_the_task, and modi_user_id are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Name, description_of_the_task, and modi_user_id are required")
	}

	var taskType Models.TaskType
	if err := tc.DB.First(&taskType, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Task type not found")
		}
		return dbError(c, err, "Database error")
	}

	updates := map[string]interface{}{
		"name":                    req.Name,
		"description_of_the_task": req.Description,
		"modi_user_id":            req.ModiUserID,
		"modi_date":               time.Now().Format("2006-01-02 15:04:05"),
	}
	if err := tc.DB.Model(&taskType).Updates(updates).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Task type updated successfully"})
}

func (tc *TaskTypeController) DeleteTaskType(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task type code")
	}

	result := tc.DB.Delete(&Models.TaskType{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Database error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Task type not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Task type deleted successfully"})
}
