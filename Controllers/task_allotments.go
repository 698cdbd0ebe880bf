package Controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type TaskAllotmentController struct {
	DB *gorm.DB
}

func NewTaskAllotmentController(db *gorm.DB) *TaskAllotmentController {
	return &TaskAllotmentController{DB: db}
}

// TaskAllotmentRequest carries every writable column. Older clients send
// alloted_date instead of allot_date, so both are accepted.
type TaskAllotmentRequest struct {
	AllotDate       *string  `json:"allot_date"`
	AllotedDate     *string  `json:"alloted_date"`
	DueDate         *string  `json:"due_date"`
	RMEmpCode       *int     `json:"rm_emp_code"`
	ReceivedBy      *int     `json:"received_by"`
	PlacedAt        *string  `json:"placed_at"`
	ClientCode      *int     `json:"client_code"`
	FinancialYear   *string  `json:"financial_year"`
	AssessmentMonth *string  `json:"assessment_month"`
	AssessmentFor   *string  `json:"assessment_for"`
	AllotedTo       *int     `json:"alloted_to"`
	Status          *string  `json:"status"`
	DocReceivedBy   *string  `json:"doc_received_by"`
	KeyFactor       *string  `json:"key_factor"`
	PrimeTaskname   *string  `json:"prime_taskname"`
	SubTaskname     *string  `json:"sub_taskname"`
	TimeTaken       *float64 `json:"time_taken_to_complete"`
	AddUserID       *string  `json:"add_user_id"`
	ModiUserID      *string  `json:"modi_user_id"`
}

func (req *TaskAllotmentRequest) allotmentDate() *string {
	if req.AllotDate != nil && *req.AllotDate != "" {
		return req.AllotDate
	}
	if req.AllotedDate != nil && *req.AllotedDate != "" {
		return req.AllotedDate
	}
	return nil
}

// GetTaskAllotments lists all task allotments, newest first
func (tc *TaskAllotmentController) GetTaskAllotments(c *fiber.Ctx) error {
	var tasks []Models.TaskAllotment
	if err := tc.DB.Order("code DESC").Find(&tasks).Error; err != nil {
		return dbError(c, err, "Failed to fetch tasks")
	}
	return c.JSON(tasks)
}

// GetTaskAllotment retrieves a single task allotment by code
func (tc *TaskAllotmentController) GetTaskAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task code")
	}

	var task Models.TaskAllotment
	if err := tc.DB.First(&task, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Task not found")
		}
		return dbError(c, err, "Failed to fetch task")
	}
	return c.JSON(task)
}

// CreateTaskAllotment inserts a task allotment. Only the allotment date is
// mandatory; a missing rm_emp_code is logged and stored as NULL.
func (tc *TaskAllotmentController) CreateTaskAllotment(c *fiber.Ctx) error {
	var req TaskAllotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Allotment date is required")
	}

	allotDate := req.allotmentDate()
	if allotDate == nil {
		return respondError(c, KindValidation, "Allotment date is required")
	}
	if req.RMEmpCode == nil {
		log.Println("Missing rm_emp_code in task allotment request")
	}

	task := Models.TaskAllotment{
		AllotDate:       allotDate,
		DueDate:         req.DueDate,
		RMEmpCode:       req.RMEmpCode,
		ReceivedBy:      req.ReceivedBy,
		PlacedAt:        req.PlacedAt,
		ClientCode:      req.ClientCode,
		FinancialYear:   req.FinancialYear,
		AssessmentMonth: req.AssessmentMonth,
		AssessmentFor:   req.AssessmentFor,
		AllotedTo:       req.AllotedTo,
		Status:          req.Status,
		DocReceivedBy:   req.DocReceivedBy,
		KeyFactor:       req.KeyFactor,
		PrimeTaskname:   req.PrimeTaskname,
		SubTaskname:     req.SubTaskname,
		TimeTaken:       req.TimeTaken,
		AddUserID:       req.AddUserID,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		return dbError(c, err, "Failed to create task")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created",
		"code":    task.Code,
	})
}

// UpdateTaskAllotment rewrites a task allotment by code
func (tc *TaskAllotmentController) UpdateTaskAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task code")
	}

	var req TaskAllotmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Allotment date is required")
	}

	allotDate := req.allotmentDate()
	if allotDate == nil {
		return respondError(c, KindValidation, "Allotment date is required")
	}
	if req.RMEmpCode == nil {
		log.Println("Missing rm_emp_code in task allotment update")
	}

	var task Models.TaskAllotment
	if err := tc.DB.First(&task, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Task not found")
		}
		return dbError(c, err, "Failed to update task")
	}

	updates := map[string]interface{}{
		"allot_date":             allotDate,
		"due_date":               req.DueDate,
		"rm_emp_code":            req.RMEmpCode,
		"received_by":            req.ReceivedBy,
		"placed_at":              req.PlacedAt,
		"client_code":            req.ClientCode,
		"financial_year":         req.FinancialYear,
		"assessment_month":       req.AssessmentMonth,
		"assessment_for":         req.AssessmentFor,
		"alloted_to":             req.AllotedTo,
		"status":                 req.Status,
		"doc_received_by":        req.DocReceivedBy,
		"key_factor":             req.KeyFactor,
		"prime_taskname":         req.PrimeTaskname,
		"sub_taskname":           req.SubTaskname,
		"time_taken_to_complete": req.TimeTaken,
		"modi_user_id":           req.ModiUserID,
	}
	if err := tc.DB.Model(&task).Updates(updates).Error; err != nil {
		return dbError(c, err, "Failed to update task")
	}

	return c.JSON(fiber.Map{"message": "Task updated"})
}

// DeleteTaskAllotment removes a task allotment; its documents go with it
// through the cascade constraint.
func (tc *TaskAllotmentController) DeleteTaskAllotment(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid task code")
	}

	result := tc.DB.Delete(&Models.TaskAllotment{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Failed to delete task")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Task not found")
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}
