package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

type CreateEmployeeRequest struct {
	Name           string  `json:"name" validate:"required"`
	Address        *string `json:"address"`
	MobileNumber   *string `json:"mobile_number"`
	Qualification  *string `json:"qualification"`
	DOB            *string `json:"dob"`
	WorkExperience *string `json:"work_experience"`
	KeySkills      *string `json:"key_skills"`
	Reference      *string `json:"reference"`
	Email          *string `json:"email"`
	AddUserID      int     `json:"add_user_id" validate:"required"`
}

type UpdateEmployeeRequest struct {
	Name           string  `json:"name" validate:"required"`
	Address        *string `json:"address"`
	MobileNumber   *string `json:"mobile_number"`
	Qualification  *string `json:"qualification"`
	DOB            *string `json:"dob"`
	WorkExperience *string `json:"work_experience"`
	KeySkills      *string `json:"key_skills"`
	Reference      *string `json:"reference"`
	Email          *string `json:"email"`
	ModiUserID     int     `json:"modi_user_id" validate:"required"`
}

// GetEmployees retrieves all employees, newest first
func (ec *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	var employees []Models.Employee
	if err := ec.DB.Order("code DESC").Find(&employees).Error; err != nil {
		return dbError(c, err, "Database error")
	}
	return c.JSON(employees)
}

// GetEmployee retrieves a single employee by code
func (ec *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("emp_code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid employee code")
	}

	var employee Models.Employee
	if err := ec.DB.First(&employee, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Employee not found")
		}
		return dbError(c, err, "Database error")
	}
	return c.JSON(employee)
}

// CreateEmployee inserts a new employee; add_date is set server-side
func (ec *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	employee := Models.Employee{
		Name:           req.Name,
		Address:        req.Address,
		MobileNumber:   req.MobileNumber,
		Qualification:  req.Qualification,
		DOB:            req.DOB,
		WorkExperience: req.WorkExperience,
		KeySkills:      req.KeySkills,
		Reference:      req.Reference,
		Email:          req.Email,
		AddUserID:      req.AddUserID,
		AddDate:        &now,
	}
	if err := ec.DB.Create(&employee).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Employee added successfully",
		"emp_code": employee.Code,
	})
}

// UpdateEmployee rewrites an employee row; modi_date is set server-side
func (ec *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("emp_code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid employee code")
	}

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}

	var employee Models.Employee
	if err := ec.DB.First(&employee, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Employee not found")
		}
		return dbError(c, err, "Database error")
	}

	updates := map[string]interface{}{
		"name":            req.Name,
		"address":         req.Address,
		"mobile_number":   req.MobileNumber,
		"qualification":   req.Qualification,
		"dob":             req.DOB,
		"work_experience": req.WorkExperience,
		"key_skills":      req.KeySkills,
		"reference":       req.Reference,
		"email":           req.Email,
		"modi_user_id":    req.ModiUserID,
		"modi_date":       time.Now().Format("2006-01-02 15:04:05"),
	}
	if err := ec.DB.Model(&employee).Updates(updates).Error; err != nil {
		return dbError(c, err, "Database error")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Employee updated successfully"})
}

// DeleteEmployee removes an employee by code
func (ec *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("emp_code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid employee code")
	}

	result := ec.DB.Delete(&Models.Employee{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Database error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Employee not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Employee deleted successfully"})
}
