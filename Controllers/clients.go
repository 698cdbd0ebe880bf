package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

type CreateClientRequest struct {
	Name       string  `json:"name" validate:"required"`
	FileNo     *string `json:"fileno"`
	FirmName   *string `json:"firmname"`
	GstNo      *string `json:"gstno"`
	Pan        *string `json:"pan"`
	Address    *string `json:"address"`
	Mob        string  `json:"mob" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	FolderPath *string `json:"folderpath"`
	AddUserID  int     `json:"add_user_id" validate:"required"`
	AddDate    string  `json:"add_date" validate:"required"`
}

// The legacy update contract requires every field, audit columns included.
type UpdateClientRequest struct {
	Name       string `json:"name" validate:"required"`
	FileNo     string `json:"fileno" validate:"required"`
	FirmName   string `json:"firmname" validate:"required"`
	GstNo      string `json:"gstno" validate:"required"`
	Pan        string `json:"pan" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Mob        string `json:"mob" validate:"required"`
	Email      string `json:"email" validate:"required"`
	FolderPath string `json:"folderpath" validate:"required"`
	ModiUserID int    `json:"modi_user_id" validate:"required"`
	ModiDate   string `json:"modi_date" validate:"required"`
}

// GetClients retrieves all clients, newest first
func (cc *ClientController) GetClients(c *fiber.Ctx) error {
	var clients []Models.Client
	if err := cc.DB.Order("code DESC").Find(&clients).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(clients)
}

// GetClient retrieves a single client by code
func (cc *ClientController) GetClient(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid client code")
	}

	var client Models.Client
	if err := cc.DB.First(&client, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Client not found")
		}
		return dbError(c, err, "Internal server error")
	}
	return c.JSON(client)
}

// CreateClient inserts a new client row
func (cc *ClientController) CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}

	client := Models.Client{
		Name:       req.Name,
		FileNo:     req.FileNo,
		FirmName:   req.FirmName,
		GstNo:      req.GstNo,
		Pan:        req.Pan,
		Address:    req.Address,
		Mob:        req.Mob,
		Email:      req.Email,
		FolderPath: req.FolderPath,
		AddUserID:  req.AddUserID,
		AddDate:    req.AddDate,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"message":    "Client added successfully!",
		"clientCode": client.Code,
	})
}

// UpdateClient rewrites a client row by code
func (cc *ClientController) UpdateClient(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid client code")
	}

	var req UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "Missing required fields")
	}

	var client Models.Client
	if err := cc.DB.First(&client, "code = ?", code).Error; err != nil {
		if notFound(err) {
			return respondError(c, KindNotFound, "Client not found")
		}
		return dbError(c, err, "Internal server error")
	}

	updates := map[string]interface{}{
		"name":         req.Name,
		"fileno":       req.FileNo,
		"firmname":     req.FirmName,
		"gstno":        req.GstNo,
		"pan":          req.Pan,
		"address":      req.Address,
		"mob":          req.Mob,
		"email":        req.Email,
		"folderpath":   req.FolderPath,
		"modi_user_id": req.ModiUserID,
		"modi_date":    req.ModiDate,
	}
	if err := cc.DB.Model(&client).Updates(updates).Error; err != nil {
		return dbError(c, err, "Internal server error")
	}

	return c.JSON(fiber.Map{"message": "Client updated successfully!"})
}

// DeleteClient removes a client; sub-allotments referencing its fileno
// block the delete at the database and surface as a conflict.
func (cc *ClientController) DeleteClient(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return respondError(c, KindValidation, "Invalid client code")
	}

	result := cc.DB.Delete(&Models.Client{}, "code = ?", code)
	if result.Error != nil {
		return dbError(c, result.Error, "Internal server error")
	}
	if result.RowsAffected == 0 {
		return respondError(c, KindNotFound, "Client not found")
	}

	return c.JSON(fiber.Map{"message": "Client deleted successfully!"})
}
