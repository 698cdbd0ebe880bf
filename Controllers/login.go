package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type LoginController struct {
	DB *gorm.DB
}

func NewLoginController(db *gorm.DB) *LoginController {
	return &LoginController{DB: db}
}

type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Ping answers GET /login so clients can probe reachability
func (lc *LoginController) Ping(c *fiber.Ctx) error {
	return c.SendString("Login route is working. Use POST to login.")
}

// Login checks id+password by direct equality against the users table and
// returns the full stored row on a match. Wrong id and wrong password are
// deliberately indistinguishable to the caller.
func (lc *LoginController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, KindValidation, "ID and Password are required")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, KindValidation, "ID and Password are required")
	}

	var user Models.User
	err := lc.DB.Where("id = ? AND password = ?", req.ID, req.Password).First(&user).Error
	if err != nil {
		if notFound(err) {
			return respondError(c, KindUnauthorized, "Invalid credentials")
		}
		return dbError(c, err, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}
