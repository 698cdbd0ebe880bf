package Controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorKind is the closed set of failure classes handlers are allowed to
// surface. Every error response goes through respondError so the kind→status
// mapping lives in exactly one place.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternal
)

var kindStatus = map[ErrorKind]int{
	KindValidation:   fiber.StatusBadRequest,
	KindUnauthorized: fiber.StatusUnauthorized,
	KindNotFound:     fiber.StatusNotFound,
	KindConflict:     fiber.StatusConflict,
	KindInternal:     fiber.StatusInternalServerError,
}

var validate = validator.New()

func respondError(c *fiber.Ctx, kind ErrorKind, message string) error {
	return c.Status(kindStatus[kind]).JSON(fiber.Map{"error": message})
}

// isConstraintViolation sniffs driver error text for foreign-key and
// uniqueness failures. MySQL and sqlite phrase these differently.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint")
}

// dbError classifies a failed statement. Constraint violations become a 409
// with a generic message; everything else is a 500 with the module's
// fallback message. Detail is logged server-side only.
func dbError(c *fiber.Ctx, err error, fallback string) error {
	log.Printf("Database error: %v", err)
	if isConstraintViolation(err) {
		return respondError(c, KindConflict, "Operation conflicts with related records")
	}
	return respondError(c, KindInternal, fallback)
}

// notFound distinguishes a missing row from a driver failure after a First.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
