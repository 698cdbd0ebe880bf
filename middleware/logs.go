package middleware

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LogData is the record written for failed requests.
type LogData struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Latency   time.Duration `json:"latency"`
	IP        string        `json:"ip"`
	Error     string        `json:"error,omitempty"`
}

// RequestLogger logs one line per request to the console.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.Printf(
			"%s %s %d %s %s",
			c.Method(),
			c.Path(),
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
		)

		return err
	}
}

// ErrorLogger appends a JSON line to logs/errors.log for any request that
// errored or returned a 4xx/5xx status.
func ErrorLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		if err != nil || c.Response().StatusCode() >= 400 {
			data := LogData{
				Timestamp: start,
				Method:    c.Method(),
				Path:      c.Path(),
				Status:    c.Response().StatusCode(),
				Latency:   time.Since(start),
				IP:        c.IP(),
			}
			if err != nil {
				data.Error = err.Error()
			}
			line, _ := json.Marshal(data)
			logToFile("logs/errors.log", string(line))
		}

		return err
	}
}

func logToFile(filePath, message string) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v", err)
		return
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(message + "\n"); err != nil {
		log.Printf("Error writing to log file: %v", err)
	}
}
