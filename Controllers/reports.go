package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"CaOffice/Models"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportTaskAllotments streams the full task-allotment register as an
// Excel attachment.
// GET /task-allotment/export
func (rc *ReportController) ExportTaskAllotments(c *fiber.Ctx) error {
	var tasks []Models.TaskAllotment
	if err := rc.DB.Order("code DESC").Find(&tasks).Error; err != nil {
		return dbError(c, err, "Failed to fetch tasks")
	}

	buf, err := buildTaskAllotmentWorkbook(tasks)
	if err != nil {
		return respondError(c, KindInternal, "Failed to generate report")
	}

	filename := fmt.Sprintf("task_allotments_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

func buildTaskAllotmentWorkbook(tasks []Models.TaskAllotment) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Task Allotments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Code", "Allot Date", "Due Date", "RM Employee", "Received By",
		"Placed At", "Client Code", "Financial Year", "Assessment Month",
		"Assessment For", "Alloted To", "Status", "Doc Received By",
		"Key Factor", "Prime Task", "Sub Task", "Time Taken",
		"Added By", "Added On",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, task := range tasks {
		row := rowIndex + 2
		values := []interface{}{
			task.Code,
			strCell(task.AllotDate),
			strCell(task.DueDate),
			intCell(task.RMEmpCode),
			intCell(task.ReceivedBy),
			strCell(task.PlacedAt),
			intCell(task.ClientCode),
			strCell(task.FinancialYear),
			strCell(task.AssessmentMonth),
			strCell(task.AssessmentFor),
			intCell(task.AllotedTo),
			strCell(task.Status),
			strCell(task.DocReceivedBy),
			strCell(task.KeyFactor),
			strCell(task.PrimeTaskname),
			strCell(task.SubTaskname),
			floatCell(task.TimeTaken),
			strCell(task.AddUserID),
			strCell(task.AddDate),
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.WriteToBuffer()
}

func strCell(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
