package CronJobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"CaOffice/Models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	Models.Migrate(db)
	return db
}

func strPtr(s string) *string { return &s }

func TestSummarizeCounts(t *testing.T) {
	db := newTestDB(t)

	pending := "Pending"
	completedStatus := "Completed"
	require.NoError(t, db.Create(&Models.TaskAllotment{
		AllotDate: strPtr("2024-01-01"),
		DueDate:   strPtr("2024-01-31"),
		Status:    &pending,
	}).Error)
	require.NoError(t, db.Create(&Models.TaskAllotment{
		AllotDate: strPtr("2024-01-01"),
		DueDate:   strPtr("2024-01-31"),
		Status:    &completedStatus,
	}).Error)
	require.NoError(t, db.Create(&Models.Suballotment{
		FileName:    strPtr("Walk-in"),
		TaskName:    strPtr("Notice reply"),
		AllotedDate: strPtr("2024-01-01"),
		Completed:   "no",
	}).Error)

	checker := NewDueTaskChecker(db, false)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	overdue, openSub, openFree, err := checker.summarize(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, overdue, "completed tasks are not overdue")
	assert.EqualValues(t, 0, openSub)
	assert.EqualValues(t, 1, openFree)
}

func TestCheckerStartStop(t *testing.T) {
	db := newTestDB(t)

	checker := NewDueTaskChecker(db, true)
	require.NoError(t, checker.Start())
	checker.Stop()
}
