package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DueTaskChecker logs a daily summary of overdue task allotments and open
// sub-allotments so nothing sits forgotten in the register.
type DueTaskChecker struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	runImmediately bool
	jobID          cron.EntryID
}

// NewDueTaskChecker creates a checker bound to the shared database handle
func NewDueTaskChecker(db *gorm.DB, runImmediately bool) *DueTaskChecker {
	return &DueTaskChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		runImmediately: runImmediately,
	}
}

// Start schedules the daily summary at 1:00 AM
func (d *DueTaskChecker) Start() error {
	var err error
	d.jobID, err = d.cronScheduler.AddFunc("0 0 1 * * *", func() {
		log.Println("Running scheduled daily due-task summary")
		d.runSummary()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	d.cronScheduler.Start()
	log.Println("Due-task scheduler started - will run daily at 1:00 AM")

	if d.runImmediately {
		d.runSummary()
	}
	return nil
}

// Stop terminates the scheduler
func (d *DueTaskChecker) Stop() {
	if d.cronScheduler != nil {
		d.cronScheduler.Stop()
		log.Println("Due-task scheduler stopped")
	}
}

func (d *DueTaskChecker) runSummary() {
	overdueTasks, openSubAllotments, openSuballotments, err := d.summarize(time.Now())
	if err != nil {
		log.Printf("Due-task summary failed: %v", err)
		return
	}
	log.Printf("Daily summary: %d overdue task allotments, %d open sub-allotments, %d open suballotments",
		overdueTasks, openSubAllotments, openSuballotments)
}

func (d *DueTaskChecker) summarize(now time.Time) (overdueTasks, openSubAllotments, openSuballotments int64, err error) {
	today := now.Format("2006-01-02")

	if err = d.db.Table("tasks_allotment_master").
		Where("due_date < ? AND (status IS NULL OR status <> ?)", today, "Completed").
		Count(&overdueTasks).Error; err != nil {
		return
	}
	if err = d.db.Table("sub_allotment").
		Where("completed = ?", 0).
		Count(&openSubAllotments).Error; err != nil {
		return
	}
	err = d.db.Table("suballotments").
		Where("completed = ?", "no").
		Count(&openSuballotments).Error
	return
}
