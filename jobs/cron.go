package jobs

import (
	"context"
	"time"

	"faceattendance/services/logger"

	"github.com/robfig/cron/v3"
)

// OpenCheckInSpec chạy lúc 0h mỗi ngày theo múi giờ của scheduler
const OpenCheckInSpec = "0 0 * * *"

const openCheckInTimeout = time.Minute

// OpenCheckInReporter announces the users left checked in when the day ended.
type OpenCheckInReporter interface {
	ReportOpenCheckIns(ctx context.Context) (int, error)
}

// OpenCheckInJob là job cron báo các user quên check-out hôm qua qua websocket
type OpenCheckInJob struct {
	reporter OpenCheckInReporter
	logger   logger.Logger
}

func NewOpenCheckInJob(reporter OpenCheckInReporter, log logger.Logger) *OpenCheckInJob {
	return &OpenCheckInJob{reporter: reporter, logger: log}
}

// Run implements cron.Job.
func (j *OpenCheckInJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), openCheckInTimeout)
	defer cancel()

	n, err := j.reporter.ReportOpenCheckIns(ctx)
	if err != nil {
		j.logger.Error("❌ Open check-in report failed: %v", err)
		return
	}
	j.logger.Info("✅ Reported %d open check-in(s)", n)
}

// InitCronJobs đăng ký các cron job; caller tự gọi c.Start()
func InitCronJobs(c *cron.Cron, reporter OpenCheckInReporter, log logger.Logger) error {
	if _, err := c.AddJob(OpenCheckInSpec, NewOpenCheckInJob(reporter, log)); err != nil {
		return err
	}
	log.Info("Cron jobs initialized successfully")
	return nil
}
