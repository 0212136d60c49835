package schedule

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"heatwave-api/internal/domain/gateway/db"
	"heatwave-api/pkg/log"
	"heatwave-api/pkg/msg"
)

// AuditCleanupScheduler removes audit rows older than the retention window
type AuditCleanupScheduler struct {
	scheduler     gocron.Scheduler
	auditGateway  db.AuditGateway
	retentionDays int
}

func NewAuditCleanupScheduler(auditGateway db.AuditGateway, retentionDays int) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{auditGateway: auditGateway, retentionDays: retentionDays}
}

// InitAuditCleanupScheduleTasks initializes the audit retention cleanup job
func (s *AuditCleanupScheduler) InitAuditCleanupScheduleTasks(cronExpression string) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	if _, err := scheduler.NewJob(
		gocron.CronJob(cronExpression, false),
		gocron.NewTask(s.ClearExpiredAudits),
	); err != nil {
		return err
	}

	s.scheduler = scheduler
	s.scheduler.Start()
	return nil
}

// ClearExpiredAudits deletes rows older than the retention window
func (s *AuditCleanupScheduler) ClearExpiredAudits() {
	log.Info(msg.GetMessage("audit.cron.start"))

	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	removed, err := s.auditGateway.DeleteOlderThan(cutoff)
	if err != nil {
		log.Error(msg.GetMessage("audit.error.clear-failed", err))
		return
	}

	log.Info(msg.GetMessage("audit.cron.end", removed))
}

// Stop gracefully stops the scheduler
func (s *AuditCleanupScheduler) Stop() {
	if s.scheduler != nil {
		_ = s.scheduler.Shutdown()
	}
}
