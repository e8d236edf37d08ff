package main

import (
	"context"
	"time"
)

const auditCleanerTimeout = 1 * time.Minute

// runAuditCleaner purges audit logs older than the configured retention,
// once at startup and then daily.
func (app *application) runAuditCleaner() {
	retention := time.Duration(app.cfg.Audit.RetentionDays) * 24 * time.Hour

	runOnce := func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditCleanerTimeout)
		purged, err := app.auditService.PurgeOlderThan(ctx, time.Now().Add(-retention))
		cancel()
		if err != nil {
			app.errorLog.Printf("audit cleaner: failed to purge old audit logs: %v", err)
		} else if purged > 0 {
			app.infoLog.Printf("audit cleaner: purged %d audit logs", purged)
		}
	}

	runOnce()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		runOnce()
	}
}
