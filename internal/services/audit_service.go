package services

import (
	"context"
	"log"
	"time"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type AuditService struct {
	AuditRepo *repositories.AuditLogRepository
}

// Record writes an audit entry. Auditing is best effort; a failure is logged
// and never surfaces to the caller's request.
func (s *AuditService) Record(ctx context.Context, actorID int, action, entity string, entityID int, detail string) {
	_, err := s.AuditRepo.CreateAuditLog(ctx, models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	})
	if err != nil {
		log.Printf("Failed to record audit log (%s %s %d): %v", action, entity, entityID, err)
	}
}

func (s *AuditService) GetAuditLogs(ctx context.Context, params models.ListParams) ([]models.AuditLog, models.ListMeta, error) {
	return s.AuditRepo.GetAuditLogs(ctx, params)
}

func (s *AuditService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.AuditRepo.PurgeOlderThan(ctx, cutoff)
}
