package services

import (
	"context"
	"strings"
	"time"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type MaintenanceService struct {
	MaintenanceRepo *repositories.MaintenanceRepository
	ItemRepo        *repositories.ItemRepository
}

func (s *MaintenanceService) CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	if strings.TrimSpace(m.Description) == "" {
		v := models.NewValidationError()
		v.Add("description", "description is required")
		return models.Maintenance{}, v
	}

	item, err := s.ItemRepo.GetItemByID(ctx, m.ItemID)
	if err != nil {
		return models.Maintenance{}, err
	}
	m.SiteID = item.SiteID

	created, err := s.MaintenanceRepo.CreateMaintenance(ctx, m)
	if err != nil {
		return models.Maintenance{}, err
	}
	return s.MaintenanceRepo.GetMaintenanceByID(ctx, created.ID)
}

func (s *MaintenanceService) GetMaintenanceByID(ctx context.Context, id int) (models.Maintenance, error) {
	return s.MaintenanceRepo.GetMaintenanceByID(ctx, id)
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, siteID int, params models.ListParams) ([]models.Maintenance, models.ListMeta, error) {
	return s.MaintenanceRepo.GetMaintenances(ctx, siteID, params)
}

// UpdateMaintenance stamps resolved_at on the transition to resolved and
// clears it when a maintenance is reopened.
func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	existing, err := s.MaintenanceRepo.GetMaintenanceByID(ctx, m.ID)
	if err != nil {
		return models.Maintenance{}, err
	}

	if m.Resolved && !existing.Resolved {
		now := time.Now()
		m.ResolvedAt = &now
	} else if m.Resolved {
		m.ResolvedAt = existing.ResolvedAt
	} else {
		m.ResolvedAt = nil
	}

	return s.MaintenanceRepo.UpdateMaintenance(ctx, m)
}

func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id int) error {
	return s.MaintenanceRepo.DeleteMaintenance(ctx, id)
}
