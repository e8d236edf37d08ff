package services

import (
	"context"
	"time"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type CleaningService struct {
	CleaningRepo *repositories.CleaningRepository
	ItemRepo     *repositories.ItemRepository
}

// CreateCleaning records a cleaning against an item. The site is inherited
// from the item so scoping stays consistent.
func (s *CleaningService) CreateCleaning(ctx context.Context, c models.Cleaning) (models.Cleaning, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, c.ItemID)
	if err != nil {
		return models.Cleaning{}, err
	}
	c.SiteID = item.SiteID
	if c.DoneAt.IsZero() {
		c.DoneAt = time.Now()
	}

	created, err := s.CleaningRepo.CreateCleaning(ctx, c)
	if err != nil {
		return models.Cleaning{}, err
	}
	return s.CleaningRepo.GetCleaningByID(ctx, created.ID)
}

func (s *CleaningService) GetCleaningByID(ctx context.Context, id int) (models.Cleaning, error) {
	return s.CleaningRepo.GetCleaningByID(ctx, id)
}

func (s *CleaningService) GetCleanings(ctx context.Context, siteID int, params models.ListParams) ([]models.Cleaning, models.ListMeta, error) {
	return s.CleaningRepo.GetCleanings(ctx, siteID, params)
}

func (s *CleaningService) UpdateCleaning(ctx context.Context, c models.Cleaning) (models.Cleaning, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, c.ItemID); err != nil {
		return models.Cleaning{}, err
	}
	return s.CleaningRepo.UpdateCleaning(ctx, c)
}

func (s *CleaningService) DeleteCleaning(ctx context.Context, id int) error {
	return s.CleaningRepo.DeleteCleaning(ctx, id)
}
