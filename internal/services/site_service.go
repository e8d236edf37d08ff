package services

import (
	"context"
	"strings"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type SiteService struct {
	SiteRepo *repositories.SiteRepository
}

func validateSite(site models.Site) error {
	v := models.NewValidationError()
	if strings.TrimSpace(site.Name) == "" {
		v.Add("name", "name is required")
	}
	if v.Empty() {
		return nil
	}
	return v
}

func (s *SiteService) CreateSite(ctx context.Context, site models.Site) (models.Site, error) {
	if err := validateSite(site); err != nil {
		return models.Site{}, err
	}
	return s.SiteRepo.CreateSite(ctx, site)
}

func (s *SiteService) GetSiteByID(ctx context.Context, id int) (models.Site, error) {
	return s.SiteRepo.GetSiteByID(ctx, id)
}

func (s *SiteService) GetSites(ctx context.Context, params models.ListParams) ([]models.Site, models.ListMeta, error) {
	return s.SiteRepo.GetSites(ctx, params)
}

func (s *SiteService) UpdateSite(ctx context.Context, site models.Site) (models.Site, error) {
	if err := validateSite(site); err != nil {
		return models.Site{}, err
	}
	return s.SiteRepo.UpdateSite(ctx, site)
}

func (s *SiteService) DeleteSite(ctx context.Context, id int) error {
	return s.SiteRepo.DeleteSite(ctx, id)
}
