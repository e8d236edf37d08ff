package services

import (
	"context"
	"strings"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type ItemCategoryService struct {
	ItemCategoryRepo *repositories.ItemCategoryRepository
}

func (s *ItemCategoryService) CreateItemCategory(ctx context.Context, c models.ItemCategory) (models.ItemCategory, error) {
	if strings.TrimSpace(c.Name) == "" {
		v := models.NewValidationError()
		v.Add("name", "name is required")
		return models.ItemCategory{}, v
	}
	return s.ItemCategoryRepo.CreateItemCategory(ctx, c)
}

func (s *ItemCategoryService) GetItemCategoryByID(ctx context.Context, id int) (models.ItemCategory, error) {
	return s.ItemCategoryRepo.GetItemCategoryByID(ctx, id)
}

func (s *ItemCategoryService) GetItemCategories(ctx context.Context, params models.ListParams) ([]models.ItemCategory, models.ListMeta, error) {
	return s.ItemCategoryRepo.GetItemCategories(ctx, params)
}

func (s *ItemCategoryService) UpdateItemCategory(ctx context.Context, c models.ItemCategory) (models.ItemCategory, error) {
	if strings.TrimSpace(c.Name) == "" {
		v := models.NewValidationError()
		v.Add("name", "name is required")
		return models.ItemCategory{}, v
	}
	return s.ItemCategoryRepo.UpdateItemCategory(ctx, c)
}

func (s *ItemCategoryService) DeleteItemCategory(ctx context.Context, id int) error {
	return s.ItemCategoryRepo.DeleteItemCategory(ctx, id)
}
