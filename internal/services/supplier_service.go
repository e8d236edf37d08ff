package services

import (
	"context"
	"strings"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type SupplierService struct {
	SupplierRepo *repositories.SupplierRepository
}

func validateSupplier(s models.Supplier) error {
	v := models.NewValidationError()
	if strings.TrimSpace(s.Name) == "" {
		v.Add("name", "name is required")
	}
	if s.Email != "" && !strings.Contains(s.Email, "@") {
		v.Add("email", "a valid email is required")
	}
	if v.Empty() {
		return nil
	}
	return v
}

func (s *SupplierService) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	if err := validateSupplier(supplier); err != nil {
		return models.Supplier{}, err
	}
	return s.SupplierRepo.CreateSupplier(ctx, supplier)
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, id int) (models.Supplier, error) {
	return s.SupplierRepo.GetSupplierByID(ctx, id)
}

func (s *SupplierService) GetSuppliers(ctx context.Context, params models.ListParams) ([]models.Supplier, models.ListMeta, error) {
	return s.SupplierRepo.GetSuppliers(ctx, params)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	if err := validateSupplier(supplier); err != nil {
		return models.Supplier{}, err
	}
	return s.SupplierRepo.UpdateSupplier(ctx, supplier)
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id int) error {
	return s.SupplierRepo.DeleteSupplier(ctx, id)
}
