package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type MaintenanceRepository struct {
	Client *Client
}

func (r *MaintenanceRepository) List(ctx context.Context, params models.ListParams) (Page[models.Maintenance], error) {
	var page Page[models.Maintenance]
	err := r.Client.Get(ctx, "/maintenances", listQuery(params), &page)
	return page, err
}

func (r *MaintenanceRepository) Get(ctx context.Context, id int) (models.Maintenance, error) {
	var body struct {
		Data models.Maintenance `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/maintenances/%d", id), nil, &body)
	return body.Data, err
}

func (r *MaintenanceRepository) Create(ctx context.Context, maintenance models.Maintenance) (models.Maintenance, error) {
	var body struct {
		Data models.Maintenance `json:"data"`
	}
	err := r.Client.Post(ctx, "/maintenances", maintenance, &body)
	return body.Data, err
}

func (r *MaintenanceRepository) Update(ctx context.Context, maintenance models.Maintenance) (models.Maintenance, error) {
	var body struct {
		Data models.Maintenance `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/maintenances/%d", maintenance.ID), maintenance, &body)
	return body.Data, err
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/maintenances/%d", id))
}

type MaintenanceManager struct {
	Repo *MaintenanceRepository
}

func (m *MaintenanceManager) List(ctx context.Context, params models.ListParams) Result[Page[models.Maintenance]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.Maintenance]](err)
	}
	return ok(page)
}

func (m *MaintenanceManager) Get(ctx context.Context, id int) Result[models.Maintenance] {
	maintenance, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Maintenance](err)
	}
	return ok(maintenance)
}

func (m *MaintenanceManager) Create(ctx context.Context, maintenance models.Maintenance) Result[models.Maintenance] {
	created, err := m.Repo.Create(ctx, maintenance)
	if err != nil {
		return fail[models.Maintenance](err)
	}
	return ok(created)
}

// Resolve marks a maintenance resolved; the API stamps resolved_at.
func (m *MaintenanceManager) Resolve(ctx context.Context, id int) Result[models.Maintenance] {
	existing, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Maintenance](err)
	}
	existing.Resolved = true
	updated, err := m.Repo.Update(ctx, existing)
	if err != nil {
		return fail[models.Maintenance](err)
	}
	return ok(updated)
}

func (m *MaintenanceManager) Update(ctx context.Context, maintenance models.Maintenance) Result[models.Maintenance] {
	updated, err := m.Repo.Update(ctx, maintenance)
	if err != nil {
		return fail[models.Maintenance](err)
	}
	return ok(updated)
}

func (m *MaintenanceManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
