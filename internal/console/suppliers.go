package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type SupplierRepository struct {
	Client *Client
}

func (r *SupplierRepository) List(ctx context.Context, params models.ListParams) (Page[models.Supplier], error) {
	var page Page[models.Supplier]
	err := r.Client.Get(ctx, "/suppliers", listQuery(params), &page)
	return page, err
}

func (r *SupplierRepository) Get(ctx context.Context, id int) (models.Supplier, error) {
	var body struct {
		Data models.Supplier `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/suppliers/%d", id), nil, &body)
	return body.Data, err
}

func (r *SupplierRepository) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	var body struct {
		Data models.Supplier `json:"data"`
	}
	err := r.Client.Post(ctx, "/suppliers", supplier, &body)
	return body.Data, err
}

func (r *SupplierRepository) Update(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	var body struct {
		Data models.Supplier `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/suppliers/%d", supplier.ID), supplier, &body)
	return body.Data, err
}

func (r *SupplierRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}

type SupplierManager struct {
	Repo *SupplierRepository
}

func (m *SupplierManager) List(ctx context.Context, params models.ListParams) Result[Page[models.Supplier]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.Supplier]](err)
	}
	return ok(page)
}

func (m *SupplierManager) Get(ctx context.Context, id int) Result[models.Supplier] {
	supplier, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Supplier](err)
	}
	return ok(supplier)
}

func (m *SupplierManager) Create(ctx context.Context, supplier models.Supplier) Result[models.Supplier] {
	created, err := m.Repo.Create(ctx, supplier)
	if err != nil {
		return fail[models.Supplier](err)
	}
	return ok(created)
}

func (m *SupplierManager) Update(ctx context.Context, supplier models.Supplier) Result[models.Supplier] {
	updated, err := m.Repo.Update(ctx, supplier)
	if err != nil {
		return fail[models.Supplier](err)
	}
	return ok(updated)
}

func (m *SupplierManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
