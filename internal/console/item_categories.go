package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type ItemCategoryRepository struct {
	Client *Client
}

func (r *ItemCategoryRepository) List(ctx context.Context, params models.ListParams) (Page[models.ItemCategory], error) {
	var page Page[models.ItemCategory]
	err := r.Client.Get(ctx, "/item-categories", listQuery(params), &page)
	return page, err
}

func (r *ItemCategoryRepository) Get(ctx context.Context, id int) (models.ItemCategory, error) {
	var body struct {
		Data models.ItemCategory `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/item-categories/%d", id), nil, &body)
	return body.Data, err
}

func (r *ItemCategoryRepository) Create(ctx context.Context, category models.ItemCategory) (models.ItemCategory, error) {
	var body struct {
		Data models.ItemCategory `json:"data"`
	}
	err := r.Client.Post(ctx, "/item-categories", category, &body)
	return body.Data, err
}

func (r *ItemCategoryRepository) Update(ctx context.Context, category models.ItemCategory) (models.ItemCategory, error) {
	var body struct {
		Data models.ItemCategory `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/item-categories/%d", category.ID), category, &body)
	return body.Data, err
}

func (r *ItemCategoryRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/item-categories/%d", id))
}

type ItemCategoryManager struct {
	Repo *ItemCategoryRepository
}

func (m *ItemCategoryManager) List(ctx context.Context, params models.ListParams) Result[Page[models.ItemCategory]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.ItemCategory]](err)
	}
	return ok(page)
}

func (m *ItemCategoryManager) Get(ctx context.Context, id int) Result[models.ItemCategory] {
	category, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.ItemCategory](err)
	}
	return ok(category)
}

func (m *ItemCategoryManager) Create(ctx context.Context, category models.ItemCategory) Result[models.ItemCategory] {
	created, err := m.Repo.Create(ctx, category)
	if err != nil {
		return fail[models.ItemCategory](err)
	}
	return ok(created)
}

func (m *ItemCategoryManager) Update(ctx context.Context, category models.ItemCategory) Result[models.ItemCategory] {
	updated, err := m.Repo.Update(ctx, category)
	if err != nil {
		return fail[models.ItemCategory](err)
	}
	return ok(updated)
}

func (m *ItemCategoryManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
