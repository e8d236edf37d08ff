package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type CleaningRepository struct {
	Client *Client
}

func (r *CleaningRepository) List(ctx context.Context, params models.ListParams) (Page[models.Cleaning], error) {
	var page Page[models.Cleaning]
	err := r.Client.Get(ctx, "/cleanings", listQuery(params), &page)
	return page, err
}

func (r *CleaningRepository) Get(ctx context.Context, id int) (models.Cleaning, error) {
	var body struct {
		Data models.Cleaning `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/cleanings/%d", id), nil, &body)
	return body.Data, err
}

func (r *CleaningRepository) Create(ctx context.Context, cleaning models.Cleaning) (models.Cleaning, error) {
	var body struct {
		Data models.Cleaning `json:"data"`
	}
	err := r.Client.Post(ctx, "/cleanings", cleaning, &body)
	return body.Data, err
}

func (r *CleaningRepository) Update(ctx context.Context, cleaning models.Cleaning) (models.Cleaning, error) {
	var body struct {
		Data models.Cleaning `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/cleanings/%d", cleaning.ID), cleaning, &body)
	return body.Data, err
}

func (r *CleaningRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/cleanings/%d", id))
}

type CleaningManager struct {
	Repo *CleaningRepository
}

func (m *CleaningManager) List(ctx context.Context, params models.ListParams) Result[Page[models.Cleaning]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.Cleaning]](err)
	}
	return ok(page)
}

func (m *CleaningManager) Get(ctx context.Context, id int) Result[models.Cleaning] {
	cleaning, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Cleaning](err)
	}
	return ok(cleaning)
}

func (m *CleaningManager) Create(ctx context.Context, cleaning models.Cleaning) Result[models.Cleaning] {
	created, err := m.Repo.Create(ctx, cleaning)
	if err != nil {
		return fail[models.Cleaning](err)
	}
	return ok(created)
}

func (m *CleaningManager) Update(ctx context.Context, cleaning models.Cleaning) Result[models.Cleaning] {
	updated, err := m.Repo.Update(ctx, cleaning)
	if err != nil {
		return fail[models.Cleaning](err)
	}
	return ok(updated)
}

func (m *CleaningManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
