package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type SiteRepository struct {
	Client *Client
}

func (r *SiteRepository) List(ctx context.Context, params models.ListParams) (Page[models.Site], error) {
	var page Page[models.Site]
	err := r.Client.Get(ctx, "/sites", listQuery(params), &page)
	return page, err
}

func (r *SiteRepository) Get(ctx context.Context, id int) (models.Site, error) {
	var body struct {
		Data models.Site `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/sites/%d", id), nil, &body)
	return body.Data, err
}

func (r *SiteRepository) Create(ctx context.Context, site models.Site) (models.Site, error) {
	var body struct {
		Data models.Site `json:"data"`
	}
	err := r.Client.Post(ctx, "/sites", site, &body)
	return body.Data, err
}

func (r *SiteRepository) Update(ctx context.Context, site models.Site) (models.Site, error) {
	var body struct {
		Data models.Site `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/sites/%d", site.ID), site, &body)
	return body.Data, err
}

func (r *SiteRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/sites/%d", id))
}

type SiteManager struct {
	Repo *SiteRepository
}

func (m *SiteManager) List(ctx context.Context, params models.ListParams) Result[Page[models.Site]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.Site]](err)
	}
	return ok(page)
}

func (m *SiteManager) Get(ctx context.Context, id int) Result[models.Site] {
	site, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Site](err)
	}
	return ok(site)
}

func (m *SiteManager) Create(ctx context.Context, site models.Site) Result[models.Site] {
	created, err := m.Repo.Create(ctx, site)
	if err != nil {
		return fail[models.Site](err)
	}
	return ok(created)
}

func (m *SiteManager) Update(ctx context.Context, site models.Site) Result[models.Site] {
	updated, err := m.Repo.Update(ctx, site)
	if err != nil {
		return fail[models.Site](err)
	}
	return ok(updated)
}

func (m *SiteManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
