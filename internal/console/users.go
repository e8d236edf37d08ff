package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

// UserInput carries the fields the API accepts when creating or updating a
// user; the password never travels on the User model itself.
type UserInput struct {
	ID          int      `json:"id,omitempty"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	Password    string   `json:"password,omitempty"`
	SiteID      int      `json:"site_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type UserRepository struct {
	Client *Client
}

func (r *UserRepository) List(ctx context.Context, params models.ListParams) (Page[models.User], error) {
	var page Page[models.User]
	err := r.Client.Get(ctx, "/users", listQuery(params), &page)
	return page, err
}

func (r *UserRepository) Get(ctx context.Context, id int) (models.User, error) {
	var body struct {
		Data models.User `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &body)
	return body.Data, err
}

func (r *UserRepository) Create(ctx context.Context, in UserInput) (models.User, error) {
	var body struct {
		Data models.User `json:"data"`
	}
	err := r.Client.Post(ctx, "/users", in, &body)
	return body.Data, err
}

func (r *UserRepository) Update(ctx context.Context, in UserInput) (models.User, error) {
	var body struct {
		Data models.User `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/users/%d", in.ID), in, &body)
	return body.Data, err
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	in := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return r.Client.Put(ctx, "/auth/password", in, nil)
}

type UserManager struct {
	Repo *UserRepository
}

func (m *UserManager) List(ctx context.Context, params models.ListParams) Result[Page[models.User]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.User]](err)
	}
	return ok(page)
}

func (m *UserManager) Get(ctx context.Context, id int) Result[models.User] {
	user, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.User](err)
	}
	return ok(user)
}

func (m *UserManager) Create(ctx context.Context, in UserInput) Result[models.User] {
	created, err := m.Repo.Create(ctx, in)
	if err != nil {
		return fail[models.User](err)
	}
	return ok(created)
}

func (m *UserManager) Update(ctx context.Context, in UserInput) Result[models.User] {
	updated, err := m.Repo.Update(ctx, in)
	if err != nil {
		return fail[models.User](err)
	}
	return ok(updated)
}

func (m *UserManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}

func (m *UserManager) UpdatePassword(ctx context.Context, oldPassword, newPassword string) Result[struct{}] {
	if err := m.Repo.UpdatePassword(ctx, oldPassword, newPassword); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}
