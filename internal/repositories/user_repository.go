package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

var userSortColumns = map[string]string{
	"last_name":     "u.last_name",
	"email":         "u.email",
	"last_login_at": "u.last_login_at",
	"created_at":    "u.created_at",
}

const userSelect = `
	SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.site_id,
	       s.id, s.name, s.headquarters,
	       u.roles, u.permissions, u.last_login_at, u.created_at, u.updated_at, u.created_by_id
	FROM users u
	JOIN sites s ON u.site_id = s.id
`

// Roles and permissions live in TEXT columns as JSON arrays; decoding happens
// here so the rest of the code only sees slices.
func scanUser(scan func(dest ...interface{}) error) (models.User, error) {
	var (
		u           models.User
		site        models.Site
		roles       string
		permissions string
	)
	err := scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.SiteID,
		&site.ID, &site.Name, &site.Headquarters,
		&roles, &permissions, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt, &u.CreatedByID,
	)
	if err != nil {
		return models.User{}, err
	}
	u.Site = &site
	if err := json.Unmarshal([]byte(roles), &u.Roles); err != nil {
		return models.User{}, err
	}
	if err := json.Unmarshal([]byte(permissions), &u.Permissions); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	return string(b), err
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	roles, err := encodeList(user.Roles)
	if err != nil {
		return models.User{}, err
	}
	permissions, err := encodeList(user.Permissions)
	if err != nil {
		return models.User{}, err
	}

	query := `
		INSERT INTO users (first_name, last_name, email, password, site_id, roles, permissions, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		RETURNING id, created_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password, user.SiteID,
		roles, permissions, user.CreatedByID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, userSelect+` WHERE u.id = $1`, id)
	user, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrNoRecord
	}
	return user, err
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email)
	user, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrNoRecord
	}
	return user, err
}

// GetUsers lists users scoped to a site. A zero siteID means cross-site
// visibility (headquarters).
func (r *UserRepository) GetUsers(ctx context.Context, siteID int, params models.ListParams) ([]models.User, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if siteID != 0 {
		args = append(args, siteID)
		conditions = append(conditions, fmt.Sprintf("u.site_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)", len(args), len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM users u JOIN sites s ON u.site_id = s.id" + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := userSortColumns[params.SortBy]
	if !ok {
		column = "u.last_name"
	}
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		userSelect, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, models.ListMeta{}, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return users, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	roles, err := encodeList(user.Roles)
	if err != nil {
		return models.User{}, err
	}
	permissions, err := encodeList(user.Permissions)
	if err != nil {
		return models.User{}, err
	}

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, site_id = $4,
		    roles = $5, permissions = $6, updated_at = NOW()
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.SiteID, roles, permissions, user.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrNoRecord
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hashed string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashed, id)
	return err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNoRecord
	}
	return nil
}
