package models

import (
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
)

// Flat permission strings checked by the API middleware and mirrored by the
// console predicates. The admin role implies all of them.
const (
	PermSitesView         = "sites.view"
	PermSitesManage       = "sites.manage"
	PermItemsView         = "items.view"
	PermItemsManage       = "items.manage"
	PermSuppliersView     = "suppliers.view"
	PermSuppliersManage   = "suppliers.manage"
	PermCleaningsView     = "cleanings.view"
	PermCleaningsManage   = "cleanings.manage"
	PermMaintenancesView  = "maintenances.view"
	PermMaintenancesManage = "maintenances.manage"
	PermUsersView         = "users.view"
	PermUsersManage       = "users.manage"
	PermAuditView         = "audit.view"
)

type User struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	SiteID      int        `json:"site_id"`
	Site        *Site      `json:"site,omitempty"`
	Roles       []string   `json:"roles"`
	Permissions []string   `json:"permissions"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedByID int        `json:"created_by_id"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// HasPermission reports whether the user carries the permission. Admins pass
// every check; a nil user passes none.
func (u *User) HasPermission(perm string) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAnyPermission is satisfied by at least one of the given permissions.
// An empty requirement set is never satisfied.
func (u *User) HasAnyPermission(perms ...string) bool {
	if u == nil || len(perms) == 0 {
		return false
	}
	for _, p := range perms {
		if u.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user's roles intersect the given set.
func (u *User) HasAnyRole(roles ...string) bool {
	if u == nil {
		return false
	}
	for _, want := range roles {
		for _, have := range u.Roles {
			if want == have {
				return true
			}
		}
	}
	return false
}

// SeesAllSites reports cross-site visibility: admins and users attached to
// the headquarters site are not scoped to a single site.
func (u *User) SeesAllSites() bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.Site != nil && u.Site.Headquarters
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
