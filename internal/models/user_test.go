package models

import "testing"

func TestHasPermission(t *testing.T) {
	technician := &User{Roles: []string{RoleTechnician}, Permissions: []string{PermItemsView, PermCleaningsManage}}
	admin := &User{Roles: []string{RoleAdmin}}
	var nobody *User

	cases := []struct {
		name string
		user *User
		perm string
		want bool
	}{
		{"held permission", technician, PermItemsView, true},
		{"missing permission", technician, PermUsersManage, false},
		{"admin implies all", admin, PermUsersManage, true},
		{"nil user", nobody, PermItemsView, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.HasPermission(tc.perm); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestHasAnyPermission(t *testing.T) {
	user := &User{Permissions: []string{PermItemsView}}

	if user.HasAnyPermission() {
		t.Fatal("empty requirement set must never be satisfied")
	}
	if !user.HasAnyPermission(PermUsersManage, PermItemsView) {
		t.Fatal("expected one matching permission to satisfy")
	}
	if user.HasAnyPermission(PermUsersManage, PermAuditView) {
		t.Fatal("expected no match")
	}

	var nobody *User
	if nobody.HasAnyPermission(PermItemsView) {
		t.Fatal("nil user must not hold permissions")
	}
}

func TestHasAnyRole(t *testing.T) {
	user := &User{Roles: []string{RoleManager, RoleTechnician}}

	if !user.HasAnyRole(RoleAdmin, RoleManager) {
		t.Fatal("expected intersecting roles to match")
	}
	if user.HasAnyRole(RoleAdmin) {
		t.Fatal("expected no match")
	}
	if user.HasAnyRole() {
		t.Fatal("empty role set must not match")
	}
}

func TestSeesAllSites(t *testing.T) {
	cases := []struct {
		name string
		user *User
		want bool
	}{
		{"admin", &User{Roles: []string{RoleAdmin}}, true},
		{"headquarters user", &User{Site: &Site{Headquarters: true}}, true},
		{"regular site user", &User{SiteID: 2, Site: &Site{}}, false},
		{"no site loaded", &User{SiteID: 2}, false},
		{"nil user", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.SeesAllSites(); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}
