package services

import (
	"errors"
	"testing"

	"xetasuite/internal/models"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		FirstName: "Ana",
		LastName:  "Kovac",
		Email:     "ana@example.com",
		Password:  "longenough",
		SiteID:    1,
		Roles:     []string{models.RoleManager},
	}

	cases := []struct {
		name            string
		mutate          func(*models.User)
		requirePassword bool
		badField        string
	}{
		{"valid", func(u *models.User) {}, true, ""},
		{"missing first name", func(u *models.User) { u.FirstName = "" }, true, "first_name"},
		{"missing last name", func(u *models.User) { u.LastName = " " }, true, "last_name"},
		{"bad email", func(u *models.User) { u.Email = "nope" }, true, "email"},
		{"short password", func(u *models.User) { u.Password = "short" }, true, "password"},
		{"password optional on update", func(u *models.User) { u.Password = "" }, false, ""},
		{"missing site", func(u *models.User) { u.SiteID = 0 }, true, "site_id"},
		{"unknown role", func(u *models.User) { u.Roles = []string{"janitor"} }, true, "roles"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := valid
			tc.mutate(&user)

			err := validateUser(user, tc.requirePassword)
			if tc.badField == "" {
				if err != nil {
					t.Fatalf("expected no error got %v", err)
				}
				return
			}

			var v *models.ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("expected validation error got %v", err)
			}
			if _, ok := v.Fields[tc.badField]; !ok {
				t.Fatalf("expected error on field %s got %v", tc.badField, v.Fields)
			}
		})
	}
}
