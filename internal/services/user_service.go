package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
)

type UserService struct {
	UserRepo *repositories.UserRepository
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleTechnician:
		return true
	}
	return false
}

func validateUser(user models.User, requirePassword bool) error {
	v := models.NewValidationError()
	if strings.TrimSpace(user.FirstName) == "" {
		v.Add("first_name", "first name is required")
	}
	if strings.TrimSpace(user.LastName) == "" {
		v.Add("last_name", "last name is required")
	}
	if !strings.Contains(user.Email, "@") {
		v.Add("email", "a valid email is required")
	}
	if requirePassword && len(user.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if user.SiteID <= 0 {
		v.Add("site_id", "site is required")
	}
	for _, r := range user.Roles {
		if !validRole(r) {
			v.Add("roles", "unknown role: "+r)
			break
		}
	}
	if v.Empty() {
		return nil
	}
	return v
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validateUser(user, true); err != nil {
		return models.User{}, err
	}

	_, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return models.User{}, models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrNoRecord) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashed)

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context, siteID int, params models.ListParams) ([]models.User, models.ListMeta, error) {
	return s.UserRepo.GetUsers(ctx, siteID, params)
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validateUser(user, false); err != nil {
		return models.User{}, err
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err == nil && existing.ID != user.ID {
		return models.User{}, models.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, models.ErrNoRecord) {
		return models.User{}, err
	}

	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) UpdatePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		v := models.NewValidationError()
		v.Add("password", "password must be at least 8 characters")
		return v
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, userID, string(hashed))
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
