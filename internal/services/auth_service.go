package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
	"xetasuite/utils"
)

const wsTicketTTL = 2 * time.Minute

type AuthService struct {
	UserRepo      *repositories.UserRepository
	SessionRepo   *repositories.SessionRepository
	TicketManager *utils.Manager
	SessionTTL    time.Duration
}

// Login verifies credentials and opens a session. Credential failures are
// collapsed into ErrInvalidCredentials so the response does not reveal
// whether the email exists.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Session, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			return models.User{}, models.Session{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return models.User{}, models.Session{}, models.ErrInvalidCredentials
	}

	session := models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.SessionRepo.SetSession(ctx, session); err != nil {
		return models.User{}, models.Session{}, err
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Printf("Failed to update last login for user %d: %v", user.ID, err)
	}
	now := time.Now()
	user.LastLoginAt = &now

	return user, session, nil
}

// Logout closes the session. The store error is deliberately swallowed: the
// client clears its cookie either way.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.SessionRepo.DeleteSession(ctx, token); err != nil {
		log.Printf("Failed to delete session: %v", err)
	}
}

// CurrentUser resolves a session token to its user.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	session, err := s.SessionRepo.GetSession(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			return models.User{}, models.ErrSessionNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// WSTicket issues a short-lived ticket for the websocket upgrade.
func (s *AuthService) WSTicket(userID int) (string, error) {
	return s.TicketManager.NewTicket(userID, wsTicketTTL)
}

func (s *AuthService) ParseWSTicket(ticket string) (int, error) {
	return s.TicketManager.ParseTicket(ticket)
}
