package console

import (
	"context"
	"sync"

	"xetasuite/internal/models"
)

// Auth holds the console's session state: who is logged in and what they may
// do. Predicates are safe to call before any session exists.
type Auth struct {
	client *Client

	mu       sync.Mutex
	user     *models.User
	checking bool
}

func NewAuth(client *Client) *Auth {
	return &Auth{client: client}
}

func (a *Auth) Login(ctx context.Context, email, password string) Result[models.User] {
	creds := models.Credentials{Email: email, Password: password}
	var body struct {
		Data models.User `json:"data"`
	}
	if err := a.client.Post(ctx, "/auth/login", creds, &body); err != nil {
		return fail[models.User](err)
	}

	a.mu.Lock()
	user := body.Data
	a.user = &user
	a.mu.Unlock()
	return ok(body.Data)
}

// Logout ends the session. Local state is cleared even when the request
// fails; the server expires the session on its own eventually.
func (a *Auth) Logout(ctx context.Context) {
	a.client.Post(ctx, "/auth/logout", nil, nil)
	a.client.ResetCSRF()

	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
}

// CheckSession asks the server who the current session belongs to. Calls
// made while a check is already in flight return the cached user instead of
// issuing a duplicate request.
func (a *Auth) CheckSession(ctx context.Context) Result[models.User] {
	a.mu.Lock()
	if a.checking {
		user := a.user
		a.mu.Unlock()
		if user != nil {
			return ok(*user)
		}
		return fail[models.User](&APIError{Status: 401, Message: "session check in progress"})
	}
	a.checking = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.checking = false
		a.mu.Unlock()
	}()

	var body struct {
		Data models.User `json:"data"`
	}
	if err := a.client.Get(ctx, "/auth/me", nil, &body); err != nil {
		a.mu.Lock()
		a.user = nil
		a.mu.Unlock()
		return fail[models.User](err)
	}

	a.mu.Lock()
	user := body.Data
	a.user = &user
	a.mu.Unlock()
	return ok(body.Data)
}

// WSTicket fetches a short-lived ticket for the alert stream.
func (a *Auth) WSTicket(ctx context.Context) (string, error) {
	var body struct {
		Ticket string `json:"ticket"`
	}
	if err := a.client.Get(ctx, "/auth/ws-ticket", nil, &body); err != nil {
		return "", err
	}
	return body.Ticket, nil
}

func (a *Auth) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *Auth) LoggedIn() bool {
	return a.User() != nil
}

// Can reports whether the current user holds the permission.
func (a *Auth) Can(perm string) bool {
	return a.User().HasPermission(perm)
}

// CanAny is satisfied by at least one of the permissions; an empty set is
// never satisfied.
func (a *Auth) CanAny(perms ...string) bool {
	return a.User().HasAnyPermission(perms...)
}

func (a *Auth) HasAnyRole(roles ...string) bool {
	return a.User().HasAnyRole(roles...)
}
