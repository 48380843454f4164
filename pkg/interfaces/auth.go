package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrUnauthorized indicates the request carries no valid session.
	ErrUnauthorized = errors.New("auth: unauthorized")
	// ErrForbidden indicates the session lacks the required role.
	ErrForbidden = errors.New("auth: forbidden")
)

// Session identifies an authenticated editor.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// AuthService is the boundary to the host's authentication subsystem. The
// site module never inspects credentials; it only demands a session with the
// right privileges before admin mutations proceed.
type AuthService interface {
	// RequireAuth returns the current session or ErrUnauthorized.
	RequireAuth(ctx context.Context) (*Session, error)
	// RequireAdmin returns the current session when it carries the admin
	// role, ErrForbidden when it does not, and ErrUnauthorized when absent.
	RequireAdmin(ctx context.Context) (*Session, error)
}
