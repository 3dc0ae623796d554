package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"medicare-gateway/internal/domain"
)

// UserClient wraps the auth backend's session endpoint and the admin-only
// user management endpoints.
type UserClient struct {
	c     *Client
	cache SessionCache
}

// SessionCache is an optional short-TTL cache in front of GetSession. Only
// successful lookups are cached; a miss or a cache failure falls through to
// the backend so the gate keeps failing closed.
type SessionCache interface {
	Get(ctx context.Context, key string) (*domain.Session, bool)
	Set(ctx context.Context, key string, session *domain.Session)
}

// NewUserClient builds a UserClient. cache may be nil.
func NewUserClient(c *Client, cache SessionCache) *UserClient {
	return &UserClient{c: c, cache: cache}
}

// sessionPayload is the auth backend's get-session shape.
type sessionPayload struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// GetSession resolves the session bound to the given cookie string. Returns
// (nil, nil) when the caller is anonymous: no cookie, or the backend reports
// no session.
func (uc *UserClient) GetSession(ctx context.Context, cookie string) (*domain.Session, error) {
	if cookie == "" {
		return nil, nil
	}

	if uc.cache != nil {
		if s, ok := uc.cache.Get(ctx, cookie); ok {
			return s, nil
		}
	}

	var payload sessionPayload
	err := uc.c.do(ctx, "GET", "/api/auth/get-session", cookie, nil, &payload)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnauthorized):
		return nil, nil
	case err != nil:
		return nil, err
	}
	if payload.User.ID == "" {
		return nil, nil
	}

	session := &domain.Session{
		User: domain.SessionUser{
			ID:    payload.User.ID,
			Name:  payload.User.Name,
			Email: payload.User.Email,
			Role:  domain.ParseRole(payload.User.Role),
		},
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, cookie, session)
	}
	return session, nil
}

// User is a backend account as seen by the admin dashboard.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ListUsers fetches every account. Admin only; the backend enforces the role
// from the forwarded cookie.
func (uc *UserClient) ListUsers(ctx context.Context, cookie string) ([]User, error) {
	var users []User
	if err := uc.c.do(ctx, "GET", "/user", cookie, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus patches an account's status (e.g. ACTIVE/BLOCKED).
func (uc *UserClient) UpdateUserStatus(ctx context.Context, cookie, id, status string) (*User, error) {
	if status == "" {
		return nil, fmt.Errorf("status required")
	}
	var user User
	body := map[string]string{"status": status}
	if err := uc.c.do(ctx, "PATCH", "/user/"+url.PathEscape(id), cookie, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
