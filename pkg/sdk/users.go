package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// User mirrors the backend user account. Role management is admin-only on
// the backend side; the sdk just forwards the calls.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"nomComplet,omitempty"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}

// UserInput is the create/update payload for a user account.
type UserInput struct {
	Username string   `json:"username"`
	FullName string   `json:"nomComplet,omitempty"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// ListUsers returns all user accounts.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/v1/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser adds a new user account.
func (c *Client) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	var user User
	if err := c.post(ctx, "/api/v1/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces the user account identified by id.
func (c *Client) UpdateUser(ctx context.Context, id int64, input UserInput) (*User, error) {
	var user User
	if err := c.put(ctx, fmt.Sprintf("/api/v1/users/%d", id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user account identified by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/users/%d", id))
}

// AssignRole grants role to the user identified by id.
func (c *Client) AssignRole(ctx context.Context, id int64, role string) error {
	return c.put(ctx, fmt.Sprintf("/api/v1/users/%d/role/%s", id, url.PathEscape(role)), nil, nil)
}
