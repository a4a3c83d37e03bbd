package sdk

import (
	"context"
	"fmt"
)

// Department mirrors the backend department record.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentInput is the create/update payload for a department.
type DepartmentInput struct {
	Name string `json:"name"`
}

// ListDepartments returns all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var departments []Department
	if err := c.get(ctx, "/api/v1/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// GetDepartment retrieves a single department by ID.
func (c *Client) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var department Department
	if err := c.get(ctx, fmt.Sprintf("/api/v1/departments/%d", id), nil, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// CreateDepartment adds a new department.
func (c *Client) CreateDepartment(ctx context.Context, input DepartmentInput) (*Department, error) {
	var department Department
	if err := c.post(ctx, "/api/v1/departments", input, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// UpdateDepartment replaces the department identified by id.
func (c *Client) UpdateDepartment(ctx context.Context, id int64, input DepartmentInput) (*Department, error) {
	var department Department
	if err := c.put(ctx, fmt.Sprintf("/api/v1/departments/%d", id), input, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// DeleteDepartment removes the department identified by id.
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/departments/%d", id))
}
