package sdk

import (
	"context"
	"fmt"
)

// Admission mirrors the backend admission record.
type Admission struct {
	ID            int64  `json:"id"`
	PatientID     int64  `json:"patientId"`
	DepartmentID  int64  `json:"departmentId"`
	AdmissionDate string `json:"admissionDate"`
	DischargeDate string `json:"dischargeDate,omitempty"`
	Reason        string `json:"reasonForAdmission,omitempty"`
	Status        string `json:"status,omitempty"`
}

// AdmissionInput is the create/update payload for an admission.
type AdmissionInput struct {
	PatientID     int64  `json:"patientId"`
	DepartmentID  int64  `json:"departmentId"`
	AdmissionDate string `json:"admissionDate"`
	DischargeDate string `json:"dischargeDate,omitempty"`
	Reason        string `json:"reasonForAdmission,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ListAdmissions returns all admissions.
func (c *Client) ListAdmissions(ctx context.Context) ([]Admission, error) {
	var admissions []Admission
	if err := c.get(ctx, "/api/v1/admissions", nil, &admissions); err != nil {
		return nil, err
	}
	return admissions, nil
}

// GetAdmission retrieves a single admission by ID.
func (c *Client) GetAdmission(ctx context.Context, id int64) (*Admission, error) {
	var admission Admission
	if err := c.get(ctx, fmt.Sprintf("/api/v1/admissions/%d", id), nil, &admission); err != nil {
		return nil, err
	}
	return &admission, nil
}

// CreateAdmission records a new admission.
func (c *Client) CreateAdmission(ctx context.Context, input AdmissionInput) (*Admission, error) {
	var admission Admission
	if err := c.post(ctx, "/api/v1/admissions", input, &admission); err != nil {
		return nil, err
	}
	return &admission, nil
}

// UpdateAdmission replaces the admission identified by id.
func (c *Client) UpdateAdmission(ctx context.Context, id int64, input AdmissionInput) (*Admission, error) {
	var admission Admission
	if err := c.put(ctx, fmt.Sprintf("/api/v1/admissions/%d", id), input, &admission); err != nil {
		return nil, err
	}
	return &admission, nil
}

// DeleteAdmission removes the admission identified by id.
func (c *Client) DeleteAdmission(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/admissions/%d", id))
}
