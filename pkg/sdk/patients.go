package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Patient mirrors the backend patient record.
type Patient struct {
	ID           int64  `json:"id"`
	RecordNumber string `json:"recordNumber,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender,omitempty"` // MASCULIN, FEMININ or AUTRE
	BirthDate    string `json:"birthDate,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Address      string `json:"address,omitempty"`
}

// PatientInput is the create/update payload for a patient.
type PatientInput struct {
	RecordNumber string `json:"recordNumber,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender,omitempty"`
	BirthDate    string `json:"birthDate,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Address      string `json:"address,omitempty"`
}

// ListPatientsOptions pages and narrows the patient list.
type ListPatientsOptions struct {
	Page   int
	Size   int // defaults to 10
	Search string
}

// PatientPage is one page of the patient list.
type PatientPage struct {
	Content       []Patient
	TotalPages    int
	TotalElements int
}

// ListPatients returns one page of patients, optionally filtered by a search
// term. Older backend builds return a bare array instead of the page
// envelope; both shapes decode into a PatientPage.
func (c *Client) ListPatients(ctx context.Context, opts ListPatientsOptions) (*PatientPage, error) {
	size := opts.Size
	if size <= 0 {
		size = 10
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("size", strconv.Itoa(size))
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/api/v1/patients", query, &raw); err != nil {
		return nil, err
	}
	return decodePatientPage(raw)
}

func decodePatientPage(raw json.RawMessage) (*PatientPage, error) {
	var envelope struct {
		Content       []Patient `json:"content"`
		TotalPages    int       `json:"totalPages"`
		TotalElements int       `json:"totalElements"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Content != nil {
		return &PatientPage{
			Content:       envelope.Content,
			TotalPages:    envelope.TotalPages,
			TotalElements: envelope.TotalElements,
		}, nil
	}

	var list []Patient
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("unexpected patient list response shape: %w", err)
	}
	return &PatientPage{Content: list, TotalPages: 1, TotalElements: len(list)}, nil
}

// GetPatient retrieves a single patient by ID.
func (c *Client) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	var patient Patient
	if err := c.get(ctx, fmt.Sprintf("/api/v1/patients/%d", id), nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// CreatePatient registers a new patient.
func (c *Client) CreatePatient(ctx context.Context, input PatientInput) (*Patient, error) {
	var patient Patient
	if err := c.post(ctx, "/api/v1/patients", input, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient replaces the patient record identified by id.
func (c *Client) UpdatePatient(ctx context.Context, id int64, input PatientInput) (*Patient, error) {
	var patient Patient
	if err := c.put(ctx, fmt.Sprintf("/api/v1/patients/%d", id), input, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// DeletePatient removes the patient identified by id.
func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/patients/%d", id))
}
