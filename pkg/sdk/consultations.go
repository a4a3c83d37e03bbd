package sdk

import (
	"context"
	"fmt"
)

// Consultation mirrors the backend consultation record.
type Consultation struct {
	ID               int64  `json:"id"`
	AdmissionID      int64  `json:"admissionId"`
	ConsultationDate string `json:"consultationDate"`
	ConsultationType string `json:"consultationType,omitempty"`
}

// ConsultationInput is the create/update payload for a consultation.
type ConsultationInput struct {
	AdmissionID      int64  `json:"admissionId"`
	ConsultationDate string `json:"consultationDate"`
	ConsultationType string `json:"consultationType,omitempty"`
}

// ListConsultations returns all consultations.
func (c *Client) ListConsultations(ctx context.Context) ([]Consultation, error) {
	var consultations []Consultation
	if err := c.get(ctx, "/api/v1/consultations", nil, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

// GetConsultation retrieves a single consultation by ID.
func (c *Client) GetConsultation(ctx context.Context, id int64) (*Consultation, error) {
	var consultation Consultation
	if err := c.get(ctx, fmt.Sprintf("/api/v1/consultations/%d", id), nil, &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// CreateConsultation records a new consultation.
func (c *Client) CreateConsultation(ctx context.Context, input ConsultationInput) (*Consultation, error) {
	var consultation Consultation
	if err := c.post(ctx, "/api/v1/consultations", input, &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// UpdateConsultation replaces the consultation identified by id.
func (c *Client) UpdateConsultation(ctx context.Context, id int64, input ConsultationInput) (*Consultation, error) {
	var consultation Consultation
	if err := c.put(ctx, fmt.Sprintf("/api/v1/consultations/%d", id), input, &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// DeleteConsultation removes the consultation identified by id.
func (c *Client) DeleteConsultation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/consultations/%d", id))
}
