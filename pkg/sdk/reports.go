package sdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReportSummary aggregates the dashboard counters.
type ReportSummary struct {
	TotalPatients          int
	TotalAdmissions        int
	PatientsByGender       map[string]int
	AdmissionsByDepartment map[string]int
}

// TotalPatients returns the total number of registered patients.
func (c *Client) TotalPatients(ctx context.Context) (int, error) {
	return c.count(ctx, "/api/v1/reports/patients/count")
}

// TotalAdmissions returns the total number of admissions.
func (c *Client) TotalAdmissions(ctx context.Context) (int, error) {
	return c.count(ctx, "/api/v1/reports/admissions/count")
}

// PatientGenderDistribution returns patient counts keyed by gender.
func (c *Client) PatientGenderDistribution(ctx context.Context) (map[string]int, error) {
	return c.distribution(ctx, "/api/v1/reports/patients/gender-distribution")
}

// AdmissionCountByDepartment returns admission counts keyed by department
// name.
func (c *Client) AdmissionCountByDepartment(ctx context.Context) (map[string]int, error) {
	return c.distribution(ctx, "/api/v1/reports/admissions/count-by-department")
}

// ReportSummary fetches all dashboard counters in one call sequence.
func (c *Client) ReportSummary(ctx context.Context) (*ReportSummary, error) {
	summary := &ReportSummary{}
	var err error
	if summary.TotalPatients, err = c.TotalPatients(ctx); err != nil {
		return nil, err
	}
	if summary.TotalAdmissions, err = c.TotalAdmissions(ctx); err != nil {
		return nil, err
	}
	if summary.PatientsByGender, err = c.PatientGenderDistribution(ctx); err != nil {
		return nil, err
	}
	if summary.AdmissionsByDepartment, err = c.AdmissionCountByDepartment(ctx); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Client) count(ctx context.Context, path string) (int, error) {
	var n int
	if err := c.get(ctx, path, nil, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// distribution decodes either an object of label->count or the JPA projection
// shape, a list of [label, count] rows.
func (c *Client) distribution(ctx context.Context, path string) (map[string]int, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, nil, &raw); err != nil {
		return nil, err
	}

	var asMap map[string]int
	if err := json.Unmarshal(raw, &asMap); err == nil {
		return asMap, nil
	}

	var rows [][]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("unexpected distribution response shape at %s", path)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			continue
		}
		label, ok := row[0].(string)
		if !ok {
			continue
		}
		n, ok := row[1].(float64)
		if !ok {
			continue
		}
		out[label] = int(n)
	}
	return out, nil
}
