package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/reports/patients/count":
			json.NewEncoder(w).Encode(161)
		case "/api/v1/reports/admissions/count":
			json.NewEncoder(w).Encode(54)
		case "/api/v1/reports/patients/gender-distribution":
			// Object shape.
			json.NewEncoder(w).Encode(map[string]int{"MASCULIN": 90, "FEMININ": 69, "AUTRE": 2})
		case "/api/v1/reports/admissions/count-by-department":
			// JPA projection shape: rows of [label, count].
			json.NewEncoder(w).Encode([]any{
				[]any{"Cardiologie", 20},
				[]any{"Urgences", 34},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, WithCredentialStore(authedStore(t, "abc")))
	summary, err := client.ReportSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 161, summary.TotalPatients)
	assert.Equal(t, 54, summary.TotalAdmissions)
	assert.Equal(t, map[string]int{"MASCULIN": 90, "FEMININ": 69, "AUTRE": 2}, summary.PatientsByGender)
	assert.Equal(t, map[string]int{"Cardiologie": 20, "Urgences": 34}, summary.AdmissionsByDepartment)
}

func TestDistribution_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode("oops")
	}))
	defer server.Close()

	client := NewClient(server.URL, WithCredentialStore(authedStore(t, "abc")))
	_, err := client.PatientGenderDistribution(context.Background())
	assert.Error(t, err)
}

func TestListAuditEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/audit-logs", r.URL.Path)
		json.NewEncoder(w).Encode([]AuditEvent{
			{ID: 1, Username: "admin", Action: "LOGIN", EventDate: "2026-08-28T09:00:00Z"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithCredentialStore(authedStore(t, "abc")))
	events, err := client.ListAuditEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "LOGIN", events[0].Action)
}
