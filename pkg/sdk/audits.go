package sdk

import "context"

// AuditEvent is one entry of the backend audit log.
type AuditEvent struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	EventDate string `json:"eventDate"`
}

// ListAuditEvents returns the audit log. The endpoint is admin-only on the
// backend.
func (c *Client) ListAuditEvents(ctx context.Context) ([]AuditEvent, error) {
	var events []AuditEvent
	if err := c.get(ctx, "/api/v1/audit-logs", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
