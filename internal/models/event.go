package models

import "time"

// Awareness event types published to the message queue
const (
	EventCampaignDispatched   = "campaign_dispatched"
	EventLinkClicked          = "link_clicked"
	EventCredentialsSubmitted = "credentials_submitted"
)

// AwarenessEvent is the message published for downstream consumers (SIEM,
// dashboards). Best-effort: publishing failures never fail the request.
type AwarenessEvent struct {
	Type         string    `json:"type"`
	CampaignID   string    `json:"campaign_id"`
	UserID       string    `json:"user_id,omitempty"`
	EmailsSent   int       `json:"emails_sent,omitempty"`
	EmailsFailed int       `json:"emails_failed,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
