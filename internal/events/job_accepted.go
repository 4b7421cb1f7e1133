package events

import (
	"context"
	"time"
)

const JobLifecycleTopic = "dispatch.job.lifecycle.v1"

type JobAcceptedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	TenantID   string    `json:"tenant_id,omitempty"`
	Platform   string    `json:"platform"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// Publisher decouples the job pipeline from the broker; a nil Publisher means
// eventing is disabled.
type Publisher interface {
	PublishJobAccepted(ctx context.Context, event JobAcceptedEvent) error
}
