package job

import (
	"time"

	"go-dispatch/internal/geo"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// ServiceRequest is one dispatchable job. AcceptanceLogs accumulates every
// acceptance; the pipeline deliberately does not enforce single-acceptance
// exclusivity.
type ServiceRequest struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenantId,omitempty"`
	Type           string             `json:"type"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Location       *Location          `json:"location"`
	VehicleInfo    string             `json:"vehicleInfo,omitempty"`
	Status         Status             `json:"status"`
	AcceptanceLogs []JobAcceptanceLog `json:"acceptanceLogs"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// AcceptedBy identifies who took the job; all fields are optional.
type AcceptedBy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

type AcceptanceCoordinates struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}

type JobAcceptanceLog struct {
	ID          string                `json:"id"`
	AcceptedAt  time.Time             `json:"acceptedAt"`
	AcceptedBy  *AcceptedBy           `json:"acceptedBy,omitempty"`
	Coordinates AcceptanceCoordinates `json:"coordinates"`
	Platform    string                `json:"platform"`
}

// MileageLogEntry is one line of the append-only mileage ledger used for
// reimbursement.
type MileageLogEntry struct {
	ID               string       `json:"id"`
	RequestID        string       `json:"requestId"`
	JobName          string       `json:"jobName"`
	ReferenceNumber  string       `json:"referenceNumber"`
	RequestLocation  Location     `json:"requestLocation"`
	AcceptorLocation Location     `json:"acceptorLocation"`
	Distance         geo.Distance `json:"distance"`
	IsRoundTrip      bool         `json:"isRoundTrip"`
	CreatedAt        time.Time    `json:"createdAt"`
}
