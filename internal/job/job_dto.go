package job

import "go-dispatch/internal/geo"

// CoordinatesRequest uses pointers so zero (the equator / prime meridian) is
// accepted while a missing field still fails binding.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Accuracy  *float64 `json:"accuracy"`
}

type CreateTestJobRequest struct {
	TenantID string `json:"tenantId"`
}

type AcceptJobRequest struct {
	AcceptorCoordinates CoordinatesRequest `json:"acceptorCoordinates" binding:"required"`
	AcceptedBy          *AcceptedBy        `json:"acceptedBy"`
	Platform            string             `json:"platform" binding:"omitempty,oneof=ios android web windows macos unknown"`
	TenantID            string             `json:"tenantId"`
}

type AcceptJobResponse struct {
	Success       bool             `json:"success"`
	Request       ServiceRequest   `json:"request"`
	AcceptanceLog JobAcceptanceLog `json:"acceptanceLog"`
}

type RoundTripRequest struct {
	AcceptorCoordinates CoordinatesRequest `json:"acceptorCoordinates" binding:"required"`
	TenantID            string             `json:"tenantId"`
}

type RoundTripResponse struct {
	RequestID         string       `json:"requestId"`
	RequestLocation   Location     `json:"requestLocation"`
	AcceptorLocation  Location     `json:"acceptorLocation"`
	OneWayDistance    geo.Distance `json:"oneWayDistance"`
	RoundTripDistance geo.Distance `json:"roundTripDistance"`
}

type MileageLogRequest struct {
	JobName             string             `json:"jobName" binding:"required"`
	ReferenceNumber     string             `json:"referenceNumber" binding:"required"`
	AcceptorCoordinates CoordinatesRequest `json:"acceptorCoordinates" binding:"required"`
	IsRoundTrip         *bool              `json:"isRoundTrip"`
	TenantID            string             `json:"tenantId"`
}
