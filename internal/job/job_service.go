package job

import (
	"context"
	"time"

	"go-dispatch/internal/events"
	"go-dispatch/internal/geo"
	joberrors "go-dispatch/internal/job/errors"
	"go-dispatch/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	CreateTestJob(ctx context.Context, tenantID string) (ServiceRequest, error)
	Accept(ctx context.Context, tenantID, requestID string, req AcceptJobRequest) (AcceptJobResponse, error)
	RoundTrip(ctx context.Context, tenantID, requestID string, req RoundTripRequest) (RoundTripResponse, error)
	PostMileage(ctx context.Context, tenantID, requestID string, req MileageLogRequest) (MileageLogEntry, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
}

// NewService accepts an optional publisher; without one, lifecycle events are
// simply not emitted.
func NewService(repo Repository, publisher ...events.Publisher) Service {
	var p events.Publisher
	if len(publisher) > 0 {
		p = publisher[0]
	}
	return &service{repo: repo, publisher: p}
}

// CreateTestJob inserts a pending request at a fixed Austin location, used to
// exercise the mileage pipeline end to end.
func (s *service) CreateTestJob(ctx context.Context, tenantID string) (ServiceRequest, error) {
	l := contextutil.GetLogger(ctx, nil)

	testJob := ServiceRequest{
		ID:          "test-job-" + uuid.NewString(),
		TenantID:    tenantID,
		Type:        "roadside",
		Name:        "Test Customer",
		Phone:       "555-0123",
		Email:       "test@example.com",
		Title:       "Test Job - Tire Change",
		Description: "Test job for mileage calculation",
		Location: &Location{
			Latitude:  30.2672,
			Longitude: -97.7431,
			Address:   "Austin, TX",
		},
		VehicleInfo:    "2020 Toyota Camry",
		Status:         StatusPending,
		AcceptanceLogs: []JobAcceptanceLog{},
		CreatedAt:      time.Now().UTC(),
	}

	requests := s.repo.ListRequests(ctx, tenantID)
	requests = append(requests, testJob)
	s.repo.SaveRequests(ctx, tenantID, requests)

	l.Info("test job created", zap.String("request_id", testJob.ID))
	return testJob, nil
}

// Accept appends an acceptance log and moves the request to scheduled. A
// request may be accepted any number of times; the ledger accumulates.
func (s *service) Accept(ctx context.Context, tenantID, requestID string, req AcceptJobRequest) (AcceptJobResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	requests := s.repo.ListRequests(ctx, tenantID)
	idx := findRequest(requests, requestID)
	if idx == -1 {
		return AcceptJobResponse{}, joberrors.ErrRequestNotFound
	}

	platform := req.Platform
	if platform == "" {
		platform = "unknown"
	}

	acceptance := JobAcceptanceLog{
		ID:         "acceptance-" + uuid.NewString(),
		AcceptedAt: time.Now().UTC(),
		AcceptedBy: req.AcceptedBy,
		Coordinates: AcceptanceCoordinates{
			Latitude:  *req.AcceptorCoordinates.Latitude,
			Longitude: *req.AcceptorCoordinates.Longitude,
			Accuracy:  req.AcceptorCoordinates.Accuracy,
		},
		Platform: platform,
	}

	requests[idx].AcceptanceLogs = append(requests[idx].AcceptanceLogs, acceptance)
	requests[idx].Status = StatusScheduled
	s.repo.SaveRequests(ctx, tenantID, requests)

	if s.publisher != nil {
		event := events.JobAcceptedEvent{
			EventType:  "job_accepted",
			RequestID:  requestID,
			TenantID:   tenantID,
			Platform:   platform,
			AcceptedAt: acceptance.AcceptedAt,
		}
		if err := s.publisher.PublishJobAccepted(ctx, event); err != nil {
			// Eventing is best-effort; the acceptance itself already persisted.
			l.Warn("publish job_accepted failed", zap.Error(err))
		}
	}

	l.Info("job accepted",
		zap.String("request_id", requestID),
		zap.String("platform", platform),
	)

	return AcceptJobResponse{
		Success:       true,
		Request:       requests[idx],
		AcceptanceLog: acceptance,
	}, nil
}

// RoundTrip computes one-way and doubled distance between the stored request
// location and the acceptor's position. The stored location is validated
// here because it predates this call and may be corrupt.
func (s *service) RoundTrip(ctx context.Context, tenantID, requestID string, req RoundTripRequest) (RoundTripResponse, error) {
	requests := s.repo.ListRequests(ctx, tenantID)
	idx := findRequest(requests, requestID)
	if idx == -1 {
		return RoundTripResponse{}, joberrors.ErrRequestNotFound
	}

	loc, err := validatedLocation(requests[idx])
	if err != nil {
		return RoundTripResponse{}, err
	}

	oneWayKm := geo.Haversine(
		loc.Latitude, loc.Longitude,
		*req.AcceptorCoordinates.Latitude, *req.AcceptorCoordinates.Longitude,
	)

	return RoundTripResponse{
		RequestID:       requestID,
		RequestLocation: *loc,
		AcceptorLocation: Location{
			Latitude:  *req.AcceptorCoordinates.Latitude,
			Longitude: *req.AcceptorCoordinates.Longitude,
		},
		OneWayDistance:    geo.FromKilometers(oneWayKm),
		RoundTripDistance: geo.FromKilometers(oneWayKm * 2),
	}, nil
}

// PostMileage recomputes distance from the supplied coordinates (no prior
// acceptance required) and appends the resulting ledger entry.
func (s *service) PostMileage(ctx context.Context, tenantID, requestID string, req MileageLogRequest) (MileageLogEntry, error) {
	l := contextutil.GetLogger(ctx, nil)

	requests := s.repo.ListRequests(ctx, tenantID)
	idx := findRequest(requests, requestID)
	if idx == -1 {
		return MileageLogEntry{}, joberrors.ErrRequestNotFound
	}

	loc, err := validatedLocation(requests[idx])
	if err != nil {
		return MileageLogEntry{}, err
	}

	isRoundTrip := true
	if req.IsRoundTrip != nil {
		isRoundTrip = *req.IsRoundTrip
	}

	km := geo.Haversine(
		loc.Latitude, loc.Longitude,
		*req.AcceptorCoordinates.Latitude, *req.AcceptorCoordinates.Longitude,
	)
	if isRoundTrip {
		km *= 2
	}

	entry := MileageLogEntry{
		ID:              "mileage-" + uuid.NewString(),
		RequestID:       requestID,
		JobName:         req.JobName,
		ReferenceNumber: req.ReferenceNumber,
		RequestLocation: *loc,
		AcceptorLocation: Location{
			Latitude:  *req.AcceptorCoordinates.Latitude,
			Longitude: *req.AcceptorCoordinates.Longitude,
		},
		Distance:    geo.FromKilometers(km),
		IsRoundTrip: isRoundTrip,
		CreatedAt:   time.Now().UTC(),
	}

	entries := s.repo.ListMileageLogs(ctx, tenantID)
	entries = append(entries, entry)
	s.repo.SaveMileageLogs(ctx, tenantID, entries)

	l.Info("mileage log posted",
		zap.String("request_id", requestID),
		zap.Float64("kilometers", entry.Distance.Kilometers),
		zap.Bool("round_trip", isRoundTrip),
	)

	return entry, nil
}

func findRequest(requests []ServiceRequest, requestID string) int {
	for i, r := range requests {
		if r.ID == requestID {
			return i
		}
	}
	return -1
}

// validatedLocation rejects requests whose persisted location is missing or
// outside the [-90,90]x[-180,180] envelope.
func validatedLocation(r ServiceRequest) (*Location, error) {
	if r.Location == nil {
		return nil, joberrors.ErrInvalidRequestLocation
	}
	if !geo.ValidCoordinates(r.Location.Latitude, r.Location.Longitude) {
		return nil, joberrors.ErrRequestLocationOutOfRange
	}
	return r.Location, nil
}
