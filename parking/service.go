// parking/service.go
package parking

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/apiclient"
)

// Service exposes the domain resources of the parking operations API on top of an
// authenticated API client.
type Service struct {
	client *apiclient.Client
}

// NewService wraps an authenticated API client with the domain resource accessors.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Zones fetches the parking zones visible to the authenticated operator.
func (s *Service) Zones(ctx context.Context) ([]Zone, error) {
	var out listResponse[Zone]
	if err := s.client.Get(ctx, "/zones", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ParkingRights fetches the active parking rights, optionally filtered by zone code.
func (s *Service) ParkingRights(ctx context.Context, zoneCode string) ([]ParkingRight, error) {
	endpoint := "/parking-rights"
	if zoneCode != "" {
		endpoint = fmt.Sprintf("%s?zoneCode=%s", endpoint, url.QueryEscape(zoneCode))
	}

	var out listResponse[ParkingRight]
	if err := s.client.Get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// PublishSessionEvent publishes one parking session lifecycle event and returns the
// platform's acknowledgement.
func (s *Service) PublishSessionEvent(ctx context.Context, event SessionEvent) (*SessionEventReceipt, error) {
	var receipt SessionEventReceipt
	if err := s.client.Post(ctx, "/session-events", event, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// StartSession publishes a session start event for the given zone and vehicle.
func (s *Service) StartSession(ctx context.Context, zoneCode, vehicleID string, start, end time.Time) (*SessionEventReceipt, error) {
	return s.PublishSessionEvent(ctx, SessionEvent{
		Type:      SessionStart,
		ZoneCode:  zoneCode,
		VehicleID: vehicleID,
		StartTime: start,
		EndTime:   end,
	})
}

// ExtendSession publishes a session extend event moving the end time of an active
// session.
func (s *Service) ExtendSession(ctx context.Context, zoneCode, vehicleID string, newEnd time.Time) (*SessionEventReceipt, error) {
	return s.PublishSessionEvent(ctx, SessionEvent{
		Type:      SessionExtend,
		ZoneCode:  zoneCode,
		VehicleID: vehicleID,
		EndTime:   newEnd,
	})
}

// StopSession publishes a session stop event ending an active session now.
func (s *Service) StopSession(ctx context.Context, zoneCode, vehicleID string) (*SessionEventReceipt, error) {
	return s.PublishSessionEvent(ctx, SessionEvent{
		Type:      SessionStop,
		ZoneCode:  zoneCode,
		VehicleID: vehicleID,
		EndTime:   time.Now().UTC(),
	})
}
