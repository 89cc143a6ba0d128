// parking/types.go

/* The parking package contains the domain resource types of the parking operations
API and thin accessors on the authenticated API client for zones, parking rights,
and session events. The accessors own payload and URL construction only; request
execution, token handling, and the retry policy live in the apiclient package. */
package parking

import (
	"time"
)

// Operator is a locally registered parking operator. An operator names the
// environment its API credentials belong to; an operator without an environment
// cannot resolve an API client.
type Operator struct {
	ID          uint      `gorm:"primaryKey"                             json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Environment string    `gorm:"type:varchar(32)"                       json:"environment"`
	Description string    `gorm:"type:text"                              json:"description"`
	CreatedAt   time.Time `                                              json:"createdAt"`
	UpdatedAt   time.Time `                                              json:"updatedAt"`
}

// Zone is a parking zone as returned by the zones resource.
type Zone struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Usage    string `json:"usage"`
	City     string `json:"city"`
	Capacity int    `json:"capacity,omitempty"`
}

// ParkingRight is an active parking right as returned by the parking rights resource.
type ParkingRight struct {
	ID        string    `json:"id"`
	ZoneCode  string    `json:"zoneCode"`
	VehicleID string    `json:"vehicleId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// SessionEventType enumerates the parking session lifecycle events.
type SessionEventType string

const (
	SessionStart  SessionEventType = "start"
	SessionExtend SessionEventType = "extend"
	SessionStop   SessionEventType = "stop"
)

// SessionEvent is the payload published to the session events resource to simulate
// one step of a parking session lifecycle.
type SessionEvent struct {
	Type      SessionEventType `json:"type"`
	ZoneCode  string           `json:"zoneCode"`
	VehicleID string           `json:"vehicleId"`
	StartTime time.Time        `json:"startTime,omitempty"`
	EndTime   time.Time        `json:"endTime,omitempty"`
}

// SessionEventReceipt is the acknowledgement returned for a published session event.
type SessionEventReceipt struct {
	EventID    string    `json:"eventId"`
	AcceptedAt time.Time `json:"acceptedAt"`
}

// listResponse is the envelope the parking operations API wraps collection
// responses in.
type listResponse[T any] struct {
	Data []T `json:"data"`
}
