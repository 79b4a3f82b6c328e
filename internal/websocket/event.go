package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeReady      EventType = "ready"
	EventTypeUpdated    EventType = "updated"
	EventTypeCalculated EventType = "calculated"
	EventTypeError      EventType = "error"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeSession EntityType = "session"
	EntityTypeChart   EntityType = "chart"
	EntityTypeResult  EntityType = "result"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "chart.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "chart"
	Payload   interface{} `json:"payload"`   // Event data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Inbound message types
const (
	MessageTypeFieldSet  = "field.set"
	MessageTypeCalculate = "calculate"
)

// Message is a client-to-server request.
// Field and Value are only used by field.set; Value may be a JSON string or number.
type Message struct {
	Type  string           `json:"type"`
	Field string           `json:"field,omitempty"`
	Value domain.RawAmount `json:"value,omitempty"`
}

// SessionReadyPayload is sent once when a connection is established
type SessionReadyPayload struct {
	SessionID string              `json:"sessionId"`
	State     domain.SessionState `json:"state"`
}

// ChartPayload carries chart data, null when the fields do not form a projection
type ChartPayload struct {
	Chart *domain.ChartData `json:"chart"`
}

// ResultPayload carries the result message of a calculate request
type ResultPayload struct {
	Message string `json:"message"`
}

// ErrorPayload describes a rejected client message
type ErrorPayload struct {
	Detail string `json:"detail"`
}

// SessionReady creates a session.ready event
func SessionReady(sessionID string, state domain.SessionState) Event {
	return NewEvent(EventTypeReady, EntityTypeSession, SessionReadyPayload{SessionID: sessionID, State: state})
}

// ChartUpdated creates a chart.updated event
func ChartUpdated(chart *domain.ChartData) Event {
	return NewEvent(EventTypeUpdated, EntityTypeChart, ChartPayload{Chart: chart})
}

// ResultCalculated creates a result.calculated event
func ResultCalculated(message string) Event {
	return NewEvent(EventTypeCalculated, EntityTypeResult, ResultPayload{Message: message})
}

// SessionError creates a session.error event
func SessionError(detail string) Event {
	return NewEvent(EventTypeError, EntityTypeSession, ErrorPayload{Detail: detail})
}
