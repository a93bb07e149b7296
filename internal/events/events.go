package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Routing keys published on the ticket exchange.
const (
	RKTicketArrived = "ticket.arrived"
	RKTicketDeleted = "ticket.deleted"
)

// TicketArrived fires once per newly detected ticket per poll cycle.
type TicketArrived struct {
	EventID     string    `json:"event_id"`
	TicketID    string    `json:"ticket_id"`
	PatientName string    `json:"patient_name"`
	At          time.Time `json:"at"`
}

// TicketDeleted fires after a confirmed write-through delete.
type TicketDeleted struct {
	EventID  string `json:"event_id"`
	TicketID string `json:"ticket_id"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
