// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Event sources.
const (
	SourceForm = "form"
	SourceAPI  = "api"
	SourceCLI  = "cli"
)

// ConversionPerformedEvent is published after a successful conversion
// round trip.  The fields are the display strings the caller received.
type ConversionPerformedEvent struct {
	ID          string `json:"id"`
	HeightCm    string `json:"height_cm"`
	HeightFeet  string `json:"height_feet"`
	HeightInch  string `json:"height_inches"`
	Source      string `json:"source"`
	PerformedAt string `json:"performed_at"`
}

// NewConversionEvent stamps a new event with a ULID and the current UTC time.
func NewConversionEvent(cm, feet, inches, source string) ConversionPerformedEvent {
	now := time.Now().UTC()
	return ConversionPerformedEvent{
		ID:          ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		HeightCm:    cm,
		HeightFeet:  feet,
		HeightInch:  inches,
		Source:      source,
		PerformedAt: now.Format(time.RFC3339),
	}
}
