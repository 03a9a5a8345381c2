package entities

import "github.com/google/uuid"

// NewID returns a time-ordered random identifier.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
