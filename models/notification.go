package models

import (
	"time"
)

type Notification struct {
	ID             uint      `json:"id"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	ReferenceID    uint      `json:"referenceId,omitempty"`
	ReferenceType  string    `json:"referenceType,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
	TargetUsername string    `json:"targetUsername,omitempty"`
}
