package models

import "time"

// TableSession binds a device to a physical table for ordering. It is the exact
// record persisted under the tableSession key.
type TableSession struct {
	TableID   uint      `json:"tableId"`
	SessionID string    `json:"sessionId"`
	TableUUID string    `json:"tableUuid,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ValidAt reports whether the session is still usable at now.
func (s TableSession) ValidAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
