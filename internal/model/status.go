package model

import "time"

// StatusCheck is a frontend heartbeat persisted for diagnostics.
type StatusCheck struct {
	ID         string    `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	Timestamp  time.Time `json:"timestamp" db:"created_at"`
}
