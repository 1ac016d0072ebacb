package model

import "time"

const (
	ModePassword   = "password"
	ModePassphrase = "passphrase"
)

// GenerationEvent records that a client requested generated secrets.
// The secrets themselves are never part of it.
type GenerationEvent struct {
	ID        string
	Client    string
	Mode      string
	Size      int // password length or passphrase word count
	Count     int
	CreatedAt time.Time
}

// UsageSummary aggregates generation events for one mode.
type UsageSummary struct {
	Mode     string `json:"mode"`
	Requests int64  `json:"requests"`
	Items    int64  `json:"items"`
}

// StatsResponse represents the usage statistics response.
type StatsResponse struct {
	Since time.Time      `json:"since"`
	Modes []UsageSummary `json:"modes"`
}
