package models

import "time"

// ScrapeOutcome is the result of one full pipeline pass. Exactly one of the
// two shapes holds: success with ranked records and no error, or failure with
// an error message and an empty record list.
type ScrapeOutcome struct {
	Success        bool        `json:"success"`
	TotalExtracted int         `json:"totalExtracted"`
	Records        []Record    `json:"records"`
	SearchURL      string      `json:"searchUrl"`
	Preferences    Preferences `json:"preferences"`
	Error          string      `json:"error,omitempty"`
}

// RecommendationEnvelope is the uniform wrapper returned at the system
// boundary. Created fresh per request, never mutated after return.
type RecommendationEnvelope struct {
	Success         bool        `json:"success"`
	Recommendations []Record    `json:"recommendations"`
	TotalFound      *int        `json:"totalFound,omitempty"`
	Preferences     Preferences `json:"preferences"`
	SearchURL       string      `json:"searchUrl"`
	GeneratedAt     time.Time   `json:"generatedAt"`
	Error           string      `json:"error,omitempty"`
}

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// SearchRun is the operational record of one recommendation request. It is
// bookkeeping only; the recommended records themselves are never stored.
type SearchRun struct {
	ID          string     `json:"id" db:"id"`
	Location    string     `json:"location" db:"location"`
	SearchURL   string     `json:"search_url" db:"search_url"`
	StartedAt   time.Time  `json:"started_at" db:"started_at"`
	FinishedAt  *time.Time `json:"finished_at" db:"finished_at"`
	Status      RunStatus  `json:"status" db:"status"`
	Extracted   int        `json:"extracted" db:"extracted"`
	Ranked      int        `json:"ranked" db:"ranked"`
	Returned    int        `json:"returned" db:"returned"`
	ErrorDetail string     `json:"error_detail" db:"error_detail"`
}

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
