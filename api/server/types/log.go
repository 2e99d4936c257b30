package types

import "time"

type GetLogRequest struct {
	Limit       uint       `schema:"limit"`
	StartRange  *time.Time `schema:"start_range"`
	EndRange    *time.Time `schema:"end_range"`
	Service     string     `schema:"service"`
	Severity    string     `schema:"severity"`
	SearchParam string     `schema:"search_param"`
}

// LogLine is one append-only application log record.
type LogLine struct {
	Timestamp *time.Time `json:"timestamp"`
	Service   string     `json:"service"`
	Severity  string     `json:"severity"`
	Message   string     `json:"message"`
}

type GetLogResponse struct {
	Logs []LogLine `json:"logs"`
}
