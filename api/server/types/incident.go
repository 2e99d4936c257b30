package types

import "time"

type IncidentMeta struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Status           IncidentStatus   `json:"status"`
	Severity         IncidentSeverity `json:"severity"`
	StartTime        *time.Time       `json:"start_time"`
	AffectedServices []string         `json:"affected_services"`
	Impact           string           `json:"impact"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type Incident struct {
	*IncidentMeta

	Timeline []*IncidentEvent `json:"timeline"`
}

// IncidentEvent is one entry in an incident's timeline narrative.
type IncidentEvent struct {
	Timestamp *time.Time `json:"timestamp"`
	Summary   string     `json:"summary"`
	Detail    string     `json:"detail,omitempty"`
}

type ListIncidentsRequest struct {
	Status   IncidentStatus   `schema:"status"`
	Severity IncidentSeverity `schema:"severity"`
	Service  string           `schema:"service"`
}

type ListIncidentsResponse struct {
	Incidents []*IncidentMeta `json:"incidents"`
}
