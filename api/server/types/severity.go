package types

// AlertSeverity is the severity reported by the alert source.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertSeverityCritical, AlertSeverityHigh, AlertSeverityMedium, AlertSeverityLow:
		return true
	}

	return false
}

// IncidentSeverity is the triaged severity assigned to an incident.
type IncidentSeverity string

const (
	IncidentSeveritySev1 IncidentSeverity = "sev1"
	IncidentSeveritySev2 IncidentSeverity = "sev2"
	IncidentSeveritySev3 IncidentSeverity = "sev3"
	IncidentSeveritySev4 IncidentSeverity = "sev4"
)

func (s IncidentSeverity) Valid() bool {
	switch s {
	case IncidentSeveritySev1, IncidentSeveritySev2, IncidentSeveritySev3, IncidentSeveritySev4:
		return true
	}

	return false
}

// Priority is the paging priority derived from the incident severity.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

type IncidentStatus string

const (
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusMitigating    IncidentStatus = "mitigating"
	IncidentStatusMonitoring    IncidentStatus = "monitoring"
	IncidentStatusResolved      IncidentStatus = "resolved"
)
