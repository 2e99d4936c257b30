package types

import "time"

// Alert is a currently-firing condition reported by a monitoring source. The
// demo dataset is a static snapshot, so no lifecycle transitions are modeled.
type Alert struct {
	AlertID     string        `json:"alert_id"`
	Title       string        `json:"title"`
	Source      string        `json:"source"`
	Severity    AlertSeverity `json:"severity"`
	Condition   string        `json:"condition"`
	FiringSince *time.Time    `json:"firing_since"`
	Resource    string        `json:"resource"`
}

type ListAlertsRequest struct {
	Severity AlertSeverity `schema:"severity"`
	Resource string        `schema:"resource"`
}

type ListAlertsResponse struct {
	Alerts []*Alert `json:"alerts"`
}
