// Package fixtures loads, validates, generates, and seeds the static demo
// dataset that grounds the SRE demo agent. Each file is an ad hoc flat
// schema; correctness beyond shape is narrative consistency across files.
package fixtures

import "github.com/contoso/sre-demo-agent/api/server/types"

// Fixture file names, relative to the fixture directory.
const (
	MetricsFile   = "server_metrics.csv"
	LogsFile      = "application_logs.json"
	AlertsFile    = "active_alerts.json"
	IncidentsFile = "incidents.json"
	InventoryFile = "infrastructure_inventory.json"
	OnCallFile    = "on_call_schedule.json"
)

// Set is the full demo dataset, one slice per fixture file.
type Set struct {
	Metrics   []*types.MetricSample
	Logs      []types.LogLine
	Alerts    []*types.Alert
	Incidents []*types.Incident
	Inventory []*types.InventoryRecord
	OnCall    []*types.OnCallEntry
}

// PrimaryAlert returns the first critical alert in the set, which the demo
// scenario treats as the alert that kicks off the incident-response workflow.
func (s *Set) PrimaryAlert() *types.Alert {
	for _, alert := range s.Alerts {
		if alert.Severity == types.AlertSeverityCritical {
			return alert
		}
	}

	return nil
}

func (s *Set) InventoryRecord(serverID string) *types.InventoryRecord {
	for _, record := range s.Inventory {
		if record.ServerID == serverID {
			return record
		}
	}

	return nil
}
