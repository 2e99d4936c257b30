package fixtures

import (
	"fmt"
)

// Report collects everything wrong with a fixture set. An empty report means
// the set is both shape-valid and narratively consistent.
type Report struct {
	Errors []string
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks the shape of every record and the cross-file consistency of
// the demo narrative: the server named by the primary critical alert must
// exist in the inventory and have metric samples, and every incident's
// affected services must be hosted somewhere in the fleet.
func Validate(set *Set) *Report {
	report := &Report{}

	validateMetrics(set, report)
	validateLogs(set, report)
	validateAlerts(set, report)
	validateIncidents(set, report)
	validateInventory(set, report)
	validateOnCall(set, report)
	validateConsistency(set, report)

	return report
}

func validateMetrics(set *Set, report *Report) {
	if len(set.Metrics) == 0 {
		report.errorf("metrics: fixture contains no samples")
		return
	}

	lastSeen := make(map[string]*struct{ ts int64 })

	for i, sample := range set.Metrics {
		if sample.ServerID == "" {
			report.errorf("metrics: sample %d has an empty server_id", i)
		}

		pcts := map[string]float64{
			"cpu_pct":    sample.CPUPct,
			"memory_pct": sample.MemoryPct,
			"disk_pct":   sample.DiskPct,
		}

		for name, val := range pcts {
			if val < 0 || val > 100 {
				report.errorf("metrics: sample %d (%s) has %s=%.2f outside [0,100]", i, sample.ServerID, name, val)
			}
		}

		if sample.NetworkMbps < 0 {
			report.errorf("metrics: sample %d (%s) has negative network_mbps", i, sample.ServerID)
		}

		// samples must be ordered by timestamp per server
		if prev, ok := lastSeen[sample.ServerID]; ok && sample.Timestamp.Unix() < prev.ts {
			report.errorf("metrics: sample %d (%s) is out of timestamp order", i, sample.ServerID)
		}

		lastSeen[sample.ServerID] = &struct{ ts int64 }{sample.Timestamp.Unix()}
	}
}

func validateLogs(set *Set, report *Report) {
	for i, line := range set.Logs {
		if line.Timestamp == nil {
			report.errorf("logs: entry %d is missing a timestamp", i)
		}

		if line.Service == "" {
			report.errorf("logs: entry %d is missing a service", i)
		}

		if line.Severity == "" {
			report.errorf("logs: entry %d is missing a severity", i)
		}

		if line.Message == "" {
			report.errorf("logs: entry %d is missing a message", i)
		}
	}
}

func validateAlerts(set *Set, report *Report) {
	for i, alert := range set.Alerts {
		if alert.AlertID == "" {
			report.errorf("alerts: alert %d is missing an alert_id", i)
		}

		if !alert.Severity.Valid() {
			report.errorf("alerts: alert %s has invalid severity %q", alert.AlertID, alert.Severity)
		}

		if alert.FiringSince == nil {
			report.errorf("alerts: alert %s is missing firing_since", alert.AlertID)
		}

		if alert.Resource == "" {
			report.errorf("alerts: alert %s does not name a related resource", alert.AlertID)
		}
	}
}

func validateIncidents(set *Set, report *Report) {
	for i, incident := range set.Incidents {
		if incident.IncidentMeta == nil || incident.ID == "" {
			report.errorf("incidents: incident %d is missing an id", i)
			continue
		}

		if incident.StartTime == nil {
			report.errorf("incidents: incident %s is missing a start_time", incident.ID)
		}

		if len(incident.AffectedServices) == 0 {
			report.errorf("incidents: incident %s names no affected services", incident.ID)
		}

		if len(incident.Timeline) == 0 {
			report.errorf("incidents: incident %s has an empty timeline", incident.ID)
		}
	}
}

func validateInventory(set *Set, report *Report) {
	seen := make(map[string]bool)

	for i, record := range set.Inventory {
		if record.ServerID == "" {
			report.errorf("inventory: record %d is missing a server_id", i)
			continue
		}

		if seen[record.ServerID] {
			report.errorf("inventory: duplicate server_id %s", record.ServerID)
		}

		seen[record.ServerID] = true

		if record.OwningTeam == "" {
			report.errorf("inventory: server %s has no owning team", record.ServerID)
		}

		if record.Specs.CPUCores <= 0 || record.Specs.MemoryGB <= 0 {
			report.errorf("inventory: server %s has implausible specs", record.ServerID)
		}
	}
}

func validateOnCall(set *Set, report *Report) {
	for i, entry := range set.OnCall {
		if entry.Rotation == "" {
			report.errorf("on_call: entry %d is missing a rotation name", i)
		}

		if entry.CurrentAssignee == "" {
			report.errorf("on_call: rotation %s has no current assignee", entry.Rotation)
		}
	}
}

func validateConsistency(set *Set, report *Report) {
	primary := set.PrimaryAlert()

	if primary == nil {
		report.errorf("consistency: no critical alert found; the demo scenario requires one")
		return
	}

	if set.InventoryRecord(primary.Resource) == nil {
		report.errorf("consistency: alert %s references %s, which is not in the inventory", primary.AlertID, primary.Resource)
	}

	hasSamples := false

	for _, sample := range set.Metrics {
		if sample.ServerID == primary.Resource {
			hasSamples = true
			break
		}
	}

	if !hasSamples {
		report.errorf("consistency: alert %s references %s, which has no metric samples", primary.AlertID, primary.Resource)
	}

	hosted := make(map[string]bool)

	for _, record := range set.Inventory {
		for _, service := range record.ServicesHosted {
			hosted[service] = true
		}
	}

	for _, incident := range set.Incidents {
		if incident.IncidentMeta == nil {
			continue
		}

		for _, service := range incident.AffectedServices {
			if !hosted[service] {
				report.errorf("consistency: incident %s affects %s, which no inventory server hosts", incident.ID, service)
			}
		}
	}
}
