package fixtures

import (
	"fmt"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

// The demo scenario: a CPU spike on the primary database server during the
// morning of 2026-01-31, with correlated slow-query logs, one critical alert,
// and one in-progress sev1 incident. Everything below is deterministic so the
// shipped fixture files are reproducible byte for byte.

const (
	sampleInterval = 5 * time.Minute
	samplesPerHost = 24

	PrimaryAlertID  = "ALT-2026-0131-001"
	PrimaryIncident = "INC-2026-0131-001"
	PrimaryServer   = "vm-db-01"
	alertSource     = "Azure Monitor"
	spikeCPUPct     = 94.7
	spikeMemoryPct  = 88.5
)

var scenarioStart = time.Date(2026, 1, 31, 6, 0, 0, 0, time.UTC)

type serverProfile struct {
	id          string
	environment string
	region      string
	cpuCores    int
	memoryGB    int
	diskGB      int
	services    []string
	owningTeam  string

	baseCPU     float64
	baseMemory  float64
	baseDisk    float64
	baseNetwork float64
}

var fleet = []serverProfile{
	{
		id: "vm-db-01", environment: "production", region: "eastus2",
		cpuCores: 16, memoryGB: 64, diskGB: 1024,
		services:   []string{"database-primary", "inventory-service"},
		owningTeam: "platform-sre-team",
		baseCPU:    42, baseMemory: 61, baseDisk: 58, baseNetwork: 240,
	},
	{
		id: "vm-prod-01", environment: "production", region: "eastus2",
		cpuCores: 8, memoryGB: 32, diskGB: 256,
		services:   []string{"order-service", "inventory-service"},
		owningTeam: "backend-team",
		baseCPU:    35, baseMemory: 48, baseDisk: 40, baseNetwork: 120,
	},
	{
		id: "vm-api-01", environment: "production", region: "eastus2",
		cpuCores: 8, memoryGB: 32, diskGB: 128,
		services:   []string{"api-gateway", "payment-service"},
		owningTeam: "api-team",
		baseCPU:    28, baseMemory: 44, baseDisk: 31, baseNetwork: 310,
	},
	{
		id: "vm-cache-01", environment: "production", region: "eastus2",
		cpuCores: 4, memoryGB: 16, diskGB: 64,
		services:   []string{"redis-cache", "session-service"},
		owningTeam: "platform-team",
		baseCPU:    18, baseMemory: 52, baseDisk: 12, baseNetwork: 95,
	},
}

// Generate synthesizes the full demo fixture set.
func Generate() *Set {
	set := &Set{
		Metrics:   generateMetrics(),
		Logs:      generateLogs(),
		Alerts:    generateAlerts(),
		Incidents: generateIncidents(),
		Inventory: generateInventory(),
		OnCall:    generateOnCall(),
	}

	return set
}

func generateMetrics() []*types.MetricSample {
	samples := make([]*types.MetricSample, 0, len(fleet)*samplesPerHost)

	for hostIdx, profile := range fleet {
		for i := 0; i < samplesPerHost; i++ {
			ts := scenarioStart.Add(time.Duration(i) * sampleInterval)

			// fixed small wiggle so series are not flat lines
			wiggle := float64((hostIdx*7+i*13)%10) / 10 * 2.5

			sample := &types.MetricSample{
				ServerID:    profile.id,
				Timestamp:   ts,
				CPUPct:      round1(profile.baseCPU + wiggle),
				MemoryPct:   round1(profile.baseMemory + wiggle/2),
				DiskPct:     round1(profile.baseDisk + float64(i)*0.05),
				NetworkMbps: round1(profile.baseNetwork + wiggle*4),
			}

			if profile.id == PrimaryServer {
				applySpike(sample, i)
			}

			samples = append(samples, sample)
		}
	}

	return samples
}

// applySpike ramps the database server's CPU and memory over the final eight
// samples, ending at the readings quoted by the primary alert.
func applySpike(sample *types.MetricSample, i int) {
	rampStart := samplesPerHost - 8

	if i < rampStart {
		return
	}

	progress := float64(i-rampStart+1) / 8

	sample.CPUPct = round1(sample.CPUPct + (spikeCPUPct-sample.CPUPct)*progress)
	sample.MemoryPct = round1(sample.MemoryPct + (spikeMemoryPct-sample.MemoryPct)*progress)
}

func generateLogs() []types.LogLine {
	entries := []struct {
		offset   time.Duration
		service  string
		severity string
		message  string
	}{
		{10 * time.Minute, "order-service", "info", "processed batch of 124 orders"},
		{35 * time.Minute, "api-gateway", "info", "health check passed for upstream payment-service"},
		{62 * time.Minute, "database-primary", "warn", "query exceeded 500ms: SELECT ... FROM order_items JOIN inventory"},
		{71 * time.Minute, "database-primary", "warn", "connection pool utilization at 82%"},
		{80 * time.Minute, "database-primary", "error", "query exceeded 5s: aggregate report on order_items"},
		{83 * time.Minute, "order-service", "error", "timeout waiting for database-primary after 3000ms"},
		{85 * time.Minute, "inventory-service", "error", "failed to refresh stock levels: context deadline exceeded"},
		{88 * time.Minute, "database-primary", "error", "connection pool exhausted, rejecting new connections"},
		{90 * time.Minute, "order-service", "error", "circuit breaker open for database-primary"},
		{92 * time.Minute, "api-gateway", "warn", "elevated 5xx rate from order-service: 12% over last 5m"},
		{95 * time.Minute, "database-primary", "error", "query exceeded 5s: aggregate report on order_items"},
		{108 * time.Minute, "session-service", "info", "session cache hit ratio 0.97"},
	}

	logs := make([]types.LogLine, 0, len(entries))

	for _, entry := range entries {
		ts := scenarioStart.Add(entry.offset)

		logs = append(logs, types.LogLine{
			Timestamp: &ts,
			Service:   entry.service,
			Severity:  entry.severity,
			Message:   entry.message,
		})
	}

	return logs
}

func generateAlerts() []*types.Alert {
	cpuFiring := scenarioStart.Add(90 * time.Minute)
	memFiring := scenarioStart.Add(100 * time.Minute)
	latencyFiring := scenarioStart.Add(95 * time.Minute)

	return []*types.Alert{
		{
			AlertID:     PrimaryAlertID,
			Title:       "Database Server CPU Critical",
			Source:      alertSource,
			Severity:    types.AlertSeverityCritical,
			Condition:   "cpu_pct > 90 for 5m",
			FiringSince: &cpuFiring,
			Resource:    PrimaryServer,
		},
		{
			AlertID:     "ALT-2026-0131-002",
			Title:       "Database Server Memory High",
			Source:      alertSource,
			Severity:    types.AlertSeverityHigh,
			Condition:   "memory_pct > 85 for 10m",
			FiringSince: &memFiring,
			Resource:    PrimaryServer,
		},
		{
			AlertID:     "ALT-2026-0131-003",
			Title:       "API Gateway Latency Elevated",
			Source:      alertSource,
			Severity:    types.AlertSeverityMedium,
			Condition:   "p95_latency_ms > 800 for 10m",
			FiringSince: &latencyFiring,
			Resource:    "vm-api-01",
		},
	}
}

func generateIncidents() []*types.Incident {
	start := scenarioStart.Add(92 * time.Minute)
	updated := scenarioStart.Add(110 * time.Minute)

	timeline := []*types.IncidentEvent{
		event(92*time.Minute, "Alert fired", "Azure Monitor reported CPU above 90% on vm-db-01 for more than 5 minutes."),
		event(95*time.Minute, "Incident opened", "On-call acknowledged the page and opened a sev1 incident."),
		event(101*time.Minute, "Impact confirmed", "Order placement failing intermittently; order-service circuit breaker open."),
		event(110*time.Minute, "Mitigation started", "Long-running aggregate report query identified as the likely cause; kill initiated."),
	}

	return []*types.Incident{
		{
			IncidentMeta: &types.IncidentMeta{
				ID:               PrimaryIncident,
				Title:            "Database CPU saturation degrading order placement",
				Status:           types.IncidentStatusInvestigating,
				Severity:         types.IncidentSeveritySev1,
				StartTime:        &start,
				AffectedServices: []string{"database-primary", "order-service", "inventory-service"},
				Impact:           "Roughly 12% of order placements are timing out; inventory refreshes are stale.",
				CreatedAt:        start,
				UpdatedAt:        updated,
			},
			Timeline: timeline,
		},
	}
}

func event(offset time.Duration, summary, detail string) *types.IncidentEvent {
	ts := scenarioStart.Add(offset)

	return &types.IncidentEvent{
		Timestamp: &ts,
		Summary:   summary,
		Detail:    detail,
	}
}

func generateInventory() []*types.InventoryRecord {
	records := make([]*types.InventoryRecord, 0, len(fleet))

	for _, profile := range fleet {
		records = append(records, &types.InventoryRecord{
			ServerID:    profile.id,
			Environment: profile.environment,
			Region:      profile.region,
			Specs: types.ServerSpecs{
				CPUCores: profile.cpuCores,
				MemoryGB: profile.memoryGB,
				DiskGB:   profile.diskGB,
			},
			ServicesHosted: profile.services,
			OwningTeam:     profile.owningTeam,
		})
	}

	return records
}

func generateOnCall() []*types.OnCallEntry {
	return []*types.OnCallEntry{
		{
			Rotation:         "platform-sre",
			EscalationPolicy: "page primary, escalate to secondary after 10m, then engineering manager",
			CurrentAssignee:  "Dana Rivers",
			Contact:          "dana.rivers@contoso.com",
		},
		{
			Rotation:         "backend",
			EscalationPolicy: "page primary, escalate to team lead after 15m",
			CurrentAssignee:  "Sam Okafor",
			Contact:          "sam.okafor@contoso.com",
		},
		{
			Rotation:         "api",
			EscalationPolicy: "page primary, escalate to platform-sre after 15m",
			CurrentAssignee:  "Priya Nair",
			Contact:          "priya.nair@contoso.com",
		},
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
