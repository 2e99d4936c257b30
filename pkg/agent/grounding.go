package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

// GroundingTools returns the six tools that expose the demo dataset to an
// agent: metric series, recent logs, active alerts, incidents, the server
// inventory, and the on-call schedule.
func GroundingTools(repo *repository.Repository) []Tool {
	return []Tool{
		metricsTool(repo),
		logsTool(repo),
		alertsTool(repo),
		incidentTool(repo),
		inventoryTool(repo),
		onCallTool(repo),
	}
}

func metricsTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"server_id": {"type": "string", "description": "Server to fetch samples for, e.g. vm-db-01"},
			"limit": {"type": "integer", "description": "Maximum number of most recent samples to return"}
		},
		"required": ["server_id"]
	}`)

	return NewTool(
		"get_server_metrics",
		"Get the recorded CPU, memory, disk, and network telemetry for a server.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				ServerID string `json:"server_id"`
				Limit    uint   `json:"limit"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if args.Limit == 0 {
				args.Limit = 20
			}

			samples, err := repo.Metric.ListSamples(
				&utils.ListMetricsFilter{ServerID: &args.ServerID},
				utils.WithSortBy("timestamp"),
				utils.WithOrder(utils.OrderDesc),
				utils.WithLimit(args.Limit),
			)

			if err != nil {
				return nil, err
			}

			res := &types.ListMetricsResponse{}

			for _, sample := range samples {
				res.Samples = append(res.Samples, sample.ToAPIType())
			}

			return res, nil
		},
	)
}

func logsTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"service": {"type": "string", "description": "Filter to a single service name"},
			"severity": {"type": "string", "description": "Filter by severity: info, warn, or error"},
			"limit": {"type": "integer", "description": "Maximum number of most recent entries to return"}
		}
	}`)

	return NewTool(
		"get_recent_logs",
		"Get recent application log entries, optionally filtered by service or severity.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				Service  string `json:"service"`
				Severity string `json:"severity"`
				Limit    uint   `json:"limit"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if args.Limit == 0 {
				args.Limit = 50
			}

			filter := &utils.ListLogsFilter{}

			if args.Service != "" {
				filter.Service = &args.Service
			}

			if args.Severity != "" {
				filter.Severity = &args.Severity
			}

			entries, err := repo.LogEntry.ListEntries(
				filter,
				utils.WithSortBy("timestamp"),
				utils.WithOrder(utils.OrderDesc),
				utils.WithLimit(args.Limit),
			)

			if err != nil {
				return nil, err
			}

			res := &types.GetLogResponse{}

			for _, entry := range entries {
				res.Logs = append(res.Logs, *entry.ToAPIType())
			}

			return res, nil
		},
	)
}

func alertsTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"severity": {"type": "string", "description": "Filter by severity: critical, high, medium, or low"}
		}
	}`)

	return NewTool(
		"get_active_alerts",
		"Get the currently firing alerts, optionally filtered by severity.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				Severity types.AlertSeverity `json:"severity"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			filter := &utils.ListAlertsFilter{}

			if args.Severity != "" {
				if !args.Severity.Valid() {
					return nil, fmt.Errorf("invalid severity %q", args.Severity)
				}

				filter.Severity = &args.Severity
			}

			alerts, err := repo.Alert.ListAlerts(filter)

			if err != nil {
				return nil, err
			}

			res := &types.ListAlertsResponse{}

			for _, alert := range alerts {
				res.Alerts = append(res.Alerts, alert.ToAPIType())
			}

			return res, nil
		},
	)
}

func incidentTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"incident_id": {"type": "string", "description": "Incident to fetch; omit to list all incidents"}
		}
	}`)

	return NewTool(
		"get_incident",
		"Get an incident with its timeline, or list all known incidents.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				IncidentID string `json:"incident_id"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if args.IncidentID != "" {
				incident, err := repo.Incident.ReadIncident(args.IncidentID)

				if err != nil {
					return nil, err
				}

				return incident.ToAPIType(), nil
			}

			incidents, err := repo.Incident.ListIncidents(&utils.ListIncidentsFilter{})

			if err != nil {
				return nil, err
			}

			res := &types.ListIncidentsResponse{}

			for _, incident := range incidents {
				res.Incidents = append(res.Incidents, incident.ToAPITypeMeta())
			}

			return res, nil
		},
	)
}

func inventoryTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"server_id": {"type": "string", "description": "Server to fetch; omit to list the whole fleet"}
		}
	}`)

	return NewTool(
		"get_inventory",
		"Get the infrastructure inventory record for a server, or the whole fleet.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				ServerID string `json:"server_id"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if args.ServerID != "" {
				record, err := repo.Inventory.ReadRecord(args.ServerID)

				if err != nil {
					return nil, err
				}

				return record.ToAPIType(), nil
			}

			records, err := repo.Inventory.ListRecords(&utils.ListInventoryFilter{})

			if err != nil {
				return nil, err
			}

			res := &types.ListInventoryResponse{}

			for _, record := range records {
				res.Servers = append(res.Servers, record.ToAPIType())
			}

			return res, nil
		},
	)
}

func onCallTool(repo *repository.Repository) Tool {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"rotation": {"type": "string", "description": "Rotation to fetch; omit to list every rotation"}
		}
	}`)

	return NewTool(
		"get_on_call",
		"Get the current on-call assignee and escalation policy for a rotation.",
		params,
		func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			args := &struct {
				Rotation string `json:"rotation"`
			}{}

			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if args.Rotation != "" {
				entry, err := repo.OnCall.ReadEntry(args.Rotation)

				if err != nil {
					return nil, err
				}

				return entry.ToAPIType(), nil
			}

			entries, err := repo.OnCall.ListEntries()

			if err != nil {
				return nil, err
			}

			res := &types.ListOnCallResponse{}

			for _, entry := range entries {
				res.Rotations = append(res.Rotations, entry.ToAPIType())
			}

			return res, nil
		},
	)
}
