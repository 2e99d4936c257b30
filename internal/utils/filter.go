package utils

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

type ListAlertsFilter struct {
	Severity *types.AlertSeverity
	Resource *string
}

type ListIncidentsFilter struct {
	Status   *types.IncidentStatus
	Severity *types.IncidentSeverity
	Service  *string
}

type ListMetricsFilter struct {
	ServerID   *string
	StartRange *time.Time
	EndRange   *time.Time
}

type ListLogsFilter struct {
	Service    *string
	Severity   *string
	Search     *string
	StartRange *time.Time
	EndRange   *time.Time
}

type ListInventoryFilter struct {
	OwningTeam *string
}

type ListWorkflowRunsFilter struct {
	Status *types.WorkflowRunStatus
}
