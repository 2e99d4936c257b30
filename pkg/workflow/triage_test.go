package workflow_test

import (
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/workflow"

	"github.com/stretchr/testify/assert"
)

func processedAlert(severity types.AlertSeverity, resource string) *types.ProcessedAlert {
	return workflow.ProcessAlert(&types.AlertInput{
		AlertID:     "ALT-TEST-001",
		Title:       "Database Server CPU Critical",
		Severity:    severity,
		Description: "CPU usage above 90% for 5 minutes",
		Resource:    resource,
		Metrics:     map[string]float64{"cpu_pct": 94.7, "memory_pct": 88.5},
	})
}

func TestTriageSeverityAndPriorityMapping(t *testing.T) {
	cases := []struct {
		alert    types.AlertSeverity
		incident types.IncidentSeverity
		priority types.Priority
	}{
		{types.AlertSeverityCritical, types.IncidentSeveritySev1, types.PriorityP1},
		{types.AlertSeverityHigh, types.IncidentSeveritySev2, types.PriorityP2},
		{types.AlertSeverityMedium, types.IncidentSeveritySev3, types.PriorityP3},
		{types.AlertSeverityLow, types.IncidentSeveritySev4, types.PriorityP4},
	}

	for _, c := range cases {
		triage := workflow.Triage(processedAlert(c.alert, "vm-db-01"))

		assert.Equal(t, c.incident, triage.IncidentSeverity, "alert severity %s", c.alert)
		assert.Equal(t, c.priority, triage.Priority, "alert severity %s", c.alert)
	}
}

func TestTriageTeamAssignmentByResourcePrefix(t *testing.T) {
	cases := map[string]string{
		"vm-db-01":    "platform-sre-team",
		"vm-prod-01":  "backend-team",
		"vm-api-01":   "api-team",
		"vm-cache-01": "platform-team",
		"unknown-99":  "platform-sre-team",
	}

	for resource, team := range cases {
		triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, resource))

		assert.Equal(t, team, triage.AssignedTeam, "resource %s", resource)
	}
}

func TestTriageAffectedServices(t *testing.T) {
	triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-db-01"))

	assert.Equal(t, []string{"database-primary", "order-service", "inventory-service"}, triage.AffectedServices)

	triage = workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-api-01"))

	assert.Equal(t, []string{"api-gateway", "payment-service"}, triage.AffectedServices)

	// unclassified resources fall back to the resource itself
	triage = workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-web-01"))

	assert.Equal(t, []string{"vm-web-01"}, triage.AffectedServices)
}

func TestTriageRunbookSelection(t *testing.T) {
	triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-db-01"))

	assert.Equal(t, "https://wiki.contoso.com/runbooks/high-cpu", triage.RunbookURL)

	generic := workflow.Triage(workflow.ProcessAlert(&types.AlertInput{
		AlertID:  "ALT-TEST-002",
		Title:    "Something odd",
		Severity: types.AlertSeverityLow,
		Resource: "vm-db-01",
	}))

	assert.Equal(t, "https://wiki.contoso.com/runbooks/general-triage", generic.RunbookURL)
}

func TestTriageRecommendedActionsFromThresholds(t *testing.T) {
	triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-db-01"))

	assert.Contains(t, triage.RecommendedActions, "Check for runaway processes")
	assert.Contains(t, triage.RecommendedActions, "Identify memory-intensive queries")

	calm := workflow.Triage(workflow.ProcessAlert(&types.AlertInput{
		AlertID:  "ALT-TEST-003",
		Title:    "Low disk warning",
		Severity: types.AlertSeverityLow,
		Resource: "vm-db-01",
		Metrics:  map[string]float64{"cpu_pct": 20},
	}))

	assert.Equal(t, []string{"Review recent deployments", "Check system logs for errors"}, calm.RecommendedActions)
}

func TestTriageSummaryNamesElevatedMetrics(t *testing.T) {
	triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-db-01"))

	assert.Contains(t, triage.Summary, "elevated cpu_pct, memory_pct")
	assert.Contains(t, triage.Summary, "vm-db-01")
}

func TestOverrideRewritesClassification(t *testing.T) {
	triage := workflow.Triage(processedAlert(types.AlertSeverityCritical, "vm-db-01"))

	workflow.Override(triage, types.IncidentSeveritySev3)

	assert.Equal(t, types.IncidentSeveritySev3, triage.IncidentSeverity)
	assert.Equal(t, types.PriorityP3, triage.Priority)
	assert.Contains(t, triage.IncidentTitle, "[SEV3]")
}

func TestProcessAlertValidation(t *testing.T) {
	processed := workflow.ProcessAlert(&types.AlertInput{Severity: "bogus"})

	assert.False(t, processed.IsValid)
	assert.Contains(t, processed.ValidationErrors, "missing alert_id")
	assert.Contains(t, processed.ValidationErrors, "missing title")
	assert.Contains(t, processed.ValidationErrors, "missing resource")
	assert.Contains(t, processed.ValidationErrors, "invalid severity: bogus")
	assert.NotNil(t, processed.Metrics)
}
