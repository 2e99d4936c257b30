package definitions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/definitions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subagentYAML = `name: sre-triage-subagent
description: triages infrastructure alerts
instructions: |
  Classify the alert severity and identify affected services.
capabilities:
  - get_active_alerts
  - get_inventory
`

const workflowYAML = `name: incident-response
description: demo incident-response pipeline
trigger:
  source: Azure Monitor
  severities:
    - critical
    - high
steps:
  - id: process_alert
    type: process
  - id: triage
    type: triage
    subagent: sre-triage-subagent
    approval:
      required_for:
        - sev1
        - sev2
  - id: create_issue
    type: integration
    integration: issue-tracker
  - id: notify_channel
    type: integration
    integration: chat
  - id: report
    type: report
subagents:
  - sre-triage-subagent
integrations:
  issue-tracker:
    kind: github
    repo: contoso/incidents
  chat:
    kind: teams
    channels:
      sev1: "#incident-critical"
      sev2: "#incident-high"
      sev3: "#ops-alerts"
      sev4: "#ops-info"
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadAndValidateDefinitions(t *testing.T) {
	subagent, err := definitions.LoadSubagent(writeDefinition(t, "subagent.yaml", subagentYAML))
	require.NoError(t, err)
	require.NoError(t, definitions.ValidateSubagent(subagent))

	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "incident_workflow.yaml", workflowYAML))
	require.NoError(t, err)
	require.NoError(t, definitions.ValidateWorkflow(workflow, []*definitions.Subagent{subagent}))

	assert.Equal(t, "incident-response", workflow.Name)
	assert.Len(t, workflow.Steps, 5)
}

func TestWorkflowTriggerAndApproval(t *testing.T) {
	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "incident_workflow.yaml", workflowYAML))
	require.NoError(t, err)

	assert.True(t, workflow.Triggers(types.AlertSeverityCritical))
	assert.True(t, workflow.Triggers(types.AlertSeverityHigh))
	assert.False(t, workflow.Triggers(types.AlertSeverityMedium))

	assert.True(t, workflow.ApprovalRequired(types.IncidentSeveritySev1))
	assert.True(t, workflow.ApprovalRequired(types.IncidentSeveritySev2))
	assert.False(t, workflow.ApprovalRequired(types.IncidentSeveritySev3))
}

func TestWorkflowChannelBySeverity(t *testing.T) {
	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "incident_workflow.yaml", workflowYAML))
	require.NoError(t, err)

	assert.Equal(t, "#incident-critical", workflow.Channel(types.IncidentSeveritySev1))
	assert.Equal(t, "#ops-info", workflow.Channel(types.IncidentSeveritySev4))
}

func TestWorkflowIssueRepo(t *testing.T) {
	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "incident_workflow.yaml", workflowYAML))
	require.NoError(t, err)

	assert.Equal(t, "contoso/incidents", workflow.IssueRepo())

	workflow.Integrations = nil
	assert.Empty(t, workflow.IssueRepo())
}

func TestValidateWorkflowRejectsUnknownIntegration(t *testing.T) {
	broken := `name: broken
trigger:
  severities:
    - critical
steps:
  - id: create_issue
    type: integration
    integration: missing
`

	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "broken.yaml", broken))
	require.NoError(t, err)

	err = definitions.ValidateWorkflow(workflow, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown integration")
}

func TestValidateWorkflowRejectsDuplicateStepIDs(t *testing.T) {
	broken := `name: broken
trigger:
  severities:
    - critical
steps:
  - id: triage
    type: triage
  - id: triage
    type: triage
`

	workflow, err := definitions.LoadWorkflow(writeDefinition(t, "broken.yaml", broken))
	require.NoError(t, err)

	err = definitions.ValidateWorkflow(workflow, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate step id")
}

func TestValidateSubagentRequiresInstructions(t *testing.T) {
	err := definitions.ValidateSubagent(&definitions.Subagent{Name: "x", Capabilities: []string{"get_inventory"}})
	assert.Error(t, err)
}
