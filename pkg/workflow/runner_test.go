package workflow_test

import (
	"path/filepath"
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/definitions"
	"github.com/contoso/sre-demo-agent/pkg/integrations"
	"github.com/contoso/sre-demo-agent/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRunner(t *testing.T) *workflow.Runner {
	t.Helper()

	db, err := adapter.New(&envconf.DBConf{
		SQLLite:     true,
		SQLLitePath: filepath.Join(t.TempDir(), "runner_test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, repository.AutoMigrate(db, false))

	definition := &definitions.Workflow{
		Name: "incident-response",
		Trigger: definitions.Trigger{
			Severities: []types.AlertSeverity{types.AlertSeverityCritical, types.AlertSeverityHigh},
		},
		Steps: []definitions.Step{
			{ID: "process_alert", Type: definitions.StepTypeProcess},
			{
				ID:   "triage",
				Type: definitions.StepTypeTriage,
				Approval: &definitions.Approval{
					RequiredFor: []types.IncidentSeverity{types.IncidentSeveritySev1, types.IncidentSeveritySev2},
				},
			},
			{ID: "create_issue", Type: definitions.StepTypeIntegration, Integration: "issue-tracker"},
			{ID: "notify_channel", Type: definitions.StepTypeIntegration, Integration: "chat"},
			{ID: "report", Type: definitions.StepTypeReport},
		},
		Integrations: map[string]definitions.Integration{
			"issue-tracker": {Kind: "github", Repo: "contoso/incidents"},
			"chat": {
				Kind: "teams",
				Channels: map[types.IncidentSeverity]string{
					types.IncidentSeveritySev1: "#incident-critical",
					types.IncidentSeveritySev2: "#incident-high",
					types.IncidentSeveritySev3: "#ops-alerts",
					types.IncidentSeveritySev4: "#ops-info",
				},
			},
		},
	}

	return &workflow.Runner{
		Definition: definition,
		Repository: repository.NewRepository(db),
		Tracker:    &integrations.IssueTracker{Repo: "contoso/incidents", Simulate: true},
		Chat:       &integrations.ChatNotifier{Simulate: true},
		Logger:     logger.NewConsole(false),
	}
}

func criticalAlert() *types.AlertInput {
	return &types.AlertInput{
		AlertID:     "ALT-TEST-001",
		Title:       "Database Server CPU Critical",
		Severity:    types.AlertSeverityCritical,
		Description: "CPU usage above 90% for 5 minutes",
		Source:      "Azure Monitor",
		Resource:    "vm-db-01",
		Metrics:     map[string]float64{"cpu_pct": 94.7, "memory_pct": 88.5},
	}
}

func TestRunPausesForApprovalOnSev1(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(criticalAlert())
	require.NoError(t, err)

	assert.Equal(t, types.WorkflowRunPendingApproval, run.Status)
	assert.Equal(t, types.IncidentSeveritySev1, run.Severity)
	assert.Equal(t, types.PriorityP1, run.Priority)
	assert.Nil(t, run.FinishedAt)

	// the pending run is readable across requests
	stored, err := runner.Repository.WorkflowRun.ReadRun(run.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, types.WorkflowRunPendingApproval, stored.Status)
}

func TestApprovalResumesRunToCompletion(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(criticalAlert())
	require.NoError(t, err)

	run, err = runner.Approve(run.UniqueID, &types.TriageApproval{Approved: true})
	require.NoError(t, err)

	assert.Equal(t, types.WorkflowRunCompleted, run.Status)
	require.NotNil(t, run.FinishedAt)

	api := run.ToAPIType()
	require.NotNil(t, api.Issue)
	require.NotNil(t, api.Chat)

	assert.Greater(t, api.Issue.IssueNumber, 0)
	assert.Contains(t, api.Issue.IssueURL, "contoso/incidents")
	assert.Equal(t, "#incident-critical", api.Chat.Channel)
	assert.Contains(t, run.Report, "INCIDENT RESPONSE COMPLETE")
}

func TestApprovalOverrideRewritesSeverity(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(criticalAlert())
	require.NoError(t, err)

	run, err = runner.Approve(run.UniqueID, &types.TriageApproval{
		Approved: true,
		Override: types.IncidentSeveritySev3,
	})
	require.NoError(t, err)

	assert.Equal(t, types.WorkflowRunCompleted, run.Status)
	assert.Equal(t, types.IncidentSeveritySev3, run.Severity)
	assert.Equal(t, types.PriorityP3, run.Priority)

	api := run.ToAPIType()
	require.NotNil(t, api.Chat)
	assert.Equal(t, "#ops-alerts", api.Chat.Channel)
}

func TestApproveRejectsCompletedRun(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(criticalAlert())
	require.NoError(t, err)

	_, err = runner.Approve(run.UniqueID, &types.TriageApproval{Approved: true})
	require.NoError(t, err)

	_, err = runner.Approve(run.UniqueID, &types.TriageApproval{Approved: true})
	assert.ErrorIs(t, err, workflow.ErrRunNotPending)
}

func TestLowSeverityRunCompletesWithoutApproval(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(&types.AlertInput{
		AlertID:  "ALT-TEST-002",
		Title:    "API Gateway Latency Elevated",
		Severity: types.AlertSeverityMedium,
		Resource: "vm-api-01",
	})
	require.NoError(t, err)

	assert.Equal(t, types.WorkflowRunCompleted, run.Status)
	assert.Equal(t, types.IncidentSeveritySev3, run.Severity)

	api := run.ToAPIType()
	require.NotNil(t, api.Chat)
	assert.Equal(t, "#ops-alerts", api.Chat.Channel)
}

func TestInvalidAlertRecordsFailedRun(t *testing.T) {
	runner := setupRunner(t)

	run, err := runner.Process(&types.AlertInput{Severity: "bogus"})
	assert.ErrorIs(t, err, workflow.ErrInvalidAlert)

	require.NotNil(t, run)
	assert.Equal(t, types.WorkflowRunFailed, run.Status)
	assert.Contains(t, run.Error, "missing alert_id")

	stored, readErr := runner.Repository.WorkflowRun.ReadRun(run.UniqueID)
	require.NoError(t, readErr)
	assert.Equal(t, types.WorkflowRunFailed, stored.Status)
}

func TestIssueNumbersAreStablePerAlert(t *testing.T) {
	tracker := &integrations.IssueTracker{Repo: "contoso/incidents", Simulate: true}

	triage := workflow.Triage(workflow.ProcessAlert(criticalAlert()))

	first, err := tracker.CreateIssue(triage)
	require.NoError(t, err)

	second, err := tracker.CreateIssue(triage)
	require.NoError(t, err)

	assert.Equal(t, first.IssueNumber, second.IssueNumber)
	assert.Contains(t, first.Labels, "severity:sev1")
	assert.Contains(t, first.Labels, "priority:P1")
	assert.Contains(t, first.Labels, "platform-sre-team")
}
