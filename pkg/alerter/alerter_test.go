package alerter_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/alerter"
	"github.com/contoso/sre-demo-agent/pkg/definitions"
	"github.com/contoso/sre-demo-agent/pkg/fixtures"
	"github.com/contoso/sre-demo-agent/pkg/integrations"
	"github.com/contoso/sre-demo-agent/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAlerter(t *testing.T) *alerter.Alerter {
	t.Helper()

	db, err := adapter.New(&envconf.DBConf{
		SQLLite:     true,
		SQLLitePath: filepath.Join(t.TempDir(), "alerter_test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, repository.AutoMigrate(db, false))

	repo := repository.NewRepository(db)

	require.NoError(t, fixtures.Seed(repo, fixtures.Generate()))

	definition := &definitions.Workflow{
		Name: "incident-response",
		Trigger: definitions.Trigger{
			Severities: []types.AlertSeverity{types.AlertSeverityCritical, types.AlertSeverityHigh},
		},
		Steps: []definitions.Step{
			{
				ID:   "triage",
				Type: definitions.StepTypeTriage,
				Approval: &definitions.Approval{
					RequiredFor: []types.IncidentSeverity{types.IncidentSeveritySev1, types.IncidentSeveritySev2},
				},
			},
		},
		Integrations: map[string]definitions.Integration{
			"chat": {
				Kind: "teams",
				Channels: map[types.IncidentSeverity]string{
					types.IncidentSeveritySev3: "#ops-alerts",
				},
			},
		},
	}

	runner := &workflow.Runner{
		Definition: definition,
		Repository: repo,
		Tracker:    &integrations.IssueTracker{Repo: "contoso/incidents", Simulate: true},
		Chat:       &integrations.ChatNotifier{Simulate: true},
		Logger:     logger.NewConsole(false),
	}

	return &alerter.Alerter{
		AlertConfiguration: &alerter.AlertConfiguration{RetriggerAfter: time.Hour},
		Runner:             runner,
		Repository:         repo,
		Logger:             logger.NewConsole(false),
	}
}

func TestTriggerFiringStartsRunsForMatchingSeverities(t *testing.T) {
	a := setupAlerter(t)

	runs, err := a.TriggerFiring()
	require.NoError(t, err)

	// the seeded snapshot has one critical and one high alert; the medium
	// alert does not match the workflow trigger
	assert.Len(t, runs, 2)

	for _, run := range runs {
		assert.Equal(t, types.WorkflowRunPendingApproval, run.Status)
	}
}

// A run started from a stored alert must triage against the latest metric
// sample for the alerted server, so the database CPU spike yields the
// CPU and memory playbook actions instead of the generic fallback.
func TestTriggerFiringEnrichesTriageWithStoredMetrics(t *testing.T) {
	a := setupAlerter(t)

	runs, err := a.TriggerFiring()
	require.NoError(t, err)

	var primary *models.WorkflowRun

	for _, run := range runs {
		if run.AlertID == fixtures.PrimaryAlertID {
			primary = run
		}
	}

	require.NotNil(t, primary, "the critical database alert should start a run")

	triage, err := primary.GetTriage()
	require.NoError(t, err)

	assert.Contains(t, triage.RecommendedActions, "Check for runaway processes")
	assert.Contains(t, triage.RecommendedActions, "Identify memory-intensive queries")
	assert.NotContains(t, triage.RecommendedActions, "Review recent deployments")
}

func TestTriggerFiringHonorsRetriggerWindow(t *testing.T) {
	a := setupAlerter(t)

	runs, err := a.TriggerFiring()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// within the retrigger window nothing fires again
	runs, err = a.TriggerFiring()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
