package repository

import (
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

func TestWorkflowRunTriageRoundtrip(t *testing.T) {
	tester := &tester{
		dbFileName: "./workflow_run_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	run := models.NewWorkflowRun()
	run.AlertID = "ALT-TEST-001"
	run.Status = types.WorkflowRunPendingApproval
	run.Severity = types.IncidentSeveritySev1
	run.Priority = types.PriorityP1

	triage := &types.TriageResult{
		Alert: &types.ProcessedAlert{
			AlertInput: types.AlertInput{AlertID: "ALT-TEST-001"},
		},
		IncidentSeverity: types.IncidentSeveritySev1,
		AssignedTeam:     "platform-sre-team",
		Priority:         types.PriorityP1,
	}

	if err := run.SetTriage(triage); err != nil {
		t.Fatalf("Expected no error after setting triage, got %v", err)
	}

	if _, err := tester.repo.WorkflowRun.CreateRun(run); err != nil {
		t.Fatalf("Expected no error after creating run, got %v", err)
	}

	stored, err := tester.repo.WorkflowRun.ReadRun(run.UniqueID)

	if err != nil {
		t.Fatalf("Expected no error after reading run, got %v", err)
	}

	restored, err := stored.GetTriage()

	if err != nil {
		t.Fatalf("Expected no error after restoring triage, got %v", err)
	}

	if restored == nil || restored.AssignedTeam != "platform-sre-team" {
		t.Fatalf("Expected stored triage to roundtrip, got %+v", restored)
	}

	if restored.Alert.AlertID != "ALT-TEST-001" {
		t.Fatalf("Expected triage alert id to roundtrip, got %q", restored.Alert.AlertID)
	}
}

func TestListRunsByStatus(t *testing.T) {
	tester := &tester{
		dbFileName: "./workflow_run_list_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	pending := models.NewWorkflowRun()
	pending.Status = types.WorkflowRunPendingApproval

	completed := models.NewWorkflowRun()
	completed.Status = types.WorkflowRunCompleted

	for _, run := range []*models.WorkflowRun{pending, completed} {
		if _, err := tester.repo.WorkflowRun.CreateRun(run); err != nil {
			t.Fatalf("Expected no error after creating run, got %v", err)
		}
	}

	status := types.WorkflowRunPendingApproval

	runs, err := tester.repo.WorkflowRun.ListRuns(&utils.ListWorkflowRunsFilter{Status: &status})

	if err != nil {
		t.Fatalf("Expected no error after listing runs, got %v", err)
	}

	if len(runs) != 1 || runs[0].UniqueID != pending.UniqueID {
		t.Fatalf("Expected only the pending run, got %d matches", len(runs))
	}
}
