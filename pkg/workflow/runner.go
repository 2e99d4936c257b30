package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/definitions"
	"github.com/contoso/sre-demo-agent/pkg/integrations"
)

var (
	ErrInvalidAlert  = errors.New("alert failed validation")
	ErrRunNotPending = errors.New("run is not pending approval")
)

// Runner executes the incident-response pipeline configured by the workflow
// definition. Runs that hit the approval gate persist as pending_approval and
// resume through Approve.
type Runner struct {
	Definition *definitions.Workflow
	Repository *repository.Repository
	Tracker    *integrations.IssueTracker
	Chat       *integrations.ChatNotifier
	Logger     *logger.Logger
}

// Process runs the pipeline for an incoming alert, up to either the approval
// gate or completion. The persisted run is returned in both cases.
func (r *Runner) Process(input *types.AlertInput) (*models.WorkflowRun, error) {
	run := models.NewWorkflowRun()
	run.AlertID = input.AlertID

	processed := ProcessAlert(input)

	if !processed.IsValid {
		run.Status = types.WorkflowRunFailed
		run.Error = "alert failed validation: " + strings.Join(processed.ValidationErrors, "; ")

		r.finish(run)

		if _, err := r.Repository.WorkflowRun.CreateRun(run); err != nil {
			return nil, err
		}

		return run, ErrInvalidAlert
	}

	triage := Triage(processed)

	run.Severity = triage.IncidentSeverity
	run.Priority = triage.Priority

	if err := run.SetTriage(triage); err != nil {
		return nil, err
	}

	if r.Definition.ApprovalRequired(triage.IncidentSeverity) {
		run.Status = types.WorkflowRunPendingApproval

		r.Logger.Info().Caller().Msgf("run %s paused for approval (severity %s)", run.UniqueID, run.Severity)

		return r.Repository.WorkflowRun.CreateRun(run)
	}

	r.complete(run, triage)

	return r.Repository.WorkflowRun.CreateRun(run)
}

// Approve resumes a pending run with the human decision. An override replaces
// the triaged severity before the remaining steps execute.
func (r *Runner) Approve(runID string, approval *types.TriageApproval) (*models.WorkflowRun, error) {
	run, err := r.Repository.WorkflowRun.ReadRun(runID)

	if err != nil {
		return nil, err
	}

	if run.Status != types.WorkflowRunPendingApproval {
		return nil, ErrRunNotPending
	}

	triage, err := run.GetTriage()

	if err != nil || triage == nil {
		return nil, fmt.Errorf("run %s has no stored triage result", runID)
	}

	if approval.Override != "" {
		if !approval.Override.Valid() {
			return nil, fmt.Errorf("invalid severity override %q", approval.Override)
		}

		Override(triage, approval.Override)

		run.Severity = triage.IncidentSeverity
		run.Priority = triage.Priority

		if err := run.SetTriage(triage); err != nil {
			return nil, err
		}
	}

	r.complete(run, triage)

	return r.Repository.WorkflowRun.UpdateRun(run)
}

// complete executes the issue, notification, and report steps, mutating the
// run in place. Persistence is left to the caller.
func (r *Runner) complete(run *models.WorkflowRun, triage *types.TriageResult) {
	issue, err := r.Tracker.CreateIssue(triage)

	if err != nil {
		r.fail(run, fmt.Errorf("issue creation failed: %w", err))
		return
	}

	if err := run.SetIssue(issue); err != nil {
		r.fail(run, err)
		return
	}

	channel := r.Definition.Channel(triage.IncidentSeverity)

	msg, err := r.Chat.PostIncident(channel, triage, issue)

	if err != nil {
		r.fail(run, fmt.Errorf("chat notification failed: %w", err))
		return
	}

	if err := run.SetChat(msg); err != nil {
		r.fail(run, err)
		return
	}

	run.Report = RenderReport(triage, issue, msg)
	run.Status = types.WorkflowRunCompleted

	r.finish(run)

	r.Logger.Info().Caller().Msgf("run %s completed: issue #%d posted to %s", run.UniqueID, issue.IssueNumber, msg.Channel)
}

func (r *Runner) fail(run *models.WorkflowRun, err error) {
	run.Status = types.WorkflowRunFailed
	run.Error = err.Error()

	r.finish(run)

	r.Logger.Error().Caller().Msgf("run %s failed: %v", run.UniqueID, err)
}

func (r *Runner) finish(run *models.WorkflowRun) {
	now := time.Now()
	run.FinishedAt = &now
}
