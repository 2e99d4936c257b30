package models

import (
	"encoding/json"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowRun persists the state of one incident-response execution, so that
// sev1/sev2 runs can pause for approval and resume across requests.
type WorkflowRun struct {
	gorm.Model

	UniqueID string `gorm:"unique"`

	Status   types.WorkflowRunStatus
	AlertID  string
	Severity types.IncidentSeverity
	Priority types.Priority

	// TriageJSON is the serialized types.TriageResult captured when the run
	// paused or finished. Issue and chat results are serialized the same way.
	TriageJSON string
	IssueJSON  string
	ChatJSON   string

	Report string
	Error  string

	StartedAt  time.Time
	FinishedAt *time.Time
}

func NewWorkflowRun() *WorkflowRun {
	return &WorkflowRun{
		UniqueID:  "run-" + uuid.NewString(),
		StartedAt: time.Now(),
	}
}

func (r *WorkflowRun) SetTriage(triage *types.TriageResult) error {
	raw, err := json.Marshal(triage)

	if err != nil {
		return err
	}

	r.TriageJSON = string(raw)

	return nil
}

func (r *WorkflowRun) GetTriage() (*types.TriageResult, error) {
	if r.TriageJSON == "" {
		return nil, nil
	}

	triage := &types.TriageResult{}

	if err := json.Unmarshal([]byte(r.TriageJSON), triage); err != nil {
		return nil, err
	}

	return triage, nil
}

func (r *WorkflowRun) SetIssue(issue *types.TrackedIssue) error {
	raw, err := json.Marshal(issue)

	if err != nil {
		return err
	}

	r.IssueJSON = string(raw)

	return nil
}

func (r *WorkflowRun) SetChat(msg *types.ChatMessage) error {
	raw, err := json.Marshal(msg)

	if err != nil {
		return err
	}

	r.ChatJSON = string(raw)

	return nil
}

func (r *WorkflowRun) ToAPIType() *types.WorkflowRun {
	res := &types.WorkflowRun{
		RunID:      r.UniqueID,
		Status:     r.Status,
		AlertID:    r.AlertID,
		Severity:   r.Severity,
		Priority:   r.Priority,
		Report:     r.Report,
		Error:      r.Error,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}

	if triage, err := r.GetTriage(); err == nil {
		res.Triage = triage
	}

	if r.IssueJSON != "" {
		issue := &types.TrackedIssue{}

		if err := json.Unmarshal([]byte(r.IssueJSON), issue); err == nil {
			res.Issue = issue
		}
	}

	if r.ChatJSON != "" {
		msg := &types.ChatMessage{}

		if err := json.Unmarshal([]byte(r.ChatJSON), msg); err == nil {
			res.Chat = msg
		}
	}

	return res
}
