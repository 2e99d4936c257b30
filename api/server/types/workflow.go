package types

import "time"

// AlertInput is the payload that triggers an incident-response run.
type AlertInput struct {
	AlertID     string        `json:"alert_id"`
	Title       string        `json:"title"`
	Severity    AlertSeverity `json:"severity"`
	Description string        `json:"description"`
	Source      string        `json:"source"`
	Resource    string        `json:"resource"`

	// Metrics is a JSON object of current metric readings, e.g.
	// {"cpu_pct": 94.7, "memory_pct": 88.5}.
	Metrics map[string]float64 `json:"metrics"`
}

// ProcessedAlert is the validated and enriched form of an AlertInput.
type ProcessedAlert struct {
	AlertInput

	ReceivedAt       time.Time `json:"received_at"`
	IsValid          bool      `json:"is_valid"`
	ValidationErrors []string  `json:"validation_errors,omitempty"`
}

// TriageResult is the classification produced for a processed alert.
type TriageResult struct {
	Alert              *ProcessedAlert  `json:"alert"`
	IncidentSeverity   IncidentSeverity `json:"incident_severity"`
	IncidentTitle      string           `json:"incident_title"`
	Summary            string           `json:"summary"`
	AffectedServices   []string         `json:"affected_services"`
	RecommendedActions []string         `json:"recommended_actions"`
	AssignedTeam       string           `json:"assigned_team"`
	RunbookURL         string           `json:"runbook_url"`
	Priority           Priority         `json:"priority"`
}

// TriageApproval is the human response to a paused sev1/sev2 run. Override
// may name a replacement severity; an empty override approves the triage
// classification as-is.
type TriageApproval struct {
	Approved bool             `json:"approved"`
	Override IncidentSeverity `json:"override,omitempty"`
	Notes    string           `json:"notes,omitempty"`
}

type TrackedIssue struct {
	IssueNumber int       `json:"issue_number"`
	IssueURL    string    `json:"issue_url"`
	Labels      []string  `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessage struct {
	Channel   string    `json:"channel"`
	MessageID string    `json:"message_id"`
	PostedAt  time.Time `json:"posted_at"`
	Success   bool      `json:"success"`
}

type WorkflowRunStatus string

const (
	WorkflowRunPendingApproval WorkflowRunStatus = "pending_approval"
	WorkflowRunCompleted       WorkflowRunStatus = "completed"
	WorkflowRunFailed          WorkflowRunStatus = "failed"
)

// WorkflowRun is the persisted state of one incident-response execution.
type WorkflowRun struct {
	RunID      string            `json:"run_id"`
	Status     WorkflowRunStatus `json:"status"`
	AlertID    string            `json:"alert_id"`
	Severity   IncidentSeverity  `json:"severity"`
	Priority   Priority          `json:"priority"`
	Triage     *TriageResult     `json:"triage,omitempty"`
	Issue      *TrackedIssue     `json:"issue,omitempty"`
	Chat       *ChatMessage      `json:"chat,omitempty"`
	Report     string            `json:"report,omitempty"`
	Error      string            `json:"error,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

type ListWorkflowRunsRequest struct {
	Status WorkflowRunStatus `schema:"status"`
}

type ListWorkflowRunsResponse struct {
	Runs []*WorkflowRun `json:"runs"`
}
