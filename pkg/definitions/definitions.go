// Package definitions parses the declarative subagent and incident-workflow
// YAML documents that configure the demo agent's runtime.
package definitions

import (
	"fmt"
	"os"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gopkg.in/yaml.v3"
)

// Subagent declares a narrower-scope agent a workflow step can invoke.
type Subagent struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Instructions string   `yaml:"instructions"`
	Capabilities []string `yaml:"capabilities"`
}

// StepType enumerates the step kinds the runtime knows how to execute.
type StepType string

const (
	StepTypeProcess     StepType = "process"
	StepTypeTriage      StepType = "triage"
	StepTypeIntegration StepType = "integration"
	StepTypeReport      StepType = "report"
)

type Approval struct {
	// RequiredFor lists the incident severities that pause the run for a
	// human decision before continuing.
	RequiredFor []types.IncidentSeverity `yaml:"required_for"`
}

type Step struct {
	ID          string    `yaml:"id"`
	Type        StepType  `yaml:"type"`
	Integration string    `yaml:"integration,omitempty"`
	Subagent    string    `yaml:"subagent,omitempty"`
	Approval    *Approval `yaml:"approval,omitempty"`
}

type Trigger struct {
	Source     string                `yaml:"source"`
	Severities []types.AlertSeverity `yaml:"severities"`
}

type Integration struct {
	Kind string `yaml:"kind"`

	// Repo applies to issue-tracker integrations.
	Repo string `yaml:"repo,omitempty"`

	// Channels maps incident severities to chat channels.
	Channels map[types.IncidentSeverity]string `yaml:"channels,omitempty"`
}

// Workflow is the parsed incident-workflow document.
type Workflow struct {
	Name         string                 `yaml:"name"`
	Description  string                 `yaml:"description"`
	Trigger      Trigger                `yaml:"trigger"`
	Steps        []Step                 `yaml:"steps"`
	Subagents    []string               `yaml:"subagents"`
	Integrations map[string]Integration `yaml:"integrations"`
}

// Triggers reports whether an alert of the given severity should start a run.
func (w *Workflow) Triggers(severity types.AlertSeverity) bool {
	for _, s := range w.Trigger.Severities {
		if s == severity {
			return true
		}
	}

	return false
}

// ApprovalRequired reports whether any step pauses for the given severity.
func (w *Workflow) ApprovalRequired(severity types.IncidentSeverity) bool {
	for _, step := range w.Steps {
		if step.Approval == nil {
			continue
		}

		for _, s := range step.Approval.RequiredFor {
			if s == severity {
				return true
			}
		}
	}

	return false
}

// IssueRepo returns the repository declared on the first issue-tracker
// integration, or empty when the workflow declares none.
func (w *Workflow) IssueRepo() string {
	for _, integration := range w.Integrations {
		if integration.Repo != "" {
			return integration.Repo
		}
	}

	return ""
}

// Channel returns the chat channel for a severity from the first chat
// integration, falling back to the sev3 channel when unmapped.
func (w *Workflow) Channel(severity types.IncidentSeverity) string {
	for _, integration := range w.Integrations {
		if len(integration.Channels) == 0 {
			continue
		}

		if channel, ok := integration.Channels[severity]; ok {
			return channel
		}

		if channel, ok := integration.Channels[types.IncidentSeveritySev3]; ok {
			return channel
		}
	}

	return ""
}

// LoadSubagent parses a subagent definition file.
func LoadSubagent(path string) (*Subagent, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error opening subagent definition: %w", err)
	}

	subagent := &Subagent{}

	if err := yaml.Unmarshal(raw, subagent); err != nil {
		return nil, fmt.Errorf("error parsing subagent definition: %w", err)
	}

	return subagent, nil
}

// LoadWorkflow parses a workflow definition file.
func LoadWorkflow(path string) (*Workflow, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error opening workflow definition: %w", err)
	}

	workflow := &Workflow{}

	if err := yaml.Unmarshal(raw, workflow); err != nil {
		return nil, fmt.Errorf("error parsing workflow definition: %w", err)
	}

	return workflow, nil
}
