package definitions

import (
	"fmt"
)

// ValidateSubagent checks the required keys of a subagent definition.
func ValidateSubagent(subagent *Subagent) error {
	if subagent.Name == "" {
		return fmt.Errorf("subagent definition is missing a name")
	}

	if subagent.Instructions == "" {
		return fmt.Errorf("subagent %s has no instructions", subagent.Name)
	}

	if len(subagent.Capabilities) == 0 {
		return fmt.Errorf("subagent %s declares no capabilities", subagent.Name)
	}

	return nil
}

// ValidateWorkflow checks the required keys of a workflow definition and that
// every step, integration, and subagent reference resolves. The subagents
// argument holds the definitions loaded alongside the workflow.
func ValidateWorkflow(workflow *Workflow, subagents []*Subagent) error {
	if workflow.Name == "" {
		return fmt.Errorf("workflow definition is missing a name")
	}

	if len(workflow.Trigger.Severities) == 0 {
		return fmt.Errorf("workflow %s has no trigger severities", workflow.Name)
	}

	for _, severity := range workflow.Trigger.Severities {
		if !severity.Valid() {
			return fmt.Errorf("workflow %s trigger has invalid severity %q", workflow.Name, severity)
		}
	}

	if len(workflow.Steps) == 0 {
		return fmt.Errorf("workflow %s has no steps", workflow.Name)
	}

	known := map[string]bool{}

	for _, name := range workflow.Subagents {
		found := false

		for _, subagent := range subagents {
			if subagent.Name == name {
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("workflow %s references unknown subagent %q", workflow.Name, name)
		}
	}

	for _, step := range workflow.Steps {
		if step.ID == "" {
			return fmt.Errorf("workflow %s has a step without an id", workflow.Name)
		}

		if known[step.ID] {
			return fmt.Errorf("workflow %s has duplicate step id %q", workflow.Name, step.ID)
		}

		known[step.ID] = true

		switch step.Type {
		case StepTypeProcess, StepTypeTriage, StepTypeReport:
		case StepTypeIntegration:
			if step.Integration == "" {
				return fmt.Errorf("workflow %s step %s is an integration step without an integration name", workflow.Name, step.ID)
			}

			if _, ok := workflow.Integrations[step.Integration]; !ok {
				return fmt.Errorf("workflow %s step %s references unknown integration %q", workflow.Name, step.ID, step.Integration)
			}
		default:
			return fmt.Errorf("workflow %s step %s has unknown type %q", workflow.Name, step.ID, step.Type)
		}

		if step.Subagent != "" {
			found := false

			for _, name := range workflow.Subagents {
				if name == step.Subagent {
					found = true
					break
				}
			}

			if !found {
				return fmt.Errorf("workflow %s step %s references subagent %q not listed in the workflow", workflow.Name, step.ID, step.Subagent)
			}
		}
	}

	return nil
}
