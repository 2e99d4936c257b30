// Package workflow executes the five-step incident-response pipeline: alert
// processing, triage (with a human approval gate for high-severity runs),
// issue creation, chat notification, and a final report.
package workflow

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

// ProcessAlert validates and enriches an incoming alert. Invalid alerts are
// still returned, flagged with their validation errors, so the caller can
// record a failed run instead of silently dropping the input.
func ProcessAlert(input *types.AlertInput) *types.ProcessedAlert {
	processed := &types.ProcessedAlert{
		AlertInput: *input,
		ReceivedAt: time.Now(),
		IsValid:    true,
	}

	if input.AlertID == "" {
		processed.ValidationErrors = append(processed.ValidationErrors, "missing alert_id")
	}

	if input.Title == "" {
		processed.ValidationErrors = append(processed.ValidationErrors, "missing title")
	}

	if input.Resource == "" {
		processed.ValidationErrors = append(processed.ValidationErrors, "missing resource")
	}

	if !input.Severity.Valid() {
		processed.ValidationErrors = append(processed.ValidationErrors, "invalid severity: "+string(input.Severity))
	}

	if processed.Metrics == nil {
		processed.Metrics = map[string]float64{}
	}

	processed.IsValid = len(processed.ValidationErrors) == 0

	return processed
}
