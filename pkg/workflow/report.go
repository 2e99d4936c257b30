package workflow

import (
	"fmt"
	"strings"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

// RenderReport builds the plain-text summary returned at the end of a run.
func RenderReport(triage *types.TriageResult, issue *types.TrackedIssue, msg *types.ChatMessage) string {
	var b strings.Builder

	rule := strings.Repeat("=", 44)

	posted := "posted"

	if !msg.Success {
		posted = "failed"
	}

	fmt.Fprintf(&b, "INCIDENT RESPONSE COMPLETE\n%s\n\n", rule)
	fmt.Fprintf(&b, "Incident:  %s\n", triage.IncidentTitle)
	fmt.Fprintf(&b, "Ticket:    #%d (%s)\n\n", issue.IssueNumber, issue.IssueURL)

	fmt.Fprintf(&b, "Classification:\n")
	fmt.Fprintf(&b, "  severity: %s\n", strings.ToUpper(string(triage.IncidentSeverity)))
	fmt.Fprintf(&b, "  priority: %s\n", triage.Priority)
	fmt.Fprintf(&b, "  assigned: %s\n\n", triage.AssignedTeam)

	fmt.Fprintf(&b, "Affected services:\n")

	for _, service := range triage.AffectedServices {
		fmt.Fprintf(&b, "  - %s\n", service)
	}

	fmt.Fprintf(&b, "\nSummary:\n  %s\n\n", triage.Summary)

	fmt.Fprintf(&b, "Recommended actions:\n")

	for i, action := range triage.RecommendedActions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, action)
	}

	fmt.Fprintf(&b, "\nRunbook: %s\n", triage.RunbookURL)
	fmt.Fprintf(&b, "Notification: %s to %s\n%s", posted, msg.Channel, rule)

	return b.String()
}
