package workflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

var severityMap = map[types.AlertSeverity]types.IncidentSeverity{
	types.AlertSeverityCritical: types.IncidentSeveritySev1,
	types.AlertSeverityHigh:     types.IncidentSeveritySev2,
	types.AlertSeverityMedium:   types.IncidentSeveritySev3,
	types.AlertSeverityLow:      types.IncidentSeveritySev4,
}

var priorityMap = map[types.IncidentSeverity]types.Priority{
	types.IncidentSeveritySev1: types.PriorityP1,
	types.IncidentSeveritySev2: types.PriorityP2,
	types.IncidentSeveritySev3: types.PriorityP3,
	types.IncidentSeveritySev4: types.PriorityP4,
}

// serviceTeams maps resource name prefixes to the owning team.
var serviceTeams = []struct {
	prefix string
	team   string
}{
	{"vm-db", "platform-sre-team"},
	{"vm-prod", "backend-team"},
	{"vm-api", "api-team"},
	{"vm-cache", "platform-team"},
}

const defaultTeam = "platform-sre-team"

// runbooks maps keywords in the alert title or description to a runbook URL.
var runbooks = []struct {
	keyword string
	url     string
}{
	{"cpu", "https://wiki.contoso.com/runbooks/high-cpu"},
	{"memory", "https://wiki.contoso.com/runbooks/high-memory"},
	{"disk", "https://wiki.contoso.com/runbooks/disk-space"},
	{"network", "https://wiki.contoso.com/runbooks/network-issues"},
}

const defaultRunbook = "https://wiki.contoso.com/runbooks/general-triage"

// Triage classifies a processed alert: incident severity and priority, the
// assigned team, affected services, a runbook, and recommended first actions.
func Triage(alert *types.ProcessedAlert) *types.TriageResult {
	incidentSeverity, ok := severityMap[alert.Severity]

	if !ok {
		incidentSeverity = types.IncidentSeveritySev3
	}

	triage := &types.TriageResult{
		Alert:            alert,
		IncidentSeverity: incidentSeverity,
		IncidentTitle:    fmt.Sprintf("[%s] %s", strings.ToUpper(string(incidentSeverity)), alert.Title),
		AffectedServices: affectedServices(alert.Resource),
		AssignedTeam:     assignedTeam(alert.Resource),
		RunbookURL:       runbookFor(alert),
		Priority:         priorityMap[incidentSeverity],
	}

	triage.RecommendedActions = recommendedActions(alert.Metrics)
	triage.Summary = summarize(alert)

	return triage
}

// Override rewrites the triage classification with a human-chosen severity.
func Override(triage *types.TriageResult, severity types.IncidentSeverity) {
	triage.IncidentSeverity = severity
	triage.IncidentTitle = fmt.Sprintf("[%s] %s", strings.ToUpper(string(severity)), triage.Alert.Title)
	triage.Priority = priorityMap[severity]
}

func assignedTeam(resource string) string {
	for _, entry := range serviceTeams {
		if strings.HasPrefix(resource, entry.prefix) {
			return entry.team
		}
	}

	return defaultTeam
}

func affectedServices(resource string) []string {
	switch {
	case strings.Contains(resource, "db"):
		return []string{"database-primary", "order-service", "inventory-service"}
	case strings.Contains(resource, "api"):
		return []string{"api-gateway", "payment-service"}
	case strings.Contains(resource, "cache"):
		return []string{"redis-cache", "session-service"}
	}

	return []string{resource}
}

func runbookFor(alert *types.ProcessedAlert) string {
	haystack := strings.ToLower(alert.Title + " " + alert.Description)

	for _, entry := range runbooks {
		if strings.Contains(haystack, entry.keyword) {
			return entry.url
		}
	}

	return defaultRunbook
}

func recommendedActions(metrics map[string]float64) []string {
	actions := make([]string, 0)

	if metrics["cpu_pct"] > 90 {
		actions = append(actions,
			"Check for runaway processes",
			"Consider scaling up or out",
		)
	}

	if metrics["memory_pct"] > 85 {
		actions = append(actions,
			"Identify memory-intensive queries",
			"Check for memory leaks",
		)
	}

	if len(actions) == 0 {
		actions = append(actions,
			"Review recent deployments",
			"Check system logs for errors",
		)
	}

	return actions
}

func summarize(alert *types.ProcessedAlert) string {
	elevated := make([]string, 0)

	for name, val := range alert.Metrics {
		if val > 80 {
			elevated = append(elevated, name)
		}
	}

	sort.Strings(elevated)

	summary := fmt.Sprintf("%s. Resource: %s.", alert.Description, alert.Resource)

	if len(elevated) > 0 {
		summary += fmt.Sprintf(" Current metrics show elevated %s.", strings.Join(elevated, ", "))
	}

	return summary
}
