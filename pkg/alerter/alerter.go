package alerter

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"github.com/contoso/sre-demo-agent/pkg/workflow"
)

type AlertConfiguration struct {
	// RetriggerAfter is how long a firing alert must go without a run before
	// it is allowed to start another one.
	RetriggerAfter time.Duration
}

// Alerter bridges the stored firing alerts and the workflow runtime: every
// firing alert whose severity matches the workflow trigger starts a run, at
// most once per retrigger window.
type Alerter struct {
	AlertConfiguration *AlertConfiguration
	Runner             *workflow.Runner
	Repository         *repository.Repository
	Logger             *logger.Logger
}

// TriggerFiring scans the firing alerts and starts workflow runs for those
// that qualify. It returns the runs it started.
func (a *Alerter) TriggerFiring() ([]*models.WorkflowRun, error) {
	alerts, err := a.Repository.Alert.ListAlerts(&utils.ListAlertsFilter{})

	if err != nil {
		return nil, err
	}

	runs := make([]*models.WorkflowRun, 0)

	for _, alert := range alerts {
		if !a.Runner.Definition.Triggers(alert.Severity) {
			continue
		}

		if !a.shouldTrigger(alert) {
			continue
		}

		run, err := a.HandleAlert(alert)

		if err != nil {
			a.Logger.Error().Caller().Msgf("could not start run for alert %s: %v", alert.AlertID, err)
			continue
		}

		runs = append(runs, run)
	}

	return runs, nil
}

// HandleAlert starts a workflow run for one alert and records the trigger
// time so the same alert does not immediately re-fire.
func (a *Alerter) HandleAlert(alert *models.Alert) (*models.WorkflowRun, error) {
	a.Logger.Info().Caller().Msgf("triggering incident-response run for alert %s (%s)", alert.AlertID, alert.Severity)

	input := &types.AlertInput{
		AlertID:     alert.AlertID,
		Title:       alert.Title,
		Severity:    alert.Severity,
		Description: alert.Condition,
		Source:      alert.Source,
		Resource:    alert.Resource,
		Metrics:     a.latestMetrics(alert.Resource),
	}

	run, err := a.Runner.Process(input)

	if err != nil {
		return nil, err
	}

	if err := a.updateLastTriggered(alert); err != nil {
		return nil, err
	}

	return run, nil
}

// latestMetrics reads the newest metric sample for the alert's resource so
// the triage step can act on current readings. A resource with no stored
// series yields no metrics, which triage treats as nominal.
func (a *Alerter) latestMetrics(resource string) map[string]float64 {
	samples, err := a.Repository.Metric.ListSamples(
		&utils.ListMetricsFilter{ServerID: &resource},
		utils.WithSortBy("timestamp"),
		utils.WithOrder(utils.OrderDesc),
		utils.WithLimit(1),
	)

	if err != nil {
		a.Logger.Error().Caller().Msgf("could not read metrics for %s: %v", resource, err)
		return nil
	}

	if len(samples) == 0 {
		return nil
	}

	sample := samples[0]

	return map[string]float64{
		"cpu_pct":      sample.CPUPct,
		"memory_pct":   sample.MemoryPct,
		"disk_pct":     sample.DiskPct,
		"network_mbps": sample.NetworkMbps,
	}
}

func (a *Alerter) shouldTrigger(alert *models.Alert) bool {
	if alert.LastTriggered == nil {
		return true
	}

	return time.Since(*alert.LastTriggered) >= a.AlertConfiguration.RetriggerAfter
}

func (a *Alerter) updateLastTriggered(alert *models.Alert) error {
	now := time.Now()

	alert.LastTriggered = &now
	_, err := a.Repository.Alert.UpdateAlert(alert)

	return err
}
