package fixtures

import (
	"fmt"
	"strings"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/repository"
)

// Seed hydrates the database from a fixture set. Seeding is idempotent on the
// fixture identifiers (alert ids, incident ids, server ids, rotations, and the
// metric (server, timestamp) pairs); log entries are only inserted into an
// empty log table.
func Seed(repo *repository.Repository, set *Set) error {
	for _, alert := range set.Alerts {
		if _, err := repo.Alert.UpsertAlert(alertToModel(alert)); err != nil {
			return err
		}
	}

	for _, incident := range set.Incidents {
		if _, err := repo.Incident.UpsertIncident(incidentToModel(incident)); err != nil {
			return err
		}
	}

	samples := make([]*models.MetricSample, 0, len(set.Metrics))

	for _, sample := range set.Metrics {
		samples = append(samples, &models.MetricSample{
			ServerID:    sample.ServerID,
			Timestamp:   sample.Timestamp,
			CPUPct:      sample.CPUPct,
			MemoryPct:   sample.MemoryPct,
			DiskPct:     sample.DiskPct,
			NetworkMbps: sample.NetworkMbps,
		})
	}

	if err := repo.Metric.CreateSamples(samples); err != nil {
		return err
	}

	count, err := repo.LogEntry.Count()

	if err != nil {
		return err
	}

	if count == 0 {
		entries := make([]*models.LogEntry, 0, len(set.Logs))

		for _, line := range set.Logs {
			entries = append(entries, &models.LogEntry{
				Timestamp: line.Timestamp,
				Service:   line.Service,
				Severity:  line.Severity,
				Message:   line.Message,
			})
		}

		if err := repo.LogEntry.CreateEntries(entries); err != nil {
			return err
		}
	}

	for _, record := range set.Inventory {
		if _, err := repo.Inventory.UpsertRecord(inventoryToModel(record)); err != nil {
			return err
		}
	}

	for _, entry := range set.OnCall {
		model := &models.OnCallEntry{
			Rotation:         entry.Rotation,
			EscalationPolicy: entry.EscalationPolicy,
			CurrentAssignee:  entry.CurrentAssignee,
			Contact:          entry.Contact,
		}

		if _, err := repo.OnCall.UpsertEntry(model); err != nil {
			return err
		}
	}

	return nil
}

func alertToModel(alert *types.Alert) *models.Alert {
	return &models.Alert{
		AlertID:     alert.AlertID,
		Title:       alert.Title,
		Source:      alert.Source,
		Severity:    alert.Severity,
		Condition:   alert.Condition,
		Resource:    alert.Resource,
		FiringSince: alert.FiringSince,
	}
}

func incidentToModel(incident *types.Incident) *models.Incident {
	model := &models.Incident{
		UniqueID:         incident.ID,
		Title:            incident.Title,
		Status:           incident.Status,
		Severity:         incident.Severity,
		StartTime:        incident.StartTime,
		AffectedServices: strings.Join(incident.AffectedServices, ","),
		Impact:           incident.Impact,
	}

	for i, ev := range incident.Timeline {
		model.Events = append(model.Events, models.IncidentEvent{
			UniqueID:  fmt.Sprintf("%s-evt-%d", incident.ID, i+1),
			Timestamp: ev.Timestamp,
			Summary:   ev.Summary,
			Detail:    ev.Detail,
		})
	}

	return model
}

func inventoryToModel(record *types.InventoryRecord) *models.InventoryRecord {
	return &models.InventoryRecord{
		ServerID:       record.ServerID,
		Environment:    record.Environment,
		Region:         record.Region,
		CPUCores:       record.Specs.CPUCores,
		MemoryGB:       record.Specs.MemoryGB,
		DiskGB:         record.Specs.DiskGB,
		ServicesHosted: strings.Join(record.ServicesHosted, ","),
		OwningTeam:     record.OwningTeam,
	}
}
