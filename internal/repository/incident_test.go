package repository

import (
	"testing"

	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

func TestReadIncident(t *testing.T) {
	tester := &tester{
		dbFileName: "./incident_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	now := time.Now()
	fiveMinAgo := now.Add(-5 * time.Minute)

	incident := &models.Incident{
		UniqueID: "INC-TEST-001",
		Title:    "Database CPU saturation",
		Status:   types.IncidentStatusInvestigating,
		Severity: types.IncidentSeveritySev1,
		Events: []models.IncidentEvent{
			{
				UniqueID:  "INC-TEST-001-evt-1",
				Timestamp: &fiveMinAgo,
				Summary:   "Alert fired",
			},
			{
				UniqueID:  "INC-TEST-001-evt-2",
				Timestamp: &now,
				Summary:   "Incident opened",
			},
		},
	}

	incident, err := tester.repo.Incident.CreateIncident(incident)

	if err != nil {
		t.Fatalf("Expected no error after creating incident, got %v", err)
	}

	incident, err = tester.repo.Incident.ReadIncident(incident.UniqueID)

	if err != nil {
		t.Fatalf("Expected no error after reading incident, got %v", err)
	}

	if len(incident.Events) != 2 {
		t.Fatalf("Expected 2 incident events, got %d", len(incident.Events))
	}
}

func TestUpsertIncidentIsIdempotent(t *testing.T) {
	tester := &tester{
		dbFileName: "./incident_upsert_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	incident := &models.Incident{
		UniqueID: "INC-TEST-002",
		Title:    "first write",
		Status:   types.IncidentStatusInvestigating,
		Severity: types.IncidentSeveritySev2,
	}

	if _, err := tester.repo.Incident.UpsertIncident(incident); err != nil {
		t.Fatalf("Expected no error after upserting incident, got %v", err)
	}

	// second upsert with the same unique id must keep the stored row
	second := &models.Incident{
		UniqueID: "INC-TEST-002",
		Title:    "second write",
		Status:   types.IncidentStatusResolved,
		Severity: types.IncidentSeveritySev4,
	}

	stored, err := tester.repo.Incident.UpsertIncident(second)

	if err != nil {
		t.Fatalf("Expected no error after second upsert, got %v", err)
	}

	if stored.Title != "first write" {
		t.Fatalf("Expected stored incident to keep original title, got %q", stored.Title)
	}

	incidents, err := tester.repo.Incident.ListIncidents(&utils.ListIncidentsFilter{})

	if err != nil {
		t.Fatalf("Expected no error after listing incidents, got %v", err)
	}

	if len(incidents) != 1 {
		t.Fatalf("Expected 1 incident after duplicate upsert, got %d", len(incidents))
	}
}

func TestListIncidentsByService(t *testing.T) {
	tester := &tester{
		dbFileName: "./incident_list_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	incidents := []*models.Incident{
		{
			UniqueID:         "INC-TEST-003",
			Status:           types.IncidentStatusInvestigating,
			Severity:         types.IncidentSeveritySev1,
			AffectedServices: "database-primary,order-service",
		},
		{
			UniqueID:         "INC-TEST-004",
			Status:           types.IncidentStatusResolved,
			Severity:         types.IncidentSeveritySev3,
			AffectedServices: "api-gateway",
		},
	}

	for _, incident := range incidents {
		if _, err := tester.repo.Incident.CreateIncident(incident); err != nil {
			t.Fatalf("Expected no error after creating incident, got %v", err)
		}
	}

	service := "order-service"

	matched, err := tester.repo.Incident.ListIncidents(&utils.ListIncidentsFilter{Service: &service})

	if err != nil {
		t.Fatalf("Expected no error after listing incidents, got %v", err)
	}

	if len(matched) != 1 || matched[0].UniqueID != "INC-TEST-003" {
		t.Fatalf("Expected only the database incident to match service filter, got %d matches", len(matched))
	}
}
