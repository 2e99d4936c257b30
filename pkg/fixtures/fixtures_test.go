package fixtures_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure the generated fixture set passes its own validation, including the
// cross-file consistency checks.
func TestGeneratedSetIsValid(t *testing.T) {
	set := fixtures.Generate()

	report := fixtures.Validate(set)

	assert.True(t, report.OK(), "generated set should validate cleanly: %v", report.Errors)
}

// Filtering the active alerts for severity "critical" must yield exactly the
// primary database alert that kicks off the demo scenario.
func TestCriticalAlertFilterYieldsPrimaryAlert(t *testing.T) {
	set := fixtures.Generate()

	critical := make([]*types.Alert, 0)

	for _, alert := range set.Alerts {
		if alert.Severity == types.AlertSeverityCritical {
			critical = append(critical, alert)
		}
	}

	require.Len(t, critical, 1, "exactly one critical alert should exist")

	assert.Equal(t, fixtures.PrimaryAlertID, critical[0].AlertID)
	assert.Equal(t, fixtures.PrimaryServer, critical[0].Resource)
	assert.Equal(t, critical[0], set.PrimaryAlert())
}

// The alerted server must exist in the inventory and have metric samples, and
// the incident's affected services must resolve against hosted services.
func TestScenarioConsistency(t *testing.T) {
	set := fixtures.Generate()

	primary := set.PrimaryAlert()
	require.NotNil(t, primary)

	record := set.InventoryRecord(primary.Resource)
	require.NotNil(t, record, "alerted server should be in the inventory")

	sampled := false

	for _, sample := range set.Metrics {
		if sample.ServerID == primary.Resource {
			sampled = true
			break
		}
	}

	assert.True(t, sampled, "alerted server should have metric samples")

	hosted := map[string]bool{}

	for _, rec := range set.Inventory {
		for _, service := range rec.ServicesHosted {
			hosted[service] = true
		}
	}

	for _, incident := range set.Incidents {
		for _, service := range incident.AffectedServices {
			assert.True(t, hosted[service], "affected service %s should be hosted somewhere", service)
		}
	}
}

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	set := fixtures.Generate()

	require.NoError(t, fixtures.WriteSet(dir, set))

	loaded, err := fixtures.Load(dir)
	require.NoError(t, err)

	assert.Len(t, loaded.Metrics, len(set.Metrics))
	assert.Len(t, loaded.Logs, len(set.Logs))
	assert.Len(t, loaded.Alerts, len(set.Alerts))
	assert.Len(t, loaded.Incidents, len(set.Incidents))
	assert.Len(t, loaded.Inventory, len(set.Inventory))
	assert.Len(t, loaded.OnCall, len(set.OnCall))

	report := fixtures.Validate(loaded)
	assert.True(t, report.OK(), "loaded set should validate cleanly: %v", report.Errors)

	primary := loaded.PrimaryAlert()
	require.NotNil(t, primary)
	assert.Equal(t, fixtures.PrimaryAlertID, primary.AlertID)
}

// A malformed metrics row must fail the load with its line number rather
// than silently truncating the series.
func TestLoadMetricsRejectsMalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), fixtures.MetricsFile)

	raw := "server_id,timestamp,cpu_pct,memory_pct,disk_pct,network_mbps\n" +
		"vm-db-01,2026-01-31T06:00:00Z,42.0,61.0,58.0,240.0\n" +
		"vm-db-01,2026-01-31T06:05:00Z,43.1\n" +
		"vm-db-01,2026-01-31T06:10:00Z,42.5,61.2,58.1,241.3\n"

	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	_, err := fixtures.LoadMetrics(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestMetricValidationCatchesBadPercentages(t *testing.T) {
	set := fixtures.Generate()

	set.Metrics[0].CPUPct = 130

	report := fixtures.Validate(set)

	assert.False(t, report.OK(), "out-of-range percentage should fail validation")
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := adapter.New(&envconf.DBConf{
		SQLLite:     true,
		SQLLitePath: filepath.Join(t.TempDir(), "seed_test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, repository.AutoMigrate(db, false))

	repo := repository.NewRepository(db)
	set := fixtures.Generate()

	require.NoError(t, fixtures.Seed(repo, set))
	require.NoError(t, fixtures.Seed(repo, set))

	var alertCount, sampleCount, logCount int64

	require.NoError(t, db.Table("alerts").Count(&alertCount).Error)
	require.NoError(t, db.Table("metric_samples").Count(&sampleCount).Error)
	require.NoError(t, db.Table("log_entries").Count(&logCount).Error)

	assert.Equal(t, int64(len(set.Alerts)), alertCount)
	assert.Equal(t, int64(len(set.Metrics)), sampleCount)
	assert.Equal(t, int64(len(set.Logs)), logCount)
}
