package agent_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/agent"
	"github.com/contoso/sre-demo-agent/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepository(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := adapter.New(&envconf.DBConf{
		SQLLite:     true,
		SQLLitePath: filepath.Join(t.TempDir(), "agent_test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, repository.AutoMigrate(db, false))

	repo := repository.NewRepository(db)

	require.NoError(t, fixtures.Seed(repo, fixtures.Generate()))

	return repo
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := agent.NewRegistry(agent.GroundingTools(seededRepository(t))...)

	names := make([]string, 0)

	for _, descriptor := range registry.Descriptors() {
		names = append(names, descriptor.Name)
	}

	assert.Equal(t, []string{
		"get_server_metrics",
		"get_recent_logs",
		"get_active_alerts",
		"get_incident",
		"get_inventory",
		"get_on_call",
	}, names)

	for _, descriptor := range registry.Descriptors() {
		assert.NotEmpty(t, descriptor.Description)
		assert.True(t, json.Valid(descriptor.Parameters), "parameters of %s should be valid JSON", descriptor.Name)
	}
}

func TestGetActiveAlertsToolFiltersBySeverity(t *testing.T) {
	registry := agent.NewRegistry(agent.GroundingTools(seededRepository(t))...)

	tool, ok := registry.Get("get_active_alerts")
	require.True(t, ok)

	result, err := tool.Invoke(context.Background(), json.RawMessage(`{"severity": "critical"}`))
	require.NoError(t, err)

	res, ok := result.(*types.ListAlertsResponse)
	require.True(t, ok)

	require.Len(t, res.Alerts, 1)
	assert.Equal(t, fixtures.PrimaryAlertID, res.Alerts[0].AlertID)

	_, err = tool.Invoke(context.Background(), json.RawMessage(`{"severity": "bogus"}`))
	assert.Error(t, err)
}

func TestGetServerMetricsToolLimitsSamples(t *testing.T) {
	registry := agent.NewRegistry(agent.GroundingTools(seededRepository(t))...)

	tool, ok := registry.Get("get_server_metrics")
	require.True(t, ok)

	result, err := tool.Invoke(context.Background(), json.RawMessage(`{"server_id": "vm-db-01", "limit": 5}`))
	require.NoError(t, err)

	res, ok := result.(*types.ListMetricsResponse)
	require.True(t, ok)

	require.Len(t, res.Samples, 5)

	for _, sample := range res.Samples {
		assert.Equal(t, "vm-db-01", sample.ServerID)
	}
}

func TestGetOnCallToolReadsRotation(t *testing.T) {
	registry := agent.NewRegistry(agent.GroundingTools(seededRepository(t))...)

	tool, ok := registry.Get("get_on_call")
	require.True(t, ok)

	result, err := tool.Invoke(context.Background(), json.RawMessage(`{"rotation": "platform-sre"}`))
	require.NoError(t, err)

	entry, ok := result.(*types.OnCallEntry)
	require.True(t, ok)

	assert.Equal(t, "Dana Rivers", entry.CurrentAssignee)
}

func TestUnknownToolLookup(t *testing.T) {
	registry := agent.NewRegistry()

	_, ok := registry.Get("does_not_exist")
	assert.False(t, ok)
}
