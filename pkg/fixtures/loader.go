package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

var metricColumns = []string{"server_id", "timestamp", "cpu_pct", "memory_pct", "disk_pct", "network_mbps"}

// Load reads the full fixture set from dir. It fails on the first file that
// cannot be parsed; narrative consistency is checked separately by Validate.
func Load(dir string) (*Set, error) {
	set := &Set{}

	var err error

	if set.Metrics, err = LoadMetrics(filepath.Join(dir, MetricsFile)); err != nil {
		return nil, err
	}

	logs := &struct {
		Logs []types.LogLine `json:"logs"`
	}{}

	if err := loadJSON(filepath.Join(dir, LogsFile), logs); err != nil {
		return nil, err
	}

	set.Logs = logs.Logs

	alerts := &types.ListAlertsResponse{}

	if err := loadJSON(filepath.Join(dir, AlertsFile), alerts); err != nil {
		return nil, err
	}

	set.Alerts = alerts.Alerts

	incidents := &struct {
		Incidents []*types.Incident `json:"incidents"`
	}{}

	if err := loadJSON(filepath.Join(dir, IncidentsFile), incidents); err != nil {
		return nil, err
	}

	set.Incidents = incidents.Incidents

	inventory := &types.ListInventoryResponse{}

	if err := loadJSON(filepath.Join(dir, InventoryFile), inventory); err != nil {
		return nil, err
	}

	set.Inventory = inventory.Servers

	oncall := &types.ListOnCallResponse{}

	if err := loadJSON(filepath.Join(dir, OnCallFile), oncall); err != nil {
		return nil, err
	}

	set.OnCall = oncall.Rotations

	return set, nil
}

// LoadMetrics parses the metrics CSV. The header row must match the expected
// column set exactly; every data row must parse with RFC 3339 timestamps and
// numeric readings.
func LoadMetrics(path string) ([]*types.MetricSample, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening metrics fixture: %w", err)
	}

	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()

	if err != nil {
		return nil, fmt.Errorf("error reading metrics header: %w", err)
	}

	if len(header) != len(metricColumns) {
		return nil, fmt.Errorf("metrics fixture has %d columns, expected %d", len(header), len(metricColumns))
	}

	for i, col := range metricColumns {
		if header[i] != col {
			return nil, fmt.Errorf("metrics fixture column %d is %q, expected %q", i, header[i], col)
		}
	}

	samples := make([]*types.MetricSample, 0)

	for line := 2; ; line++ {
		row, err := reader.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("metrics fixture line %d: %w", line, err)
		}

		sample, err := parseMetricRow(row)

		if err != nil {
			return nil, fmt.Errorf("metrics fixture line %d: %w", line, err)
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

func parseMetricRow(row []string) (*types.MetricSample, error) {
	ts, err := time.Parse(time.RFC3339, row[1])

	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", row[1], err)
	}

	sample := &types.MetricSample{
		ServerID:  row[0],
		Timestamp: ts,
	}

	fields := []struct {
		name string
		dest *float64
	}{
		{"cpu_pct", &sample.CPUPct},
		{"memory_pct", &sample.MemoryPct},
		{"disk_pct", &sample.DiskPct},
		{"network_mbps", &sample.NetworkMbps},
	}

	for i, field := range fields {
		val, err := strconv.ParseFloat(row[i+2], 64)

		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", field.name, row[i+2], err)
		}

		*field.dest = val
	}

	return sample, nil
}

func loadJSON(path string, dest interface{}) error {
	raw, err := os.ReadFile(path)

	if err != nil {
		return fmt.Errorf("error opening fixture %s: %w", filepath.Base(path), err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("error parsing fixture %s: %w", filepath.Base(path), err)
	}

	return nil
}
