package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/contoso/sre-demo-agent/api/server/config"
	alertHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/alert"
	healthcheckHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/healthcheck"
	incidentHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/incident"
	inventoryHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/inventory"
	logHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/log"
	metricHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/metric"
	oncallHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/oncall"
	statusHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/status"
	toolHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/tool"
	workflowHandlers "github.com/contoso/sre-demo-agent/api/server/handlers/workflow"
	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/agent"
	"github.com/contoso/sre-demo-agent/pkg/alerter"
	"github.com/contoso/sre-demo-agent/pkg/definitions"
	"github.com/contoso/sre-demo-agent/pkg/fixtures"
	"github.com/contoso/sre-demo-agent/pkg/httpclient"
	"github.com/contoso/sre-demo-agent/pkg/integrations"
	"github.com/contoso/sre-demo-agent/pkg/logstore"
	"github.com/contoso/sre-demo-agent/pkg/logstore/memorystore"
	"github.com/contoso/sre-demo-agent/pkg/workflow"
)

const (
	subagentFile = "subagent.yaml"
	workflowFile = "incident_workflow.yaml"
)

func main() {
	// .env is optional; real env takes precedence
	godotenv.Load()

	var envDecoderConf envconf.EnvDecoderConf = envconf.EnvDecoderConf{}

	if err := envdecode.StrictDecode(&envDecoderConf); err != nil {
		logger.NewErrorConsole(true).Fatal().Caller().Msgf("could not decode env conf: %v", err)

		os.Exit(1)
	}

	l := logger.NewConsole(envDecoderConf.Debug)

	// create database connection through adapter
	db, err := adapter.New(&envDecoderConf.DBConf)

	if err != nil {
		l.Fatal().Caller().Msgf("could not create database connection: %v", err)
	}

	if err := repository.AutoMigrate(db, false); err != nil {
		l.Fatal().Caller().Msgf("auto migration failed: %v", err)
	}

	repo := repository.NewRepository(db)

	set := loadOrGenerate(envDecoderConf.FixtureDir, l)

	if report := fixtures.Validate(set); !report.OK() {
		for _, msg := range report.Errors {
			l.Error().Caller().Msgf("fixture validation: %s", msg)
		}

		l.Fatal().Caller().Msgf("fixture set is not internally consistent")
	}

	if err := fixtures.Seed(repo, set); err != nil {
		l.Fatal().Caller().Msgf("could not seed database from fixtures: %v", err)
	}

	subagent, wf := loadDefinitions(envDecoderConf.DefinitionDir, l)

	logStore, err := memorystore.New("application", memorystore.Options{Dir: envDecoderConf.LogStoreConf.LogStoreDir})

	if err != nil {
		l.Fatal().Caller().Msgf("memory-based log store setup failed: %v", err)
	}

	pushFixtureLogs(logStore, set, l)

	integrationsConf := &envDecoderConf.IntegrationsConf

	// the workflow definition owns the target repo; env supplies a fallback
	// for workflows that do not declare one
	issueRepo := wf.IssueRepo()

	if issueRepo == "" {
		issueRepo = integrationsConf.IssueTrackerRepo
	}

	tracker := &integrations.IssueTracker{
		Client:   httpclient.NewClient(integrationsConf.IssueTrackerHost, integrationsConf.IssueTrackerToken),
		Repo:     issueRepo,
		Simulate: integrationsConf.Simulate,
	}

	chatNotifier := &integrations.ChatNotifier{
		Client:   httpclient.NewClient(integrationsConf.ChatWebhookHost, integrationsConf.ChatWebhookToken),
		Simulate: integrationsConf.Simulate,
	}

	runner := &workflow.Runner{
		Definition: wf,
		Repository: repo,
		Tracker:    tracker,
		Chat:       chatNotifier,
		Logger:     l,
	}

	firingAlerter := &alerter.Alerter{
		AlertConfiguration: &alerter.AlertConfiguration{
			RetriggerAfter: time.Hour,
		},
		Runner:     runner,
		Repository: repo,
		Logger:     l,
	}

	// trigger runs for seeded firing alerts on a fixed cadence
	go func() {
		for {
			if _, err := firingAlerter.TriggerFiring(); err != nil {
				l.Error().Caller().Msgf("alert trigger pass exited with error: %v", err)
			}

			time.Sleep(time.Minute)
		}
	}()

	registry := agent.NewRegistry(agent.GroundingTools(repo)...)

	conf := &config.Config{
		Logger:     l,
		Repository: repo,
		LogStore:   logStore,
		Runner:     runner,
		Alerter:    firingAlerter,
		Registry:   registry,
		Workflow:   wf,
		Subagent:   subagent,
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Mount("/debug", middleware.Profiler())

	r.Method("GET", "/livez", healthcheckHandlers.NewLivezHandler(conf))
	r.Method("GET", "/readyz", healthcheckHandlers.NewReadyzHandler(conf))
	r.Method("GET", "/status", statusHandlers.NewGetStatusHandler(conf))

	r.Method("GET", "/metrics", metricHandlers.NewListMetricsHandler(conf))
	r.Method("GET", "/logs", logHandlers.NewGetLogHandler(conf))
	r.Method("GET", "/logs/stream", logHandlers.NewStreamLogHandler(conf))

	r.Method("GET", "/alerts", alertHandlers.NewListAlertsHandler(conf))
	r.Method("GET", "/alerts/{alert_id}", alertHandlers.NewGetAlertHandler(conf))

	r.Method("GET", "/incidents", incidentHandlers.NewListIncidentsHandler(conf))
	r.Method("GET", "/incidents/{uid}", incidentHandlers.NewGetIncidentHandler(conf))
	r.Method("GET", "/incidents/{uid}/events", incidentHandlers.NewListIncidentEventsHandler(conf))

	r.Method("GET", "/inventory", inventoryHandlers.NewListInventoryHandler(conf))
	r.Method("GET", "/inventory/{server_id}", inventoryHandlers.NewGetInventoryHandler(conf))

	r.Method("GET", "/oncall", oncallHandlers.NewListOnCallHandler(conf))
	r.Method("GET", "/oncall/{rotation}", oncallHandlers.NewGetOnCallHandler(conf))

	r.Method("GET", "/tools", toolHandlers.NewListToolsHandler(conf))
	r.Method("POST", "/tools/{name}", toolHandlers.NewInvokeToolHandler(conf))

	r.Method("POST", "/workflows/incident/runs", workflowHandlers.NewRunWorkflowHandler(conf))
	r.Method("GET", "/workflows/incident/runs", workflowHandlers.NewListRunsHandler(conf))
	r.Method("GET", "/workflows/incident/runs/{run_id}", workflowHandlers.NewGetRunHandler(conf))
	r.Method("POST", "/workflows/incident/runs/{run_id}/approve", workflowHandlers.NewApproveRunHandler(conf))

	l.Info().Caller().Msgf("starting API server on port %d", envDecoderConf.ServerPort)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", envDecoderConf.ServerPort), r); err != nil {
		l.Error().Caller().Msgf("error starting API server: %v", err)
	}
}

// loadOrGenerate reads the fixture set from disk, falling back to generating
// and writing a fresh one when the directory is empty or missing.
func loadOrGenerate(dir string, l *logger.Logger) *fixtures.Set {
	set, err := fixtures.Load(dir)

	if err == nil {
		return set
	}

	l.Info().Caller().Msgf("could not load fixtures from %s (%v), generating", dir, err)

	set = fixtures.Generate()

	if err := fixtures.WriteSet(dir, set); err != nil {
		l.Fatal().Caller().Msgf("could not write generated fixtures: %v", err)
	}

	return set
}

func loadDefinitions(dir string, l *logger.Logger) (*definitions.Subagent, *definitions.Workflow) {
	subagent, err := definitions.LoadSubagent(filepath.Join(dir, subagentFile))

	if err != nil {
		l.Fatal().Caller().Msgf("could not load subagent definition: %v", err)
	}

	if err := definitions.ValidateSubagent(subagent); err != nil {
		l.Fatal().Caller().Msgf("invalid subagent definition: %v", err)
	}

	wf, err := definitions.LoadWorkflow(filepath.Join(dir, workflowFile))

	if err != nil {
		l.Fatal().Caller().Msgf("could not load workflow definition: %v", err)
	}

	if err := definitions.ValidateWorkflow(wf, []*definitions.Subagent{subagent}); err != nil {
		l.Fatal().Caller().Msgf("invalid workflow definition: %v", err)
	}

	return subagent, wf
}

// pushFixtureLogs replays the fixture application logs into the log store so
// that /debug tailing and the store-backed stream have content on boot.
func pushFixtureLogs(store logstore.LogStore, set *fixtures.Set, l *logger.Logger) {
	for _, line := range set.Logs {
		ts := time.Now()

		if line.Timestamp != nil {
			ts = *line.Timestamp
		}

		entry := fmt.Sprintf("[%s] %s: %s", line.Severity, line.Service, line.Message)

		if err := store.Push(entry, ts); err != nil {
			l.Error().Caller().Msgf("could not push fixture log line: %v", err)
			return
		}
	}
}
