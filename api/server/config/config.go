package config

import (
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/agent"
	"github.com/contoso/sre-demo-agent/pkg/alerter"
	"github.com/contoso/sre-demo-agent/pkg/definitions"
	"github.com/contoso/sre-demo-agent/pkg/logstore"
	"github.com/contoso/sre-demo-agent/pkg/workflow"
)

type Config struct {
	// Logger for logging
	Logger *logger.Logger

	Repository *repository.Repository

	LogStore logstore.LogStore

	// Runner executes incident-response runs; Alerter bridges stored firing
	// alerts to the runner.
	Runner  *workflow.Runner
	Alerter *alerter.Alerter

	// Registry holds the grounding tools served under /tools.
	Registry *agent.Registry

	Workflow *definitions.Workflow
	Subagent *definitions.Subagent
}
