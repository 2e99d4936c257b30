package envconf

type DBConf struct {
	SQLLite     bool   `env:"SQL_LITE,default=true"`
	SQLLitePath string `env:"SQL_LITE_PATH,default=./sre-demo-agent.db"`

	PostgresHost     string `env:"POSTGRES_HOST,default=postgres"`
	PostgresPort     uint   `env:"POSTGRES_PORT,default=5432"`
	PostgresUsername string `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,default=postgres"`
	PostgresDB       string `env:"POSTGRES_DB,default=sre_demo_agent"`
}

type LogStoreConf struct {
	LogStoreKind string `env:"LOG_STORE_KIND,default=memory"`
	LogStoreDir  string `env:"LOG_STORE_DIR"`
}

type IntegrationsConf struct {
	// Simulate keeps the issue-tracker and chat integrations local, which is
	// the demo default. When disabled, the URLs below must point at real
	// endpoints.
	Simulate bool `env:"SIMULATE_INTEGRATIONS,default=true"`

	IssueTrackerHost  string `env:"ISSUE_TRACKER_HOST"`
	IssueTrackerToken string `env:"ISSUE_TRACKER_TOKEN"`
	IssueTrackerRepo  string `env:"ISSUE_TRACKER_REPO,default=contoso/incidents"`

	ChatWebhookHost  string `env:"CHAT_WEBHOOK_HOST"`
	ChatWebhookToken string `env:"CHAT_WEBHOOK_TOKEN"`
}

type EnvDecoderConf struct {
	Debug      bool `env:"DEBUG,default=true"`
	ServerPort uint `env:"SERVER_PORT,default=8080"`

	// FixtureDir holds the demo-data fixture files; DefinitionDir holds the
	// subagent and workflow YAML documents.
	FixtureDir    string `env:"FIXTURE_DIR,default=./demo-data"`
	DefinitionDir string `env:"DEFINITION_DIR,default=./demo-data/definitions"`

	DBConf           DBConf
	LogStoreConf     LogStoreConf
	IntegrationsConf IntegrationsConf
}
