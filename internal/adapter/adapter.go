package adapter

import (
	"fmt"

	"github.com/contoso/sre-demo-agent/internal/envconf"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a gorm database connection for the configured backend. The demo
// default is a local sqlite file; postgres is supported for shared deployments.
func New(conf *envconf.DBConf) (*gorm.DB, error) {
	if conf.SQLLite {
		return gorm.Open(sqlite.Open(conf.SQLLitePath), &gorm.Config{
			FullSaveAssociations: true,
		})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		conf.PostgresHost,
		conf.PostgresPort,
		conf.PostgresUsername,
		conf.PostgresPassword,
		conf.PostgresDB,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		FullSaveAssociations: true,
	})
}
