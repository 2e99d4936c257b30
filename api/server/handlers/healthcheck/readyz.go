package healthcheck

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
)

type ReadyzHandler struct {
	config *config.Config
}

func NewReadyzHandler(config *config.Config) *ReadyzHandler {
	return &ReadyzHandler{config}
}

func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	db := h.config.Repository.DB

	switch db.Dialector.Name() {
	case "sqlite":
		writeHealthy(w)
		return
	case "postgres":
		sqlDB, err := db.DB()

		if err != nil {
			shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
			return
		}

		if err := sqlDB.Ping(); err != nil {
			shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
			return
		}

		writeHealthy(w)
		return
	}

	shared.WriteError(h.config.Logger, w, http.StatusBadRequest, fmt.Errorf("database is not supported"))
}
