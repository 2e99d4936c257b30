package healthcheck

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
)

type LivezHandler struct {
	config *config.Config
}

func NewLivezHandler(config *config.Config) *LivezHandler {
	return &LivezHandler{config}
}

func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeHealthy(w)
}

func writeHealthy(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("."))
}
