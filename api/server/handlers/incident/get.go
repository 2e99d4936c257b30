package incident

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type GetIncidentHandler struct {
	config *config.Config
}

func NewGetIncidentHandler(config *config.Config) *GetIncidentHandler {
	return &GetIncidentHandler{config}
}

func (h GetIncidentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	incidentUID := chi.URLParam(r, "uid")

	if incidentUID == "" {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, fmt.Errorf("empty incident id"))
		return
	}

	incident, err := h.config.Repository.Incident.ReadIncident(incidentUID)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, incident.ToAPIType())
}
