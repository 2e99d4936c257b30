package incident

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"github.com/go-chi/chi"
)

type ListIncidentEventsHandler struct {
	config *config.Config
}

func NewListIncidentEventsHandler(config *config.Config) *ListIncidentEventsHandler {
	return &ListIncidentEventsHandler{config}
}

func (h ListIncidentEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.config.Repository.IncidentEvent.ListEventsByIncidentID(
		incident.ID,
		utils.WithSortBy("timestamp"),
	)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := make([]*types.IncidentEvent, 0)

	for _, event := range events {
		res = append(res, event.ToAPIType())
	}

	shared.WriteResult(w, res)
}
