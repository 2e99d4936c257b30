package workflow

import (
	"errors"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/workflow"
)

type RunWorkflowHandler struct {
	config *config.Config
}

func NewRunWorkflowHandler(config *config.Config) *RunWorkflowHandler {
	return &RunWorkflowHandler{config}
}

func (h RunWorkflowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input := &types.AlertInput{}

	if err := shared.DecodeJSON(r, input); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	run, err := h.config.Runner.Process(input)

	if errors.Is(err, workflow.ErrInvalidAlert) {
		// The failed run is persisted and returned so the caller can see the
		// validation errors.
		w.WriteHeader(http.StatusUnprocessableEntity)
		shared.WriteResult(w, run.ToAPIType())
		return
	}

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	shared.WriteResult(w, run.ToAPIType())
}
