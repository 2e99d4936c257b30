package alert

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type GetAlertHandler struct {
	config *config.Config
}

func NewGetAlertHandler(config *config.Config) *GetAlertHandler {
	return &GetAlertHandler{config}
}

func (h GetAlertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "alert_id")

	if alertID == "" {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, fmt.Errorf("empty alert id"))
		return
	}

	alert, err := h.config.Repository.Alert.ReadAlert(alertID)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, alert.ToAPIType())
}
