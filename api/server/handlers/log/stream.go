package log

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/pkg/logstore"
)

type streamRequest struct {
	Limit uint32 `schema:"limit"`
}

// lineWriter streams raw log lines to the response as plain text.
type lineWriter struct {
	w http.ResponseWriter
}

func (lw *lineWriter) Write(line string) error {
	if _, err := lw.w.Write([]byte(line + "\n")); err != nil {
		return err
	}

	if f, ok := lw.w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}

// StreamLogHandler replays the raw application log stream from the log store,
// as opposed to the structured query served by GetLogHandler.
type StreamLogHandler struct {
	config *config.Config
}

func NewStreamLogHandler(config *config.Config) *StreamLogHandler {
	return &StreamLogHandler{config}
}

func (h StreamLogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &streamRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	stopCh := make(chan struct{})
	defer close(stopCh)

	if err := h.config.LogStore.Query(logstore.QueryOptions{Limit: req.Limit}, &lineWriter{w}, stopCh); err != nil {
		h.config.Logger.Error().Caller().Msgf("error streaming logs: %v", err)
	}
}
