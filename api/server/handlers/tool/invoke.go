package tool

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type InvokeToolHandler struct {
	config *config.Config
}

func NewInvokeToolHandler(config *config.Config) *InvokeToolHandler {
	return &InvokeToolHandler{config}
}

type invokeToolResponse struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}

func (h InvokeToolHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	tool, ok := h.config.Registry.Get(name)

	if !ok {
		shared.WriteError(h.config.Logger, w, http.StatusNotFound, fmt.Errorf("unknown tool %q", name))
		return
	}

	defer r.Body.Close()

	args, err := ioutil.ReadAll(r.Body)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	if len(args) == 0 {
		args = []byte("{}")
	}

	result, err := tool.Invoke(r.Context(), json.RawMessage(args))

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, &invokeToolResponse{
		Tool:   name,
		Result: result,
	})
}
