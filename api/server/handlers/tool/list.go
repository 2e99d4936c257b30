package tool

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/pkg/agent"
)

type ListToolsHandler struct {
	config *config.Config
}

func NewListToolsHandler(config *config.Config) *ListToolsHandler {
	return &ListToolsHandler{config}
}

type listToolsResponse struct {
	Tools []*agent.ToolDescriptor `json:"tools"`
}

func (h ListToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shared.WriteResult(w, &listToolsResponse{
		Tools: h.config.Registry.Descriptors(),
	})
}
