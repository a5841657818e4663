package http

import (
	"net/http"

	"github.com/llm-deploy/api/httpjson"
)

// health is the liveness probe. Static body, no auth, no side effects.
func (httpserver *HttpServer) health(w http.ResponseWriter, r *http.Request) {
	type healthResponse struct {
		Message string `json:"message"`
	}

	httpjson.WriteJson(w, http.StatusOK, healthResponse{
		Message: "api is working",
	})
}
