package http

import (
	"io"
	"net/http"

	"github.com/llm-deploy/api/evalreq"
	"github.com/llm-deploy/api/httpjson"
	"github.com/llm-deploy/api/logger"
	"github.com/llm-deploy/api/srvcerror"
)

// makeEvaluation accepts one evaluation submission: validate, gate on the
// shared secret, acknowledge with an echo of the parsed request. Nothing is
// dispatched anywhere.
func (httpserver *HttpServer) makeEvaluation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpjson.HandleError(log, w, srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	req, err := evalreq.Parse(body)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	receipt, err := httpserver.evalReqSrvc.Submit(r.Context(), req)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusOK, makeResponse{
		Response:     receipt.Ack,
		DataRecieved: mapEvalRequest(req),
	})
}
