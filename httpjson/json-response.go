package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/llm-deploy/api/srvcerror"
)

// ErrorResponse is the wire shape of every failed request. The "error" key
// is always present; "fields" carries the per-field breakdown of validation
// failures when one exists.
type ErrorResponse struct {
	Error  string                     `json:"error"`
	Code   string                     `json:"code,omitempty"`
	Fields []srvcerror.FieldViolation `json:"fields,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, errCode string) {
	WriteJson(w, statusCode, ErrorResponse{
		Error: errMsg,
		Code:  errCode,
	})
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		srvcerror.ErrCodeInternalServerError)
}

// HandleError maps a service error to its HTTP response. Unrecognized errors
// become a 500 with a static message so internal detail never reaches the
// caller.
func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.DebugInfo() != nil {
			logger.Warn("service error", "error", err, "debug", srvcErr.DebugInfo())
		} else {
			logger.Warn("service error", "error", err)
		}
		if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
			logger.Error("internal server error", "error", err)
		}
		WriteJson(w, srvcErr.HttpStatusCode(), ErrorResponse{
			Error:  srvcErr.Error(),
			Code:   srvcErr.ErrorCode(),
			Fields: srvcErr.Fields(),
		})
		return
	}
	logger.Error("internal server error", "error", err)
	writeInternalErrorJson(w)
}
