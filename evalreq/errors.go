package evalreq

import (
	"net/http"

	"github.com/llm-deploy/api/srvcerror"
)

const ErrCodeInvalidJson = "invalid_json"

func ErrInvalidJson() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidJson,
		"request body is not valid JSON",
	).SetHttpStatusCode(http.StatusUnprocessableEntity)
}

const ErrCodeInvalidEvalRequest = "invalid_eval_request"

func newErrInvalidEvalRequest(fields []srvcerror.FieldViolation) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidEvalRequest,
		"evaluation request failed validation",
	).SetHttpStatusCode(http.StatusUnprocessableEntity).SetFields(fields)
}

const ErrCodeInvalidSecret = "invalid_secret"

func ErrInvalidSecret() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidSecret,
		"secret does not match",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
