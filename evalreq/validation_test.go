package evalreq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/llm-deploy/api/srvcerror"
	"github.com/stretchr/testify/require"
)

func validBody() map[string]any {
	return map[string]any{
		"email":         "a@b.com",
		"secret":        "S",
		"task":          "t1",
		"round":         1,
		"nonce":         "n1",
		"brief":         "b",
		"checks":        []string{"c1"},
		"evaluationurl": "https://example.com/eval",
	}
}

func marshal(t *testing.T, body map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return b
}

func asSrvcError(t *testing.T, err error) *srvcerror.Error {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected srvcerror.Error, got %v", err)
	return srvcErr
}

func violatedFields(srvcErr *srvcerror.Error) []string {
	fields := []string{}
	for _, f := range srvcErr.Fields() {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestParseValidRequest(t *testing.T) {
	req, err := Parse(marshal(t, validBody()))
	require.NoError(t, err)

	require.Equal(t, "a@b.com", req.Email)
	require.Equal(t, "S", req.Secret)
	require.Equal(t, "t1", req.Task)
	require.Equal(t, 1, req.Round)
	require.Equal(t, "n1", req.Nonce)
	require.Equal(t, "b", req.Brief)
	require.Equal(t, []string{"c1"}, req.Checks)
	require.Equal(t, "https://example.com/eval", req.EvalUrl.String())

	// attachments omitted defaults to empty, never nil
	require.NotNil(t, req.Attachments)
	require.Len(t, req.Attachments, 0)
}

func TestParseMalformedJson(t *testing.T) {
	_, err := Parse([]byte(`{"email":`))
	srvcErr := asSrvcError(t, err)
	require.Equal(t, ErrCodeInvalidJson, srvcErr.ErrorCode())
}

func TestParseMissingField(t *testing.T) {
	body := validBody()
	delete(body, "task")

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)
	require.Equal(t, ErrCodeInvalidEvalRequest, srvcErr.ErrorCode())
	require.Contains(t, violatedFields(srvcErr), "task")
}

func TestParseNullIsMissing(t *testing.T) {
	body := validBody()
	body["brief"] = nil

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)
	require.Contains(t, violatedFields(srvcErr), "brief")
}

func TestParseCollectsAllViolations(t *testing.T) {
	body := validBody()
	delete(body, "task")
	body["round"] = "one"
	body["evaluationurl"] = "not-a-url"

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)
	require.Equal(t, ErrCodeInvalidEvalRequest, srvcErr.ErrorCode())

	fields := violatedFields(srvcErr)
	require.Contains(t, fields, "task")
	require.Contains(t, fields, "round")
	require.Contains(t, fields, "evaluationurl")
	require.Len(t, fields, 3)
}

func TestParseWrongTypes(t *testing.T) {
	body := validBody()
	body["email"] = 42
	body["checks"] = "c1"

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)

	fields := violatedFields(srvcErr)
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "checks")
}

func TestParseRelativeUrlRejected(t *testing.T) {
	body := validBody()
	body["evaluationurl"] = "/eval/path"

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)
	require.Contains(t, violatedFields(srvcErr), "evaluationurl")
}

func TestParseAttachments(t *testing.T) {
	body := validBody()
	body["attachments"] = []map[string]string{
		{"name": "logs", "url": "https://example.com/logs.txt"},
		{"name": "trace", "url": "not required to be a url"},
	}

	req, err := Parse(marshal(t, body))
	require.NoError(t, err)
	require.Len(t, req.Attachments, 2)
	require.Equal(t, "logs", req.Attachments[0].Name)
	require.Equal(t, "not required to be a url", req.Attachments[1].Url)
}

func TestParseAttachmentMissingUrl(t *testing.T) {
	body := validBody()
	body["attachments"] = []map[string]string{
		{"name": "logs"},
	}

	_, err := Parse(marshal(t, body))
	srvcErr := asSrvcError(t, err)
	require.Contains(t, violatedFields(srvcErr), "attachments[0].url")
}
