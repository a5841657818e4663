package evalreq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/llm-deploy/api/srvcerror"
)

// Parse decodes and validates a raw request body. It is a pure function: the
// body either becomes a fully-typed EvaluationRequest or an error carrying
// every field violation found in one pass, not just the first.
func Parse(body []byte) (*EvaluationRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrInvalidJson().SetDebug(err)
	}

	v := &violations{}
	req := &EvaluationRequest{
		Email:  requireString(raw, "email", v),
		Secret: requireString(raw, "secret", v),
		Task:   requireString(raw, "task", v),
		Round:  requireInt(raw, "round", v),
		Nonce:  requireString(raw, "nonce", v),
		Brief:  requireString(raw, "brief", v),
		Checks: requireStringSlice(raw, "checks", v),
	}
	req.EvalUrl = requireAbsoluteUrl(raw, "evaluationurl", v)
	req.Attachments = optionalAttachments(raw, "attachments", v)

	if len(v.list) > 0 {
		return nil, newErrInvalidEvalRequest(v.list)
	}
	return req, nil
}

type violations struct {
	list []srvcerror.FieldViolation
}

func (v *violations) add(field string, msg string) {
	v.list = append(v.list, srvcerror.FieldViolation{Field: field, Message: msg})
}

func present(raw map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	msg, ok := raw[field]
	if !ok || bytes.Equal(msg, []byte("null")) {
		return nil, false
	}
	return msg, true
}

func requireString(raw map[string]json.RawMessage, field string, v *violations) string {
	return requireStringAt(raw, field, field, v)
}

// requireStringAt looks up key in raw but reports violations under path,
// which may be a nested location such as "attachments[2].name".
func requireStringAt(raw map[string]json.RawMessage, key string, path string, v *violations) string {
	msg, ok := present(raw, key)
	if !ok {
		v.add(path, "is required")
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		v.add(path, "must be a string")
		return ""
	}
	return s
}

func requireInt(raw map[string]json.RawMessage, field string, v *violations) int {
	msg, ok := present(raw, field)
	if !ok {
		v.add(field, "is required")
		return 0
	}
	var n int
	if err := json.Unmarshal(msg, &n); err != nil {
		v.add(field, "must be an integer")
		return 0
	}
	return n
}

func requireStringSlice(raw map[string]json.RawMessage, field string, v *violations) []string {
	msg, ok := present(raw, field)
	if !ok {
		v.add(field, "is required")
		return nil
	}
	var list []string
	if err := json.Unmarshal(msg, &list); err != nil {
		v.add(field, "must be an array of strings")
		return nil
	}
	return list
}

// requireAbsoluteUrl accepts only URLs with both a scheme and a host, the
// parsed value is later echoed back in canonical form.
func requireAbsoluteUrl(raw map[string]json.RawMessage, field string, v *violations) *url.URL {
	msg, ok := present(raw, field)
	if !ok {
		v.add(field, "is required")
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		v.add(field, "must be a string")
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		v.add(field, "must be an absolute URL")
		return nil
	}
	return u
}

// optionalAttachments defaults to an empty, non-nil slice when the field is
// absent so the echo renders [] rather than null.
func optionalAttachments(raw map[string]json.RawMessage, field string, v *violations) []Attachment {
	msg, ok := present(raw, field)
	if !ok {
		return []Attachment{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil {
		v.add(field, "must be an array of attachments")
		return []Attachment{}
	}

	attachments := make([]Attachment, 0, len(items))
	for i, item := range items {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(item, &entry); err != nil {
			v.add(fmt.Sprintf("%s[%d]", field, i), "must be an object")
			continue
		}
		attachments = append(attachments, Attachment{
			Name: requireStringAt(entry, "name", fmt.Sprintf("%s[%d].name", field, i), v),
			Url:  requireStringAt(entry, "url", fmt.Sprintf("%s[%d].url", field, i), v),
		})
	}
	return attachments
}
