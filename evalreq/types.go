package evalreq

import "net/url"

// EvaluationRequest is a single code-evaluation submission. It lives only for
// the duration of one request: parsed from the body, gated on the shared
// secret, echoed back, discarded.
type EvaluationRequest struct {
	Email  string
	Secret string
	Task   string
	Round  int
	Nonce  string
	Brief  string
	Checks []string

	// EvalUrl is the callback the submitter wants results posted to. It is
	// parsed and normalized here but never called by this service.
	EvalUrl *url.URL

	Attachments []Attachment
}

// Attachment names an extra artifact shipped with the request. Url is a
// plain string, not a parsed URL.
type Attachment struct {
	Name string
	Url  string
}
