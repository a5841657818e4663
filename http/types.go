package http

import "github.com/llm-deploy/api/evalreq"

// makeResponse is the acknowledgment body of POST /make. The key spelling
// "data_recieved" is preserved verbatim for wire compatibility with existing
// clients.
type makeResponse struct {
	Response     string          `json:"response"`
	DataRecieved EvalRequestJson `json:"data_recieved"`
}

type EvalRequestJson struct {
	Email         string           `json:"email"`
	Secret        string           `json:"secret"`
	Task          string           `json:"task"`
	Round         int              `json:"round"`
	Nonce         string           `json:"nonce"`
	Brief         string           `json:"brief"`
	Checks        []string         `json:"checks"`
	EvaluationUrl string           `json:"evaluationurl"`
	Attachments   []AttachmentJson `json:"attachments"`
}

type AttachmentJson struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

func mapEvalRequest(x *evalreq.EvaluationRequest) EvalRequestJson {
	attachments := make([]AttachmentJson, 0, len(x.Attachments))
	for _, a := range x.Attachments {
		attachments = append(attachments, AttachmentJson{
			Name: a.Name,
			Url:  a.Url,
		})
	}
	return EvalRequestJson{
		Email:         x.Email,
		Secret:        x.Secret,
		Task:          x.Task,
		Round:         x.Round,
		Nonce:         x.Nonce,
		Brief:         x.Brief,
		Checks:        x.Checks,
		EvaluationUrl: x.EvalUrl.String(),
		Attachments:   attachments,
	}
}
