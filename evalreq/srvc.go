package evalreq

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"github.com/llm-deploy/api/logger"
)

// EvalReqSrvc accepts evaluation submissions. It validates nothing itself
// (Parse does that at the boundary), gates on the shared secret and issues a
// receipt. It never dispatches the work or calls the evaluation URL.
type EvalReqSrvc struct {
	secretKey string
}

func NewEvalReqSrvc(secretKey string) *EvalReqSrvc {
	return &EvalReqSrvc{secretKey: secretKey}
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID  uuid.UUID
	Ack string
}

func (s *EvalReqSrvc) Submit(ctx context.Context, req *EvaluationRequest) (*Receipt, error) {
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.secretKey)) != 1 {
		return nil, ErrInvalidSecret()
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt id: %w", err)
	}

	logger.FromContext(ctx).Info(
		"evaluation request accepted",
		"receipt_id", id,
		"task", req.Task,
		"round", req.Round,
		"nonce", req.Nonce,
		"checks", len(req.Checks),
		"attachments", len(req.Attachments),
	)

	return &Receipt{
		ID:  id,
		Ack: fmt.Sprintf("evaluation request for task '%s' received", req.Task),
	}, nil
}
