package sessions

import (
	"context"
	"errors"

	"github.com/ub-intelligence/dharmabot/models"
)

// Gateway is the inference interface the controller consumes. Policy-level
// failures arrive as a normal AIResponse whose Text explains the
// condition; only transport failures return an error.
type Gateway interface {
	Converse(ctx context.Context, contents []models.Content, cfg models.InferenceConfig) (models.AIResponse, error)
}

// ErrSubmissionInFlight is returned when SubmitQuery is called while a
// previous submission on the same controller is still awaiting its
// response. Callers are expected to disable input while loading; this
// guard makes the single-in-flight contract explicit.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ErrSessionDeleted is returned when the gateway response arrived after
// its session was deleted. The stale response is dropped, never
// resurrected as a new session.
var ErrSessionDeleted = errors.New("session was deleted while awaiting response")
