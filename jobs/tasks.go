package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeWelcomeMail is the task type for the post-subscribe welcome mail.
	TaskTypeWelcomeMail = "mail:welcome"
)

// WelcomeMailPayload describes the information required to send the
// welcome mail.
type WelcomeMailPayload struct {
	Email string `json:"email"`
}

// NewWelcomeMailTask constructs an Asynq task.
func NewWelcomeMailTask(payload WelcomeMailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeWelcomeMail, data), nil
}

// HandleWelcomeMailTask processes TaskTypeWelcomeMail tasks.
// Delivery goes to the log until an SMTP relay is wired up.
func HandleWelcomeMailTask(ctx context.Context, t *asynq.Task) error {
	var payload WelcomeMailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	slog.Default().Info("send welcome mail", "to", payload.Email)
	return nil
}
