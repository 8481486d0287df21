package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopsphere/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeEmailOTPDeliver = "otp:email:deliver"

// NewEmailOTPTask builds the delivery job for an email code.
func NewEmailOTPTask(payload models.EmailOTPPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailOTPDeliver, b, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)), nil
}

// Mailer delivers a code to an email address.
type Mailer interface {
	SendOTP(ctx context.Context, email, code, ttl string) error
}

// LogMailer writes codes to the log instead of sending mail. The code
// itself is only logged, at debug level, when ExposeCode is set, so
// production deployments need a real Mailer for codes to reach users.
type LogMailer struct {
	Logger     *zap.Logger
	ExposeCode bool
}

func (m LogMailer) SendOTP(ctx context.Context, email, code, ttl string) error {
	m.Logger.Info("email otp issued", zap.String("email", email), zap.String("expiresIn", ttl))
	if m.ExposeCode {
		m.Logger.Debug("email otp code", zap.String("email", email), zap.String("code", code))
	}
	return nil
}

// HandleEmailOTPTask returns the asynq handler that hands queued codes to mailer.
func HandleEmailOTPTask(mailer Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailOTPPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid email otp payload: %v: %w", err, asynq.SkipRetry)
		}
		return mailer.SendOTP(ctx, p.Email, p.Code, p.TTL)
	}
}
