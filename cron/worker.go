package cron

import (
	"time"

	"shopsphere/services/otp"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewOTPServeMux routes OTP delivery tasks to mailer.
func NewOTPServeMux(mailer otp.Mailer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(otp.TypeEmailOTPDeliver, otp.HandleEmailOTPTask(mailer))
	return mux
}

// StartOTPWorker starts the delivery worker in the background and returns
// the server so the caller can shut it down.
func StartOTPWorker(redisOpt asynq.RedisConnOpt, mailer otp.Mailer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewOTPServeMux(mailer)

	go func() {
		logger.Info("starting otp delivery worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("otp worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("otp worker gave up; email OTPs will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}
