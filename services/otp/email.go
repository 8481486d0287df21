package otp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopsphere/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail = errors.New("a valid email address is required")
	ErrOTPExpired   = errors.New("OTP not found or expired")
	ErrOTPMismatch  = errors.New("OTP does not match")
)

const emailKeyPrefix = "email:"

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EmailOTPService issues and verifies email one-time codes. Codes are
// stored hashed with a TTL and delivered out of band through the queue.
type EmailOTPService struct {
	Store     CodeStore
	Generator *Generator
	Queue     TaskEnqueuer
	TTL       time.Duration
	HashCost  int
	Logger    *zap.Logger
}

func NewEmailOTPService(store CodeStore, gen *Generator, queue TaskEnqueuer, ttl time.Duration, logger *zap.Logger) *EmailOTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &EmailOTPService{
		Store:     store,
		Generator: gen,
		Queue:     queue,
		TTL:       ttl,
		HashCost:  bcrypt.DefaultCost,
		Logger:    logger,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// RequestEmailOTP mints a code for email, replacing any outstanding one.
func (s *EmailOTPService) RequestEmailOTP(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	code := s.Generator.Generate()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.HashCost)
	if err != nil {
		return fmt.Errorf("failed to hash otp: %w", err)
	}
	key := emailKeyPrefix + email
	if err := s.Store.Save(ctx, key, string(hash), s.TTL); err != nil {
		return err
	}

	task, err := NewEmailOTPTask(models.EmailOTPPayload{Email: email, Code: code, TTL: s.TTL.String()})
	if err != nil {
		return fmt.Errorf("failed to build otp task: %w", err)
	}
	if _, err := s.Queue.EnqueueContext(ctx, task); err != nil {
		if delErr := s.Store.Delete(ctx, key); delErr != nil {
			s.Logger.Error("failed to discard undelivered otp", zap.Error(delErr))
		}
		return fmt.Errorf("failed to enqueue otp delivery: %w", err)
	}

	s.Logger.Debug("email otp requested", zap.String("email", email), zap.Duration("ttl", s.TTL))
	return nil
}

// VerifyEmailOTP checks code and consumes it on success.
func (s *EmailOTPService) VerifyEmailOTP(ctx context.Context, email, code string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	key := emailKeyPrefix + email

	hash, err := s.Store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return ErrOTPExpired
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return ErrOTPMismatch
	}

	if err := s.Store.Delete(ctx, key); err != nil {
		s.Logger.Error("failed to delete otp after verification", zap.Error(err))
	}
	return nil
}
