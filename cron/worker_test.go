package cron

import (
	"context"
	"testing"

	"shopsphere/models"
	"shopsphere/services/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	email, code string
}

func (m *captureMailer) SendOTP(_ context.Context, email, code, _ string) error {
	m.email, m.code = email, code
	return nil
}

func TestOTPServeMuxDelivers(t *testing.T) {
	mailer := &captureMailer{}
	mux := NewOTPServeMux(mailer)

	task, err := otp.NewEmailOTPTask(models.EmailOTPPayload{Email: "a@b.co", Code: "123456", TTL: "5m0s"})
	require.NoError(t, err)

	require.NoError(t, mux.ProcessTask(context.Background(), task))
	assert.Equal(t, "a@b.co", mailer.email)
	assert.Equal(t, "123456", mailer.code)
}
