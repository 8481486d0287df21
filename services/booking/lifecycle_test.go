package booking

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"shopsphere/models"
	"shopsphere/services/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var (
	testNow   = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	otpFormat = regexp.MustCompile(`^\d{6}$`)
)

func newTestService(repo *memoryRepo) *DefaultBookingService {
	return NewBookingService(repo, otp.NewGenerator(nil), fixedClock{testNow}, nil)
}

func createPending(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), models.BookingInput{
		UserID:  "user-1",
		ShopID:  "shop-1",
		Service: "haircut",
		Price:   25,
	})
	require.NoError(t, err)
	return b
}

func TestCreate(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	b := createPending(t, svc)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Nil(t, b.OTPCode)
	assert.Equal(t, testNow, b.CreatedAt)
	assert.Zero(t, b.Version)

	stored, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "haircut", stored.Service)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input models.BookingInput
		field string
	}{
		{"missing user", models.BookingInput{ShopID: "s", Service: "x"}, "userId"},
		{"missing shop", models.BookingInput{UserID: "u", Service: "x"}, "shopId"},
		{"blank service", models.BookingInput{UserID: "u", ShopID: "s", Service: "  "}, "service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			_, err := newTestService(repo).Create(context.Background(), tt.input)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, repo.callCount())
		})
	}
}

func TestAcceptThenComplete(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)
	b := createPending(t, svc)

	code, err := svc.Accept(ctx, b.ID)
	require.NoError(t, err)
	assert.Regexp(t, otpFormat, code)

	accepted, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, accepted.Status)
	require.NotNil(t, accepted.OTPCode)
	assert.Equal(t, code, *accepted.OTPCode)
	require.NotNil(t, accepted.AcceptedAt)
	assert.Equal(t, testNow, *accepted.AcceptedAt)

	require.NoError(t, svc.Complete(ctx, b.ID, code, *accepted.OTPCode, 25))

	completed, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, 2, completed.Version)
}

func TestComplete_WrongOTPLeavesBookingAccepted(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := NewBookingService(repo, otp.NewGenerator(func(int) int { return 23456 }), fixedClock{testNow}, nil)
	b := createPending(t, svc)

	code, err := svc.Accept(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "123456", code)

	before := repo.writeCount()
	err = svc.Complete(ctx, b.ID, "654321", code, 25)
	assert.ErrorIs(t, err, ErrInvalidOTP)
	assert.Equal(t, before, repo.writeCount(), "mismatch must not write")

	err = svc.Complete(ctx, b.ID, "", "", 25)
	assert.ErrorIs(t, err, ErrInvalidOTP)

	still, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, still.Status)
	assert.Nil(t, still.CompletedAt)

	// the booking can still be completed with the right code
	require.NoError(t, svc.Complete(ctx, b.ID, code, code, 25))
}

func TestComplete_StaleStoredOTPRejected(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)
	b := createPending(t, svc)

	code, err := svc.Accept(ctx, b.ID)
	require.NoError(t, err)

	stale := "000000"
	if code == stale {
		stale = "111111"
	}
	err = svc.Complete(ctx, b.ID, stale, stale, 25)
	assert.ErrorIs(t, err, ErrInvalidOTP)

	still, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, still.Status)
}

func TestCancelThenCompleteFailsWithInvalidTransition(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)
	b := createPending(t, svc)

	require.NoError(t, svc.Cancel(ctx, b.ID))

	cancelled, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	err = svc.Complete(ctx, b.ID, "123456", "123456", 25)
	require.ErrorIs(t, err, ErrInvalidTransition)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.BookingCancelled, terr.Current)
	assert.Equal(t, models.BookingCompleted, terr.Target)

	after, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, after.Status)
	assert.Nil(t, after.CompletedAt)
}

func TestRejectThenCompleteFailsWithInvalidTransition(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)
	b := createPending(t, svc)

	require.NoError(t, svc.Reject(ctx, b.ID))

	rejected, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, rejected.OTPCode)

	before := repo.writeCount()
	for _, entered := range []string{"123456", ""} {
		err = svc.Complete(ctx, b.ID, entered, "", 25)
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.NotErrorIs(t, err, ErrInvalidOTP)

		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, models.BookingRejected, terr.Current)
		assert.Equal(t, models.BookingCompleted, terr.Target)
	}
	assert.Equal(t, before, repo.writeCount())

	after, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, after.Status)
	assert.Nil(t, after.CompletedAt)
}

func TestCancel_EmptyIDNeverReachesStore(t *testing.T) {
	for _, id := range []string{"", "   "} {
		repo := newMemoryRepo()
		err := newTestService(repo).Cancel(context.Background(), id)
		assert.ErrorIs(t, err, ErrEmptyBookingID)
		assert.Zero(t, repo.callCount())
	}
}

func TestCancel_FromAccepted(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryRepo())
	b := createPending(t, svc)

	_, err := svc.Accept(ctx, b.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, b.ID))

	got, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestIllegalTransitions(t *testing.T) {
	code := "424242"
	ops := map[string]func(*DefaultBookingService, string) error{
		"accept": func(s *DefaultBookingService, id string) error {
			_, err := s.Accept(context.Background(), id)
			return err
		},
		"reject": func(s *DefaultBookingService, id string) error {
			return s.Reject(context.Background(), id)
		},
		"cancel": func(s *DefaultBookingService, id string) error {
			return s.Cancel(context.Background(), id)
		},
		"complete": func(s *DefaultBookingService, id string) error {
			b, err := s.GetBooking(context.Background(), id)
			if err != nil {
				return err
			}
			stored := ""
			if b.OTPCode != nil {
				stored = *b.OTPCode
			}
			return s.Complete(context.Background(), id, code, stored, 10)
		},
	}

	tests := []struct {
		from models.BookingStatus
		op   string
	}{
		{models.BookingPending, "complete"},
		{models.BookingAccepted, "accept"},
		{models.BookingAccepted, "reject"},
		{models.BookingRejected, "accept"},
		{models.BookingRejected, "cancel"},
		{models.BookingRejected, "complete"},
		{models.BookingCancelled, "accept"},
		{models.BookingCancelled, "reject"},
		{models.BookingCancelled, "cancel"},
		{models.BookingCancelled, "complete"},
		{models.BookingCompleted, "accept"},
		{models.BookingCompleted, "reject"},
		{models.BookingCompleted, "cancel"},
		{models.BookingCompleted, "complete"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+tt.op, func(t *testing.T) {
			repo := newMemoryRepo()
			seeded := models.Booking{ID: "b1", ShopID: "s", UserID: "u", Status: tt.from, Version: 3}
			if tt.from == models.BookingAccepted || tt.from == models.BookingCompleted {
				seeded.OTPCode = &code
			}
			repo.seed(seeded)
			svc := newTestService(repo)

			err := ops[tt.op](svc, "b1")
			require.ErrorIs(t, err, ErrInvalidTransition)

			var terr *TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.from, terr.Current)

			got, err := svc.GetBooking(context.Background(), "b1")
			require.NoError(t, err)
			assert.Equal(t, tt.from, got.Status)
			assert.Equal(t, 3, got.Version)
		})
	}
}

func TestTransitions_UnknownBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryRepo())

	_, err := svc.Accept(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, svc.Reject(ctx, "missing"), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Cancel(ctx, "missing"), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Complete(ctx, "missing", "123456", "123456", 1), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Complete(ctx, "missing", "123456", "", 1), ErrBookingNotFound)

	_, err = svc.GetBooking(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConcurrentAcceptHasOneWinner(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	b := createPending(t, svc)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []string
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := svc.Accept(context.Background(), b.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, code)
			case errors.Is(err, ErrInvalidTransition):
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, workers-1, conflicts)

	got, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OTPCode)
	assert.Equal(t, winners[0], *got.OTPCode)
	assert.Equal(t, 1, got.Version)
}

func TestCancelRacingComplete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryRepo())
	b := createPending(t, svc)
	code, err := svc.Accept(ctx, b.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var cancelErr, completeErr error
	wg.Add(2)
	go func() { defer wg.Done(); cancelErr = svc.Cancel(ctx, b.ID) }()
	go func() { defer wg.Done(); completeErr = svc.Complete(ctx, b.ID, code, code, 25) }()
	wg.Wait()

	got, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)

	if got.Status == models.BookingCancelled {
		assert.NoError(t, cancelErr)
		assert.ErrorIs(t, completeErr, ErrInvalidTransition)
		assert.Nil(t, got.CompletedAt)
	} else {
		require.Equal(t, models.BookingCompleted, got.Status)
		assert.NoError(t, completeErr)
		assert.ErrorIs(t, cancelErr, ErrInvalidTransition)
		assert.Nil(t, got.CancelledAt)
	}
}

func TestReadersAndEarnings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryRepo())

	done := createPending(t, svc)
	code, err := svc.Accept(ctx, done.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, done.ID, code, code, 25))

	open := createPending(t, svc)

	mine, err := svc.ListUserBookings(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := svc.ListShopBookings(ctx, "shop-1", models.BookingPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, open.ID, pending[0].ID)

	_, err = svc.ListShopBookings(ctx, "shop-1", "archived")
	assert.True(t, IsValidation(err))

	earnings, err := svc.ShopEarnings(ctx, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, earnings.Total)
	assert.Equal(t, 1, earnings.Completed)
}
