package booking

import (
	"context"
	"slices"
	"sync"

	bookingRepo "shopsphere/database/repository/booking"
	"shopsphere/models"
)

// memoryRepo mirrors the Mongo conditional update: a transition applies
// only when the stored status is in From and, if required, the otp matches.
type memoryRepo struct {
	mu    sync.Mutex
	docs   map[string]models.Booking
	calls  int
	writes int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: map[string]models.Booking{}}
}

func (r *memoryRepo) seed(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[b.ID] = b
}

func (r *memoryRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *memoryRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *memoryRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.writes++
	r.docs[b.ID] = *b
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	b, ok := r.docs[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepo) Transition(_ context.Context, id string, t models.BookingTransition) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.writes++

	b, ok := r.docs[id]
	if !ok || !slices.Contains(t.From, b.Status) {
		return nil, bookingRepo.ErrPreconditionFailed
	}
	if t.RequireOTP != nil && (b.OTPCode == nil || *b.OTPCode != *t.RequireOTP) {
		return nil, bookingRepo.ErrPreconditionFailed
	}

	at := t.At
	switch t.To {
	case models.BookingAccepted:
		b.AcceptedAt = &at
	case models.BookingRejected:
		b.RejectedAt = &at
	case models.BookingCancelled:
		b.CancelledAt = &at
	case models.BookingCompleted:
		b.CompletedAt = &at
	}
	if t.OTPCode != nil {
		code := *t.OTPCode
		b.OTPCode = &code
	}
	b.Status = t.To
	b.UpdatedAt = at
	b.Version++
	r.docs[id] = b

	out := b
	return &out, nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.docs {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListByShop(_ context.Context, shopID string, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.docs {
		if b.ShopID == shopID && (status == "" || b.Status == status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) EarningsByShop(_ context.Context, shopID string) (*models.ShopEarnings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := &models.ShopEarnings{ShopID: shopID}
	for _, b := range r.docs {
		if b.ShopID == shopID && b.Status == models.BookingCompleted {
			e.Total += b.Price
			e.Completed++
		}
	}
	return e, nil
}
