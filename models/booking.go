package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave s.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCancelled || s == BookingCompleted
}

// Booking is a consumer's request to a shop for one service.
type Booking struct {
	ID      string        `bson:"id" json:"id"`
	UserID  string        `bson:"userId" json:"userId"`
	ShopID  string        `bson:"shopId" json:"shopId"`
	Service string        `bson:"service" json:"service"`
	Price   float64       `bson:"price" json:"price"`
	Notes   string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status  BookingStatus `bson:"status" json:"status"`
	OTPCode *string       `bson:"otpCode,omitempty" json:"otpCode,omitempty"`
	Version int           `bson:"version" json:"version"`

	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
	AcceptedAt  *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	RejectedAt  *time.Time `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// BookingInput carries the consumer-supplied fields for a new booking.
type BookingInput struct {
	UserID  string  `json:"-"`
	ShopID  string  `json:"shopId" binding:"required"`
	Service string  `json:"service" binding:"required"`
	Price   float64 `json:"price"`
	Notes   string  `json:"notes"`
}

// BookingTransition describes one conditional status change.
// The update applies only while the stored status is one of From
// and, when RequireOTP is set, the stored otpCode equals it.
type BookingTransition struct {
	From       []BookingStatus
	To         BookingStatus
	At         time.Time
	OTPCode    *string
	RequireOTP *string
}

// TimestampField returns the document field stamped when entering the status.
func (s BookingStatus) TimestampField() string {
	switch s {
	case BookingAccepted:
		return "acceptedAt"
	case BookingRejected:
		return "rejectedAt"
	case BookingCancelled:
		return "cancelledAt"
	case BookingCompleted:
		return "completedAt"
	}
	return ""
}

// ShopEarnings is the reader-side sum over completed bookings.
type ShopEarnings struct {
	ShopID    string  `bson:"_id" json:"shopId"`
	Total     float64 `bson:"total" json:"total"`
	Completed int     `bson:"completed" json:"completed"`
}
