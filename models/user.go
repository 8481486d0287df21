package models

import "time"

// User is a consumer profile keyed by the auth provider's uid.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UserProfileInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
