package models

import "time"

// Shop is a provider profile. IsActive is only flipped by an admin;
// a missing value means the shop is visible.
type Shop struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ImageID     string    `bson:"imageId,omitempty" json:"imageId,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive    *bool     `bson:"isActive,omitempty" json:"isActive,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Visible reports whether consumers may see the shop.
func (s Shop) Visible() bool {
	return s.IsActive == nil || *s.IsActive
}

// ShopProfileUpdate holds the editable profile fields. Nil fields are left unchanged.
type ShopProfileUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ShopActivation is the payload streamed to watchers of a shop.
type ShopActivation struct {
	ShopID    string    `json:"shopId"`
	Visible   bool      `json:"visible"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShopInput carries the owner-supplied fields for a new shop.
type ShopInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}
