package models

import "time"

// Service is one catalog entry offered by a shop.
type Service struct {
	ID        string    `bson:"id" json:"id"`
	ShopID    string    `bson:"shopId" json:"shopId"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ServiceUpdate struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
