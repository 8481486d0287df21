package models

import "time"

type Review struct {
	ID        string    `bson:"id" json:"id"`
	ShopID    string    `bson:"shopId" json:"shopId"`
	UserID    string    `bson:"userId" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type RatingSummary struct {
	ShopID  string  `bson:"_id" json:"shopId"`
	Count   int     `bson:"count" json:"count"`
	Average float64 `bson:"average" json:"average"`
}
