package model

import "time"

// ReservationLock is an advisory lock document used to serialize
// cancellations against a single booking. Locks auto-expire so a crashed
// request cannot wedge an entity.
type ReservationLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
