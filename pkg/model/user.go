package model

import "time"

// User is an account record. The engine treats the username as an opaque,
// already-authenticated user id; only the HTTP layer looks at the hash.
type User struct {
	Username     string    `json:"username" bson:"_id" validate:"required,min=3,max=30"`
	PasswordHash string    `json:"-" bson:"password_hash" validate:"required"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Credentials is the registration/login payload.
type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
