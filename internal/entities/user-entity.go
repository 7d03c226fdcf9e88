package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// User заводится внешним OAuth-коллаборатором (open_id уникален);
// password_hash заполнен только у локально провижененных учёток.
type User struct {
	ID           uint64      `db:"id" json:"id"`
	OpenID       string      `db:"open_id" json:"open_id"`
	Name         null.String `db:"name" json:"name"`
	Email        null.String `db:"email" json:"email"`
	PasswordHash null.String `db:"password_hash" json:"-"`
	Role         string      `db:"role" json:"role"`
	LastSignedIn time.Time   `db:"last_signed_in" json:"last_signed_in"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}
