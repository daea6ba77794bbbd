// Package guest holds the guest profile model. Guests are uniquely identified
// by their email address: one guest record per email.
package guest

import "time"

type Guest struct {
	ID          int64
	FullName    string
	Email       string
	NationalID  string
	Nationality string
	CountryFlag string
	CreatedAt   *time.Time
}

type CreateInput struct {
	FullName string
	Email    string
}

// UpdateInput is partial; nil fields are left untouched.
type UpdateInput struct {
	FullName    *string
	NationalID  *string
	Nationality *string
	CountryFlag *string
}
