// Package cabin holds the cabin read model. Cabins are managed by the staff
// application; this deployment only reads them, so the model carries no
// mutation behavior.
package cabin

import "time"

type Cabin struct {
	ID           int64
	Name         string
	MaxCapacity  int
	RegularPrice float64
	Discount     float64
	Description  string
	Image        string
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// Price is the per-night price surface the booking flow needs; fetched
// separately so the booking form does not pull the whole cabin.
type Price struct {
	RegularPrice float64
	Discount     float64
}

type CreateInput struct {
	Name         string
	MaxCapacity  int
	RegularPrice float64
	Discount     float64
	Description  string
	Image        string
}

// UpdateInput is partial; nil fields are left untouched.
type UpdateInput struct {
	Name         *string
	MaxCapacity  *int
	RegularPrice *float64
	Discount     *float64
	Description  *string
	Image        *string
}
