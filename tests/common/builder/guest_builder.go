//go:build unit

package builder

import (
	"time"

	"wildhaven/internal/domain/guest"
)

type GuestBuilder struct {
	ID          int64
	FullName    string
	Email       string
	NationalID  string
	Nationality string
	CountryFlag string
	CreatedAt   time.Time
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:          10,
		FullName:    "Jonas Schmedtmann",
		Email:       "jonas@example.com",
		NationalID:  "AB123456",
		Nationality: "Portugal",
		CountryFlag: "https://flagcdn.com/pt.svg",
		CreatedAt:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() guest.Guest {
	createdAt := g.CreatedAt
	return guest.Guest{
		ID:          g.ID,
		FullName:    g.FullName,
		Email:       g.Email,
		NationalID:  g.NationalID,
		Nationality: g.Nationality,
		CountryFlag: g.CountryFlag,
		CreatedAt:   &createdAt,
	}
}
