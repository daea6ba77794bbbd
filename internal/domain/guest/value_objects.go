package guest

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidNationalID  = errors.New("national id must be 6-12 alphanumeric characters")
	ErrInvalidNationality = errors.New("nationality field is empty")
)

var nationalIDRegex = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)

type NationalID struct {
	value string
}

func NewNationalID(s string) (NationalID, error) {
	if !nationalIDRegex.MatchString(s) {
		return NationalID{}, ErrInvalidNationalID
	}
	return NationalID{value: s}, nil
}

func (n NationalID) String() string {
	return n.value
}

// Nationality arrives from the profile form as one combined field,
// "<country>%<flag>", split on the delimiter. The flag part may be empty.
type Nationality struct {
	country string
	flag    string
}

func ParseNationality(combined string) (Nationality, error) {
	country, flag, _ := strings.Cut(combined, "%")
	if country == "" {
		return Nationality{}, ErrInvalidNationality
	}
	return Nationality{country: country, flag: flag}, nil
}

func (n Nationality) Country() string {
	return n.country
}

func (n Nationality) Flag() string {
	return n.flag
}
