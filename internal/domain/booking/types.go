package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status follows the staff workflow: unconfirmed -> checked-in -> checked-out.
// Cancellation is expressed by deleting the booking, not by a status.
type Status string

const (
	StatusUnconfirmed Status = "unconfirmed"
	StatusCheckedIn   Status = "checked-in"
	StatusCheckedOut  Status = "checked-out"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnconfirmed, StatusCheckedIn, StatusCheckedOut:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}
