package domain

import "slices"

// Status is the availability of a physical copy.
//
// The set is closed for presentation purposes only: submitted values are
// escaped but never checked for membership, so a stored Status may hold a
// value outside Statuses.
type Status string

const (
	StatusMaintenance Status = "Maintenance"
	StatusAvailable   Status = "Available"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// DefaultStatus is applied when an instance is saved without a status.
const DefaultStatus = StatusMaintenance

var statuses = []Status{StatusMaintenance, StatusAvailable, StatusLoaned, StatusReserved}

// Statuses returns the choices offered on the instance form, in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Known reports whether s is one of the offered choices.
func (s Status) Known() bool {
	return slices.Contains(statuses, s)
}

func (s Status) String() string { return string(s) }
