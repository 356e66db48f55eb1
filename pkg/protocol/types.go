package protocol

import (
	"strconv"

	"github.com/MinusGix/hack-chat-types/pkg/maybe"
)

// Timestamp is a Unix timestamp in seconds, as sent on the wire.
type Timestamp uint64

// ParseTimestamp parses a textual Unix-seconds timestamp.
func ParseTimestamp(text string) (Timestamp, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, err
	}
	return Timestamp(n), nil
}

// Trip is the short identifying code a user optionally attaches to
// messages. Usually 6 characters, but exotic server instances vary.
type Trip string

// TripFromValue reads a trip off a wire value into its tri-state form:
// a missing or non-string value is Unknown, an empty string is the
// server's way of confirming the user has no trip (Not), and anything
// else is the trip itself.
func TripFromValue(v any) maybe.Maybe[Trip] {
	s, ok := v.(string)
	if !ok {
		return maybe.Unknown[Trip]()
	}
	if s == "" {
		return maybe.Not[Trip]()
	}
	return maybe.Has(Trip(s))
}
