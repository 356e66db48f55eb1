package identity

import (
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// ResolveKind selects which representation of a user Resolve should
// project to.
type ResolveKind uint8

const (
	// ResolveServerID asks for the server-assigned numeric id.
	ResolveServerID ResolveKind = iota
	// ResolveNickname asks for the stored nickname.
	ResolveNickname
	// ResolveTrip asks for the stored trip code.
	ResolveTrip
)

// Resolved is the outcome of a Resolve call; only the field matching Kind
// is meaningful.
type Resolved struct {
	Kind     ResolveKind
	ServerID uint64
	Nick     string
	Trip     protocol.Trip
}

// Resolve projects a user id to the requested representation.
//
// ResolveServerID succeeds only for server-namespace ids and does not
// require a registry entry. ResolveNickname requires the entry to exist.
// ResolveTrip requires the entry to exist and its trip to be present;
// Unknown and confirmed-absent trips both fail.
func (r *Registry) Resolve(id UserID, kind ResolveKind) (Resolved, bool) {
	switch kind {
	case ResolveServerID:
		n, ok := id.AsServer()
		if !ok {
			return Resolved{}, false
		}
		return Resolved{Kind: kind, ServerID: n}, true
	case ResolveNickname:
		u, ok := r.Get(id)
		if !ok {
			return Resolved{}, false
		}
		return Resolved{Kind: kind, Nick: u.Nick}, true
	case ResolveTrip:
		u, ok := r.Get(id)
		if !ok {
			return Resolved{}, false
		}
		trip, ok := u.Trip.Value()
		if !ok {
			return Resolved{}, false
		}
		return Resolved{Kind: kind, Trip: trip}, true
	default:
		return Resolved{}, false
	}
}
