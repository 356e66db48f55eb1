// Package identity tracks the chat participants known to a connection.
//
// Users are keyed by a dual-namespace id: servers that speak newer
// generations assign numeric ids on the wire, while legacy servers send
// none at all, so the registry mints local ids for them. The two
// namespaces never compare equal, even for the same number.
//
// The registry is plain mutable state with no internal locking; the
// session layer owns it and serializes access.
package identity

import (
	"github.com/MinusGix/hack-chat-types/pkg/maybe"
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// Namespace says where a UserID came from.
type Namespace uint8

const (
	// NamespaceServer ids were assigned by the server on the wire.
	NamespaceServer Namespace = iota
	// NamespaceGenerated ids were minted locally by a Registry.
	NamespaceGenerated
)

// UserID identifies a user within one namespace. The zero value is
// Server(0). UserIDs are comparable and usable as map keys; Server(5) and
// Generated(5) are distinct keys.
type UserID struct {
	ns Namespace
	n  uint64
}

// ServerID returns the id for a server-assigned numeric id.
func ServerID(n uint64) UserID {
	return UserID{ns: NamespaceServer, n: n}
}

// Namespace returns which namespace the id belongs to.
func (id UserID) Namespace() Namespace { return id.ns }

// Num returns the numeric payload. Only meaningful together with the
// namespace.
func (id UserID) Num() uint64 { return id.n }

// AsServer returns the server-assigned number, or false for a locally
// generated id.
func (id UserID) AsServer() (uint64, bool) {
	if id.ns != NamespaceServer {
		return 0, false
	}
	return id.n, true
}

// User is what the registry knows about one participant.
type User struct {
	Nick   string
	Trip   maybe.Maybe[protocol.Trip]
	Online bool
}

// Registry is the per-connection set of known users. Create one at session
// start, fill it from presence commands, clear it on channel rejoin.
type Registry struct {
	nextID uint64
	self   *UserID
	users  map[UserID]*User
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		users: make(map[UserID]*User, 64),
	}
}

// GenerateID mints the next locally generated id. Ids are monotonically
// increasing for the life of the registry and never reused, even across
// Clear.
func (r *Registry) GenerateID() UserID {
	id := UserID{ns: NamespaceGenerated, n: r.nextID}
	r.nextID++
	return id
}

// SetSelf records which id is this connection's own user. The registry
// never infers this; the session layer must call it once known.
func (r *Registry) SetSelf(id UserID) {
	r.self = &id
}

// Self returns this connection's own id, if it has been set.
func (r *Registry) Self() (UserID, bool) {
	if r.self == nil {
		return UserID{}, false
	}
	return *r.self, true
}

// Clear forgets every user. Used when leaving or rejoining a channel. The
// self id and the generated-id counter survive.
func (r *Registry) Clear() {
	clear(r.users)
}

// Insert adds or replaces a user.
func (r *Registry) Insert(id UserID, u User) {
	r.users[id] = &u
}

// Get returns the user under id. The pointer is live; mutating it updates
// the registry.
func (r *Registry) Get(id UserID) (*User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// Contains reports whether id is known.
func (r *Registry) Contains(id UserID) bool {
	_, ok := r.users[id]
	return ok
}

// Remove forgets the user under id, for OnlineRemove.
func (r *Registry) Remove(id UserID) {
	delete(r.users, id)
}

// Len returns the number of known users.
func (r *Registry) Len() int {
	return len(r.users)
}

// FindOnlineNick returns the first online user with the given nickname.
// Iteration order is unspecified: with duplicate online nicknames the
// result is one of them, non-deterministically.
func (r *Registry) FindOnlineNick(nick string) (UserID, *User, bool) {
	for id, u := range r.users {
		if u.Online && u.Nick == nick {
			return id, u, true
		}
	}
	return UserID{}, nil, false
}
