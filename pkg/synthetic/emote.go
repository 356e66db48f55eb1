package synthetic

import (
	"errors"
	"strings"

	"github.com/MinusGix/hack-chat-types/pkg/identity"
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
	"github.com/MinusGix/hack-chat-types/pkg/protocol/server"
)

// Emote reconstruction errors.
var (
	ErrNoAt        = errors.New("synthetic: emote text lacks the '@' prefix")
	ErrNoUser      = errors.New("synthetic: emote text names no user")
	ErrNoUserFound = errors.New("synthetic: emote user is not known online")
)

// Emote is a structured action message, whichever wire form it arrived in.
type Emote struct {
	// Text is the action body. Reconstructed from an info notice it
	// excludes the @name prefix; from a structured emote it is the wire
	// text unchanged.
	Text string
	// UserID is the acting user.
	UserID identity.UserID
	// Time the emote was sent.
	Time protocol.Timestamp
}

// EmoteFromCommand converts a structured emote command. The embedded
// server user id wins when present; otherwise the embedded nickname is
// looked up among online users. ErrNoUserFound when neither resolves.
func EmoteFromCommand(reg *identity.Registry, em *server.Emote) (Emote, error) {
	var userID identity.UserID
	switch {
	case em.UserID != nil:
		userID = identity.ServerID(*em.UserID)
	case em.Nick != nil:
		id, _, ok := reg.FindOnlineNick(*em.Nick)
		if !ok {
			return Emote{}, ErrNoUserFound
		}
		userID = id
	default:
		return Emote{}, ErrNoUserFound
	}

	return Emote{
		Text:   em.Text,
		UserID: userID,
		Time:   em.Time,
	}, nil
}

// EmoteFromInfo recovers an emote from a legacy info notice of the form
//
//	@<name> <action...>
//
// The body is everything after the first space, or empty when the notice
// is just the name.
func EmoteFromInfo(reg *identity.Registry, info *server.Info) (Emote, error) {
	tokens := strings.SplitN(info.Text, " ", 2)

	name, ok := strings.CutPrefix(tokens[0], "@")
	if !ok {
		return Emote{}, ErrNoAt
	}
	if name == "" {
		return Emote{}, ErrNoUser
	}

	userID, _, ok := reg.FindOnlineNick(name)
	if !ok {
		return Emote{}, ErrNoUserFound
	}

	text := ""
	if len(tokens) > 1 {
		text = tokens[1]
	}

	return Emote{
		Text:   text,
		UserID: userID,
		Time:   info.Time,
	}, nil
}
