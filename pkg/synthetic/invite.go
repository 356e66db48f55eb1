// Package synthetic reconstructs structured events from the free-text info
// notices legacy servers send in place of structured commands.
//
// Newer generations send invites and emotes as their own commands; legacy
// servers only narrate them ("alice invited you to ?lounge"). This package
// parses those sentences against the identity registry so callers can
// handle both forms the same way. Every failure mode is a named error,
// never a panic.
package synthetic

import (
	"errors"
	"strings"

	"github.com/MinusGix/hack-chat-types/pkg/identity"
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
	"github.com/MinusGix/hack-chat-types/pkg/protocol/server"
)

// Invite reconstruction errors, one per grammar position plus the two
// registry lookups.
var (
	ErrNoFrom         = errors.New("synthetic: invite text has no inviting user")
	ErrNoInvited      = errors.New(`synthetic: invite text is missing the word "invited"`)
	ErrNoTo           = errors.New("synthetic: invite text has no invited user")
	ErrNoToJoiner     = errors.New(`synthetic: invite text is missing the word "to"`)
	ErrNoChannel      = errors.New("synthetic: invite text has no channel")
	ErrInvalidChannel = errors.New("synthetic: invite channel lacks the '?' prefix")
	ErrUnknownNick    = errors.New("synthetic: inviting or invited user is not known online")
	ErrUnknownSelf    = errors.New("synthetic: own user id is not set")
)

// Invite is a structured invitation, whichever wire form it arrived in.
type Invite struct {
	// InviteChannel is the channel being invited to.
	InviteChannel string
	// From is the inviting user. May be self.
	From identity.UserID
	// To is the invited user. May be self.
	To identity.UserID
	// Time the invite was sent.
	Time protocol.Timestamp
}

// InviteFromCommand converts a structured invite command. The wire ids are
// server-assigned, so this is a straight re-tagging and cannot fail.
func InviteFromCommand(inv *server.Invite) Invite {
	return Invite{
		InviteChannel: inv.InviteChannel,
		From:          identity.ServerID(inv.From),
		To:            identity.ServerID(inv.To),
		Time:          inv.Time,
	}
}

// InviteFromInfo recovers an invite from a legacy info notice of the form
//
//	<name1> invited <name2> to ?<channel>
//
// When name2 is "you" this connection is the invitee: to is the registry's
// self id and from is the online lookup of name1. Otherwise this
// connection is the inviter: from is the self id and to is the online
// lookup of name2.
func InviteFromInfo(reg *identity.Registry, info *server.Info) (Invite, error) {
	tokens := strings.SplitN(info.Text, " ", 5)
	next := func() (string, bool) {
		if len(tokens) == 0 {
			return "", false
		}
		tok := tokens[0]
		tokens = tokens[1:]
		return tok, true
	}

	from, ok := next()
	if !ok {
		return Invite{}, ErrNoFrom
	}
	if word, _ := next(); word != "invited" {
		return Invite{}, ErrNoInvited
	}
	to, ok := next()
	if !ok {
		return Invite{}, ErrNoTo
	}
	if word, _ := next(); word != "to" {
		return Invite{}, ErrNoToJoiner
	}
	rawChannel, ok := next()
	if !ok {
		return Invite{}, ErrNoChannel
	}
	// The site addresses channels as ?name, and the notice keeps the
	// prefix.
	channel, ok := strings.CutPrefix(rawChannel, "?")
	if !ok {
		return Invite{}, ErrInvalidChannel
	}

	var fromID, toID identity.UserID
	if to == "you" {
		// We are being invited.
		toID, ok = reg.Self()
		if !ok {
			return Invite{}, ErrUnknownSelf
		}
		fromID, _, ok = reg.FindOnlineNick(from)
		if !ok {
			return Invite{}, ErrUnknownNick
		}
	} else {
		// We are inviting.
		toID, _, ok = reg.FindOnlineNick(to)
		if !ok {
			return Invite{}, ErrUnknownNick
		}
		fromID, ok = reg.Self()
		if !ok {
			return Invite{}, ErrUnknownSelf
		}
	}

	return Invite{
		InviteChannel: channel,
		From:          fromID,
		To:            toID,
		Time:          info.Time,
	}, nil
}
