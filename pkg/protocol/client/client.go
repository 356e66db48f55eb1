// Package client defines the commands a client sends to the server and
// encodes them into each protocol generation's JSON layout.
package client

import (
	"encoding/json"

	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// Command tag constants.
const (
	CmdSession = "session"
	CmdJoin    = "join"
	CmdChat    = "chat"
)

// Command is a client-originated command. Wire lays the command out as a
// JSON object for the given generation; the transport owns marshaling and
// delivery.
type Command interface {
	Cmd() string
	Wire(gen protocol.Generation) protocol.Object
}

// Marshal encodes a command straight to JSON bytes.
func Marshal(cmd Command, gen protocol.Generation) ([]byte, error) {
	return json.Marshal(cmd.Wire(gen))
}

// Session announces the client to a V2 server before joining a channel.
// The server replies with its own session command.
type Session struct {
	// IsBot declares whether this client is a bot. Always sent.
	IsBot bool
	// ID is a previous session id to resume as, when there is one.
	ID *string
}

// Cmd returns the fixed wire tag.
func (m *Session) Cmd() string { return CmdSession }

// Wire encodes the command. Layout is the same across generations.
func (m *Session) Wire(_ protocol.Generation) protocol.Object {
	obj := protocol.Object{
		protocol.FieldCmd:   CmdSession,
		protocol.FieldIsBot: m.IsBot,
	}
	if m.ID != nil {
		obj[protocol.FieldID] = *m.ID
	}
	return obj
}

// Join enters a channel under a nickname. The nickname is usually, but not
// always, what the server grants.
type Join struct {
	Nick    string
	Channel string
	// Password generates the trip. Where it goes on the wire depends on
	// the generation; see Wire.
	Password *string
}

// Cmd returns the fixed wire tag.
func (m *Join) Cmd() string { return CmdJoin }

// Wire encodes the command. PreV2 and V2 carry the password in a separate
// "pass" field; legacy servers only understand it appended to the nickname
// as "nick#password", with no separate field.
func (m *Join) Wire(gen protocol.Generation) protocol.Object {
	obj := protocol.Object{
		protocol.FieldCmd:     CmdJoin,
		protocol.FieldChannel: m.Channel,
	}
	nick := m.Nick
	if m.Password != nil {
		switch gen {
		case protocol.GenV2, protocol.GenPreV2:
			obj[protocol.FieldPass] = *m.Password
		case protocol.GenLegacy:
			nick = nick + "#" + *m.Password
		}
	}
	obj[protocol.FieldNick] = nick
	return obj
}

// Chat sends a message to the current channel.
type Chat struct {
	// Channel is only meaningful on V2, which wants multi-channel support.
	Channel *string
	Text    string
}

// Cmd returns the fixed wire tag.
func (m *Chat) Cmd() string { return CmdChat }

// Wire encodes the command. Only V2 carries the channel field; it is
// emitted even when unset, matching what servers have always received.
func (m *Chat) Wire(gen protocol.Generation) protocol.Object {
	obj := protocol.Object{
		protocol.FieldCmd:  CmdChat,
		protocol.FieldText: m.Text,
	}
	if gen == protocol.GenV2 {
		obj[protocol.FieldChannel] = m.Channel
	}
	return obj
}
