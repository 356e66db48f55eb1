// Package server defines the commands a server sends to the client and
// decodes them out of each protocol generation's JSON layout.
//
// Decoding is deliberately asymmetric per field: a required field that is
// missing or mistyped fails the whole message with a FieldError naming it,
// while an optional field that is missing or malformed decodes as absent.
// Which fields are which is fixed per command and must not drift.
package server

import (
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// Command tag constants (Server → Client).
const (
	CmdOnlineSet    = "onlineSet"
	CmdSession      = "session"
	CmdInfo         = "info"
	CmdChat         = "chat"
	CmdCaptcha      = "captcha"
	CmdEmote        = "emote"
	CmdInvite       = "invite"
	CmdOnlineAdd    = "onlineAdd"
	CmdOnlineRemove = "onlineRemove"
	CmdWarn         = "warn"
)

// Command is a server-originated command. Decode fills the receiver from a
// wire object; on error the receiver's contents are unspecified.
type Command interface {
	Cmd() string
	Decode(obj protocol.Object, gen protocol.Generation) error
}

// decoders maps a wire tag to a constructor for the command it names.
var decoders = map[string]func() Command{
	CmdOnlineSet:    func() Command { return new(OnlineSet) },
	CmdSession:      func() Command { return new(Session) },
	CmdInfo:         func() Command { return new(Info) },
	CmdChat:         func() Command { return new(Chat) },
	CmdCaptcha:      func() Command { return new(Captcha) },
	CmdEmote:        func() Command { return new(Emote) },
	CmdInvite:       func() Command { return new(Invite) },
	CmdOnlineAdd:    func() Command { return new(OnlineAdd) },
	CmdOnlineRemove: func() Command { return new(OnlineRemove) },
	CmdWarn:         func() Command { return new(Warn) },
}

// Decode dispatches a wire object to the decoder named by its "cmd" field.
func Decode(obj protocol.Object, gen protocol.Generation) (Command, error) {
	tag, ok := obj.GetString(protocol.FieldCmd)
	if !ok {
		return nil, &protocol.FieldError{Field: protocol.FieldCmd}
	}
	construct, ok := decoders[tag]
	if !ok {
		return nil, &protocol.UnknownCommandError{Cmd: tag}
	}
	cmd := construct()
	if err := cmd.Decode(obj, gen); err != nil {
		return nil, err
	}
	return cmd, nil
}

// DecodeBytes parses raw JSON and dispatches it.
func DecodeBytes(data []byte, gen protocol.Generation) (Command, error) {
	obj, err := protocol.ParseObject(data)
	if err != nil {
		return nil, err
	}
	return Decode(obj, gen)
}

// checkTag verifies the wire object carries the expected command tag.
func checkTag(obj protocol.Object, want string) error {
	if tag, _ := obj.GetString(protocol.FieldCmd); tag != want {
		return &protocol.CommandTagError{Expected: want}
	}
	return nil
}

func errField(name string) error {
	return &protocol.FieldError{Field: name}
}

// reqString reads a required string field.
func reqString(obj protocol.Object, key string) (string, error) {
	s, ok := obj.GetString(key)
	if !ok {
		return "", errField(key)
	}
	return s, nil
}

// reqTime reads the required timestamp field.
func reqTime(obj protocol.Object) (protocol.Timestamp, error) {
	t, ok := obj.GetTimestamp(protocol.FieldTime)
	if !ok {
		return 0, errField(protocol.FieldTime)
	}
	return t, nil
}

// optString reads an optional string field; absent or mistyped is nil.
func optString(obj protocol.Object, key string) *string {
	if s, ok := obj.GetString(key); ok {
		return &s
	}
	return nil
}

// optBool reads an optional bool field; absent or mistyped is nil.
func optBool(obj protocol.Object, key string) *bool {
	if b, ok := obj.GetBool(key); ok {
		return &b
	}
	return nil
}

// optUint64 reads an optional integer field; absent or mistyped is nil.
func optUint64(obj protocol.Object, key string) *uint64 {
	if n, ok := obj.GetUint64(key); ok {
		return &n
	}
	return nil
}
