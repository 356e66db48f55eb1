package server

import (
	"github.com/MinusGix/hack-chat-types/pkg/maybe"
	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// OnlineSet informs the client about every user in the channel it just
// joined.
type OnlineSet struct {
	// Nicks lists the nicknames of everyone in the channel. All
	// generations send it; nil when absent.
	Nicks []string
	// Users carries detailed per-user records. PreV2/V2 only.
	Users []OnlineSetUser
	// Channel is the channel that was joined. V2 (and possibly PreV2).
	Channel *string
	// Time is when the join happened.
	Time protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *OnlineSet) Cmd() string { return CmdOnlineSet }

// Decode fills the command from a wire object.
func (m *OnlineSet) Decode(obj protocol.Object, gen protocol.Generation) error {
	if err := checkTag(obj, CmdOnlineSet); err != nil {
		return err
	}

	nicks, _ := obj.GetStringSlice(protocol.FieldNicks)

	var users []OnlineSetUser
	if arr, ok := obj.GetArray(protocol.FieldUsers); ok {
		users = make([]OnlineSetUser, len(arr))
		for i, el := range arr {
			// A non-object element decodes against an empty object and
			// fails on its first required field.
			elObj, _ := protocol.AsObject(el)
			if err := users[i].Decode(elObj, gen); err != nil {
				return err
			}
		}
	}

	// The joined channel historically rides under the text key here, not
	// under channel.
	channel := optString(obj, protocol.FieldText)

	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Nicks = nicks
	m.Users = users
	m.Channel = channel
	m.Time = t
	return nil
}

// OnlineSetUser is the nested per-user record inside OnlineSet. It is
// untagged: there is no "cmd" field to verify.
type OnlineSetUser struct {
	// Channel the user is in.
	Channel string
	// IsMe marks the record describing this connection's own user.
	IsMe *bool
	// IsBot marks bot accounts.
	IsBot *bool
	// Nick is the user's name.
	Nick string
	// Trip is the user's trip code, tri-state.
	Trip maybe.Maybe[protocol.Trip]
	// UserType is the pre-v2 permission class.
	UserType *UserType
	// UserID identifies the user server-side.
	UserID *uint64
	// Hash is the server's hash of the user's ip.
	Hash string
	// Color is the chat color the user selected.
	Color *protocol.Color
	// Level is the v2 permission level.
	Level *uint64
}

// Decode fills the record from a wire object.
func (u *OnlineSetUser) Decode(obj protocol.Object, _ protocol.Generation) error {
	channel, err := reqString(obj, protocol.FieldChannel)
	if err != nil {
		return err
	}
	nick, err := reqString(obj, protocol.FieldNick)
	if err != nil {
		return err
	}
	hash, err := reqString(obj, protocol.FieldHash)
	if err != nil {
		return err
	}

	u.Channel = channel
	u.IsMe = optBool(obj, protocol.FieldIsMe)
	u.IsBot = optBool(obj, protocol.FieldIsBot)
	u.Nick = nick
	u.Trip = protocol.TripFromValue(obj[protocol.FieldTrip])
	u.UserType = userTypeFromValue(obj[protocol.FieldUserType])
	u.UserID = optUint64(obj, protocol.FieldUserID)
	u.Hash = hash
	u.Color = protocol.ColorFromValue(obj[protocol.FieldColor])
	u.Level = optUint64(obj, protocol.FieldLevel)
	return nil
}

// Session describes the connection's session and some server-wide counts.
// V2's reply to the client session command.
type Session struct {
	// Users is the number of users server-wide.
	Users uint32
	// Channels is the number of channels with at least one user.
	Channels uint32
	// Public maps frontpaged channels to their user counts.
	Public map[string]uint32
	// SessionID is this connection's session id.
	SessionID string
	// Restored reports whether the session was resumed.
	Restored *bool
	// Time is when this was sent.
	Time protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *Session) Cmd() string { return CmdSession }

// Decode fills the command from a wire object.
func (m *Session) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdSession); err != nil {
		return err
	}

	users, ok := obj.GetUint32(protocol.FieldUsers)
	if !ok {
		return errField(protocol.FieldUsers)
	}
	channels, ok := obj.GetUint32(protocol.FieldChans)
	if !ok {
		return errField(protocol.FieldChans)
	}

	public := make(map[string]uint32)
	if pub, ok := obj.GetObject(protocol.FieldPublic); ok {
		for channel := range pub {
			count, ok := pub.GetUint32(channel)
			if !ok {
				return errField(protocol.FieldPublic)
			}
			public[channel] = count
		}
	}

	sessionID, err := reqString(obj, protocol.FieldSessionID)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Users = users
	m.Channels = channels
	m.Public = public
	m.SessionID = sessionID
	m.Restored = optBool(obj, protocol.FieldRestored)
	m.Time = t
	return nil
}

// Info is a free-text notice from the server. Legacy servers use it for
// events that newer generations send structured; the synthetic package
// recovers those.
type Info struct {
	Text    string
	Channel *string
	Time    protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *Info) Cmd() string { return CmdInfo }

// Decode fills the command from a wire object.
func (m *Info) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdInfo); err != nil {
		return err
	}

	text, err := reqString(obj, protocol.FieldText)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Text = text
	m.Channel = optString(obj, protocol.FieldChannel)
	m.Time = t
	return nil
}

// Chat is a message from a user in the channel.
type Chat struct {
	// Nick is the sender's name.
	Nick string
	// UserType is the sender's pre-v2 permission class.
	UserType *UserType
	// UserID identifies the sender server-side.
	UserID *uint64
	// Channel the message was sent in. PreV2(?)/V2.
	Channel *string
	// Text is the message body.
	Text string
	// Level is the sender's v2 permission level.
	Level *uint64
	// IsMod and IsAdmin predate user types, which predate levels. Both
	// default to false when not sent.
	IsMod   bool
	IsAdmin bool
	// Trip is the sender's trip code, tri-state.
	Trip maybe.Maybe[protocol.Trip]
	// Time the message was sent.
	Time protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *Chat) Cmd() string { return CmdChat }

// Decode fills the command from a wire object.
func (m *Chat) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdChat); err != nil {
		return err
	}

	nick, err := reqString(obj, protocol.FieldNick)
	if err != nil {
		return err
	}
	text, err := reqString(obj, protocol.FieldText)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	isMod, _ := obj.GetBool(protocol.FieldMod)
	isAdmin, _ := obj.GetBool(protocol.FieldAdmin)

	m.Nick = nick
	m.UserType = userTypeFromValue(obj[protocol.FieldUserType])
	m.UserID = optUint64(obj, protocol.FieldUserID)
	m.Channel = optString(obj, protocol.FieldChannel)
	m.Text = text
	m.Level = optUint64(obj, protocol.FieldLevel)
	m.IsMod = isMod
	m.IsAdmin = isAdmin
	m.Trip = protocol.TripFromValue(obj[protocol.FieldTrip])
	m.Time = t
	return nil
}

// Captcha asks the client to solve a challenge before joining, to keep
// spam bots out.
type Captcha struct {
	Text    string
	Channel *string
}

// Cmd returns the fixed wire tag.
func (m *Captcha) Cmd() string { return CmdCaptcha }

// Decode fills the command from a wire object.
func (m *Captcha) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdCaptcha); err != nil {
		return err
	}

	text, err := reqString(obj, protocol.FieldText)
	if err != nil {
		return err
	}

	m.Text = text
	m.Channel = optString(obj, protocol.FieldChannel)
	return nil
}

// Emote is a /me action message, e.g. "@alice does jumping jacks".
type Emote struct {
	Text string
	Nick *string
	Time protocol.Timestamp
	// Trip is tri-state; older servers may never have sent one.
	Trip   maybe.Maybe[protocol.Trip]
	UserID *uint64
}

// Cmd returns the fixed wire tag.
func (m *Emote) Cmd() string { return CmdEmote }

// Decode fills the command from a wire object.
func (m *Emote) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdEmote); err != nil {
		return err
	}

	text, err := reqString(obj, protocol.FieldText)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Text = text
	m.Nick = optString(obj, protocol.FieldNick)
	m.Time = t
	m.Trip = protocol.TripFromValue(obj[protocol.FieldTrip])
	m.UserID = optUint64(obj, protocol.FieldUserID)
	return nil
}

// Invite says one user invited another to a channel.
type Invite struct {
	// Channel the invite was sent in, not the one being invited to.
	Channel *string
	// From is the inviting user's id. May be this connection's own.
	From uint64
	// To is the invited user's id. May be this connection's own.
	To uint64
	// InviteChannel is the channel being invited to.
	InviteChannel string
	// Time the invite was sent.
	Time protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *Invite) Cmd() string { return CmdInvite }

// Decode fills the command from a wire object.
func (m *Invite) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdInvite); err != nil {
		return err
	}

	from, ok := obj.GetUint64(protocol.FieldFrom)
	if !ok {
		return errField(protocol.FieldFrom)
	}
	to, ok := obj.GetUint64(protocol.FieldTo)
	if !ok {
		return errField(protocol.FieldTo)
	}
	inviteChannel, err := reqString(obj, protocol.FieldInviteChannel)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Channel = optString(obj, protocol.FieldChannel)
	m.From = from
	m.To = to
	m.InviteChannel = inviteChannel
	m.Time = t
	return nil
}

// OnlineAdd announces a user joining the channel.
type OnlineAdd struct {
	Channel  *string
	Color    *protocol.Color
	Hash     *string
	IsBot    *bool
	Level    *uint64
	Nick     string
	Time     protocol.Timestamp
	Trip     maybe.Maybe[protocol.Trip]
	UserType *UserType
	UserID   *uint64
}

// Cmd returns the fixed wire tag.
func (m *OnlineAdd) Cmd() string { return CmdOnlineAdd }

// Decode fills the command from a wire object.
func (m *OnlineAdd) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdOnlineAdd); err != nil {
		return err
	}

	nick, err := reqString(obj, protocol.FieldNick)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Channel = optString(obj, protocol.FieldChannel)
	m.Color = protocol.ColorFromValue(obj[protocol.FieldColor])
	m.Hash = optString(obj, protocol.FieldHash)
	m.IsBot = optBool(obj, protocol.FieldIsBot)
	m.Level = optUint64(obj, protocol.FieldLevel)
	m.Nick = nick
	m.Time = t
	m.Trip = protocol.TripFromValue(obj[protocol.FieldTrip])
	m.UserType = userTypeFromValue(obj[protocol.FieldUserType])
	m.UserID = optUint64(obj, protocol.FieldUserID)
	return nil
}

// OnlineRemove announces a user leaving the channel.
type OnlineRemove struct {
	Channel *string
	Nick    string
	Time    protocol.Timestamp
	UserID  *uint64
}

// Cmd returns the fixed wire tag.
func (m *OnlineRemove) Cmd() string { return CmdOnlineRemove }

// Decode fills the command from a wire object.
func (m *OnlineRemove) Decode(obj protocol.Object, _ protocol.Generation) error {
	if err := checkTag(obj, CmdOnlineRemove); err != nil {
		return err
	}

	nick, err := reqString(obj, protocol.FieldNick)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Channel = optString(obj, protocol.FieldChannel)
	m.Nick = nick
	m.Time = t
	m.UserID = optUint64(obj, protocol.FieldUserID)
	return nil
}

// Warn is a warning notice from the server.
type Warn struct {
	Channel *string
	Text    string
	Time    protocol.Timestamp
}

// Cmd returns the fixed wire tag.
func (m *Warn) Cmd() string { return CmdWarn }

// Decode fills the command from a wire object.
//
// Unlike every sibling decoder, Warn has never verified the cmd field;
// a mis-tagged object that otherwise looks like a warn still decodes.
func (m *Warn) Decode(obj protocol.Object, _ protocol.Generation) error {
	text, err := reqString(obj, protocol.FieldText)
	if err != nil {
		return err
	}
	t, err := reqTime(obj)
	if err != nil {
		return err
	}

	m.Channel = optString(obj, protocol.FieldChannel)
	m.Text = text
	m.Time = t
	return nil
}
