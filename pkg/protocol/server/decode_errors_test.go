package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

// Required-field and tag-mismatch paths for every decoder.

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var fe *protocol.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, field, fe.Field)
}

func assertTagError(t *testing.T, err error, expected string) {
	t.Helper()
	var te *protocol.CommandTagError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, expected, te.Expected)
}

func TestTagMismatches(t *testing.T) {
	wrong := protocol.Object{protocol.FieldCmd: "wrong"}

	tests := []struct {
		expected string
		cmd      Command
	}{
		{CmdOnlineSet, &OnlineSet{}},
		{CmdSession, &Session{}},
		{CmdInfo, &Info{}},
		{CmdChat, &Chat{}},
		{CmdCaptcha, &Captcha{}},
		{CmdEmote, &Emote{}},
		{CmdInvite, &Invite{}},
		{CmdOnlineAdd, &OnlineAdd{}},
		{CmdOnlineRemove, &OnlineRemove{}},
		// Warn deliberately absent: it skips tag verification.
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			err := tt.cmd.Decode(wrong, protocol.GenV2)
			assertTagError(t, err, tt.expected)
		})
	}
}

func TestOnlineSetDecodeErrors(t *testing.T) {
	t.Run("missing time", func(t *testing.T) {
		var m OnlineSet
		err := m.Decode(protocol.Object{protocol.FieldCmd: CmdOnlineSet}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldTime)
	})

	t.Run("time of wrong type", func(t *testing.T) {
		var m OnlineSet
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdOnlineSet,
			protocol.FieldTime: "yesterday",
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldTime)
	})

	t.Run("non-object users element", func(t *testing.T) {
		var m OnlineSet
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:   CmdOnlineSet,
			protocol.FieldUsers: []any{"alice"},
			protocol.FieldTime:  1600000000,
		}, protocol.GenV2)
		// Fails on the nested record's first required field.
		assertFieldError(t, err, protocol.FieldChannel)
	})
}

func TestOnlineSetUserDecodeErrors(t *testing.T) {
	t.Run("missing nick", func(t *testing.T) {
		var u OnlineSetUser
		err := u.Decode(protocol.Object{
			protocol.FieldChannel: "lounge",
			protocol.FieldHash:    "h",
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldNick)
	})

	t.Run("nick of wrong type", func(t *testing.T) {
		var u OnlineSetUser
		err := u.Decode(protocol.Object{
			protocol.FieldChannel: "lounge",
			protocol.FieldNick:    42,
			protocol.FieldHash:    "h",
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldNick)
	})
}

func TestSessionDecodeErrors(t *testing.T) {
	base := func() protocol.Object {
		return protocol.Object{
			protocol.FieldCmd:       CmdSession,
			protocol.FieldUsers:     1,
			protocol.FieldChans:     2,
			protocol.FieldSessionID: "s",
			protocol.FieldTime:      1600000000,
		}
	}

	for _, field := range []string{
		protocol.FieldUsers,
		protocol.FieldChans,
		protocol.FieldSessionID,
		protocol.FieldTime,
	} {
		t.Run("missing "+field, func(t *testing.T) {
			obj := base()
			delete(obj, field)

			var m Session
			assertFieldError(t, m.Decode(obj, protocol.GenV2), field)
		})
	}
}

func TestInfoDecodeErrors(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		var m Info
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdInfo,
			protocol.FieldTime: 1600000000,
		}, protocol.GenLegacy)
		assertFieldError(t, err, protocol.FieldText)
	})
}

func TestChatDecodeErrors(t *testing.T) {
	t.Run("missing nick", func(t *testing.T) {
		var m Chat
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdChat,
			protocol.FieldText: "hi",
			protocol.FieldTime: 1600000000,
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldNick)
	})

	t.Run("missing text", func(t *testing.T) {
		var m Chat
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdChat,
			protocol.FieldNick: "alice",
			protocol.FieldTime: 1600000000,
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldText)
	})
}

func TestCaptchaDecodeErrors(t *testing.T) {
	var m Captcha
	err := m.Decode(protocol.Object{protocol.FieldCmd: CmdCaptcha}, protocol.GenLegacy)
	assertFieldError(t, err, protocol.FieldText)
}

func TestEmoteDecodeErrors(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		var m Emote
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdEmote,
			protocol.FieldTime: 1600000000,
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldText)
	})

	t.Run("missing time", func(t *testing.T) {
		var m Emote
		err := m.Decode(protocol.Object{
			protocol.FieldCmd:  CmdEmote,
			protocol.FieldText: "@alice waves",
		}, protocol.GenV2)
		assertFieldError(t, err, protocol.FieldTime)
	})
}

func TestInviteDecodeErrors(t *testing.T) {
	base := func() protocol.Object {
		return protocol.Object{
			protocol.FieldCmd:           CmdInvite,
			protocol.FieldFrom:          1,
			protocol.FieldTo:            2,
			protocol.FieldInviteChannel: "secret",
			protocol.FieldTime:          1600000000,
		}
	}

	for _, field := range []string{
		protocol.FieldFrom,
		protocol.FieldTo,
		protocol.FieldInviteChannel,
		protocol.FieldTime,
	} {
		t.Run("missing "+field, func(t *testing.T) {
			obj := base()
			delete(obj, field)

			var m Invite
			assertFieldError(t, m.Decode(obj, protocol.GenV2), field)
		})
	}

	t.Run("negative from", func(t *testing.T) {
		obj := base()
		obj[protocol.FieldFrom] = -1

		var m Invite
		assertFieldError(t, m.Decode(obj, protocol.GenV2), protocol.FieldFrom)
	})
}

func TestOnlineAddDecodeErrors(t *testing.T) {
	var m OnlineAdd
	err := m.Decode(protocol.Object{
		protocol.FieldCmd:  CmdOnlineAdd,
		protocol.FieldTime: 1600000000,
	}, protocol.GenV2)
	assertFieldError(t, err, protocol.FieldNick)
}

func TestOnlineRemoveDecodeErrors(t *testing.T) {
	var m OnlineRemove
	err := m.Decode(protocol.Object{
		protocol.FieldCmd:  CmdOnlineRemove,
		protocol.FieldNick: "alice",
	}, protocol.GenV2)
	assertFieldError(t, err, protocol.FieldTime)
}

func TestWarnDecodeErrors(t *testing.T) {
	var m Warn
	err := m.Decode(protocol.Object{
		protocol.FieldCmd: CmdWarn,
	}, protocol.GenLegacy)
	assertFieldError(t, err, protocol.FieldText)
}
