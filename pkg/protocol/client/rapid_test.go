package client

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/MinusGix/hack-chat-types/pkg/protocol"
)

var genGenerator = rapid.SampledFrom([]protocol.Generation{
	protocol.GenLegacy, protocol.GenPreV2, protocol.GenV2,
})

// wordGenerator avoids '#' since legacy joins use it as the nick/password
// separator on the wire.
var wordGenerator = rapid.StringMatching(`[a-zA-Z0-9_]{1,24}`)

// TestJoinWireFields tests that whatever fields a generation transmits
// come back out of the marshaled JSON unchanged.
func TestJoinWireFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := genGenerator.Draw(t, "gen")
		m := &Join{
			Nick:    wordGenerator.Draw(t, "nick"),
			Channel: wordGenerator.Draw(t, "channel"),
		}
		if rapid.Bool().Draw(t, "hasPassword") {
			pw := wordGenerator.Draw(t, "password")
			m.Password = &pw
		}

		data, err := Marshal(m, gen)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		obj, err := protocol.ParseObject(data)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		if cmd, _ := obj.GetString(protocol.FieldCmd); cmd != CmdJoin {
			t.Fatalf("cmd mismatch: got %q", cmd)
		}
		if ch, _ := obj.GetString(protocol.FieldChannel); ch != m.Channel {
			t.Fatalf("channel mismatch: got %q, want %q", ch, m.Channel)
		}

		nick, _ := obj.GetString(protocol.FieldNick)
		pass, hasPass := obj.GetString(protocol.FieldPass)
		switch {
		case m.Password == nil:
			if nick != m.Nick || hasPass {
				t.Fatalf("unexpected password encoding: nick=%q hasPass=%v", nick, hasPass)
			}
		case gen == protocol.GenLegacy:
			// Legacy folds the password into the nick and loses the
			// distinction between the two.
			if nick != m.Nick+"#"+*m.Password || hasPass {
				t.Fatalf("legacy password encoding wrong: nick=%q hasPass=%v", nick, hasPass)
			}
		default:
			if nick != m.Nick || !hasPass || pass != *m.Password {
				t.Fatalf("password field encoding wrong: nick=%q pass=%q", nick, pass)
			}
		}
	})
}

// TestChatWireFields tests the generation-dependent channel field.
func TestChatWireFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := genGenerator.Draw(t, "gen")
		m := &Chat{Text: rapid.String().Draw(t, "text")}
		if rapid.Bool().Draw(t, "hasChannel") {
			ch := wordGenerator.Draw(t, "channel")
			m.Channel = &ch
		}

		data, err := Marshal(m, gen)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		obj, err := protocol.ParseObject(data)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		if text, _ := obj.GetString(protocol.FieldText); text != m.Text {
			t.Fatalf("text mismatch: got %q, want %q", text, m.Text)
		}

		_, keyPresent := obj[protocol.FieldChannel]
		if gen == protocol.GenV2 {
			if !keyPresent {
				t.Fatalf("v2 chat must carry the channel key")
			}
			if m.Channel != nil {
				if ch, _ := obj.GetString(protocol.FieldChannel); ch != *m.Channel {
					t.Fatalf("channel mismatch: got %q, want %q", ch, *m.Channel)
				}
			}
		} else if keyPresent {
			t.Fatalf("generation %s must not carry the channel key", gen)
		}
	})
}
