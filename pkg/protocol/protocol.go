// Package protocol holds the shared wire-level pieces of the hack.chat
// family of protocols: the generation selector, the field-name constants,
// the decode error taxonomy, and typed accessors over decoded JSON objects.
//
// The encode and decode halves of the codec live in the client and server
// subpackages; this package is what both of them (and the identity and
// synthetic layers) build on.
package protocol

// Generation selects which of the three mutually incompatible wire formats
// a connection speaks. It is negotiated out of band and supplied by the
// caller per connection; nothing in this module ever infers it from
// message content.
type Generation uint8

const (
	// GenLegacy is the oldest format. Most variable in what it omits;
	// several structured events only arrive as free-text info notices
	// (see the synthetic package).
	GenLegacy Generation = iota

	// GenPreV2 is the latest of the legacy line.
	GenPreV2

	// GenV2 is the current format. Only partially deployed server-side.
	GenV2
)

// String returns the generation name for diagnostics.
func (g Generation) String() string {
	switch g {
	case GenLegacy:
		return "legacy"
	case GenPreV2:
		return "pre-v2"
	case GenV2:
		return "v2"
	default:
		return "unknown"
	}
}
