package protocol

// Wire field names. Every encoder and decoder pulls its keys from this one
// table; none re-declare them locally.
const (
	FieldCmd      = "cmd"
	FieldChannel  = "channel"
	FieldText     = "text"
	FieldNick     = "nick"
	FieldTime     = "time"
	FieldTrip     = "trip"
	FieldUserType = "uType"
	FieldHash     = "hash"
	FieldLevel    = "level"
	FieldUserID   = "userid"
	FieldColor    = "color"
	FieldIsBot    = "isBot"
)

// Command-local field names.
const (
	FieldPass          = "pass"
	FieldID            = "id"
	FieldSessionID     = "sessionID"
	FieldUsers         = "users"
	FieldChans         = "chans"
	FieldPublic        = "public"
	FieldRestored      = "restored"
	FieldMod           = "mod"
	FieldAdmin         = "admin"
	FieldIsMe          = "isme"
	FieldNicks         = "nicks"
	FieldInviteChannel = "inviteChannel"
	FieldFrom          = "from"
	FieldTo            = "to"
)
