package server

// UserType is the pre-v2 permission class of a user. V2 deprecated it in
// favor of numeric levels.
type UserType uint8

const (
	UserTypeUser UserType = iota
	UserTypeMod
	UserTypeAdmin
)

// ParseUserType maps the wire strings "user", "mod" and "admin". Anything
// else is simply not a user type; callers see an unset field, not an error.
func ParseUserType(s string) (UserType, bool) {
	switch s {
	case "user":
		return UserTypeUser, true
	case "mod":
		return UserTypeMod, true
	case "admin":
		return UserTypeAdmin, true
	default:
		return 0, false
	}
}

// String returns the wire spelling.
func (t UserType) String() string {
	switch t {
	case UserTypeUser:
		return "user"
	case UserTypeMod:
		return "mod"
	case UserTypeAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// userTypeFromValue reads an optional user type off a wire value.
// Unrecognized or mistyped values decode as absent.
func userTypeFromValue(v any) *UserType {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	t, ok := ParseUserType(s)
	if !ok {
		return nil
	}
	return &t
}
