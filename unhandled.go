package exhaust

// UnhandledEntry marks a table entry as deliberately not handled. Dispatch
// that resolves to a marked entry fails with an *UnhandledValueError instead
// of invoking or returning anything.
//
// Tokens are compared by pointer identity and are stored apart from entry
// values, so no caller data can be mistaken for one.
type UnhandledEntry struct {
	message string
}

var unhandled = &UnhandledEntry{}

// Unhandled returns the shared token without a message.
func Unhandled() *UnhandledEntry { return unhandled }

// NewUnhandled returns a token that appends message to the error it causes.
// An empty message yields the shared token from Unhandled; any other message
// yields a new token on every call.
func NewUnhandled(message string) *UnhandledEntry {
	if message == "" {
		return unhandled
	}
	return &UnhandledEntry{message: message}
}

// Message returns the diagnostic message, or "" for the shared token.
func (u *UnhandledEntry) Message() string { return u.message }

// Err returns a new error explaining that value was not handled.
func (u *UnhandledEntry) Err(value string) error {
	return u.errFor(value, KindString)
}

func (u *UnhandledEntry) errFor(value string, kind Kind) *UnhandledValueError {
	return &UnhandledValueError{Value: value, Kind: kind, Message: u.message}
}

// IsUnhandled reports whether v is a non-nil *UnhandledEntry.
func IsUnhandled(v any) bool {
	u, ok := v.(*UnhandledEntry)
	return ok && u != nil
}
